package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a stored price field to a number. Prices were written by
// clients as free text, so anything unparseable contributes 0 rather than an
// error.
func ParsePrice(price string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0
	}
	return value
}

// PriceFieldToText normalizes a raw document field to the textual price
// representation the entities carry. Some legacy documents hold numeric
// prices, newer ones hold text.
func PriceFieldToText(field interface{}) string {
	switch v := field.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
