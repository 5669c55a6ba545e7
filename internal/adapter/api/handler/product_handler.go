package handler

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/harshverma27/Kissan-Connect/internal/usecase"
	"github.com/harshverma27/Kissan-Connect/pkg/errors"
	"github.com/harshverma27/Kissan-Connect/pkg/response"
	"github.com/harshverma27/Kissan-Connect/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// Listings are submitted as multipart forms so the image rides along with the
// fields. Price is deliberately not validated as numeric; it is stored as the
// text the farmer typed.
func (h *ProductHandler) productInputFromForm(c echo.Context) (usecase.ProductInput, *multipart.FileHeader, error) {
	name := c.FormValue("name")
	price := c.FormValue("price")

	if name == "" {
		return usecase.ProductInput{}, nil, errors.BadRequest("Product name is required", nil)
	}
	if price == "" {
		return usecase.ProductInput{}, nil, errors.BadRequest("Product price is required", nil)
	}

	input := usecase.ProductInput{
		Name:  name,
		Price: price,
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Image is optional.
		return input, nil, nil
	}

	return input, fileHeader, nil
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, fileHeader, err := h.productInputFromForm(c)
	if err != nil {
		return response.Error(c, err)
	}

	if fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read uploaded image", err))
		}
		defer file.Close()
		input.Image = file
		input.ImageContentType = fileHeader.Header.Get("Content-Type")
	}

	farmerID := c.Get("uid").(string)

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), farmerID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	input, fileHeader, err := h.productInputFromForm(c)
	if err != nil {
		return response.Error(c, err)
	}

	if fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read uploaded image", err))
		}
		defer file.Close()
		input.Image = file
		input.ImageContentType = fileHeader.Header.Get("Content-Type")
	}

	farmerID := c.Get("uid").(string)

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, farmerID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	farmerID := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id, farmerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	farmerID := c.Get("uid").(string)

	products, err := h.productUseCase.ListMyProducts(c.Request().Context(), farmerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) BrowseProducts(c echo.Context) error {
	query := c.QueryParam("q")
	pagination := utils.GetPaginationParams(c)

	products, err := h.productUseCase.BrowseProducts(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	total := int64(len(products))
	start := pagination.Offset
	if start > len(products) {
		start = len(products)
	}
	end := start + pagination.PageSize
	if end > len(products) {
		end = len(products)
	}

	return response.Paginated(c, products[start:end], total, pagination.Page, pagination.PageSize)
}
