package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	"github.com/harshverma27/Kissan-Connect/internal/domain/repository"
	"github.com/harshverma27/Kissan-Connect/pkg/errors"
	"github.com/harshverma27/Kissan-Connect/pkg/utils"
)

// maxInFilterBatch is the store's bound on the number of values an in-filter
// accepts per query. Larger identifier sets must be split and merged.
const maxInFilterBatch = 10

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	return decodeProduct(doc)
}

func (r *firestoreProductRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	collection := r.client.Collection("products")
	var products []*entity.Product

	for _, batch := range chunkIDs(ids, maxInFilterBatch) {
		refs := make([]*firestore.DocumentRef, len(batch))
		for i, id := range batch {
			refs[i] = collection.Doc(id)
		}

		docs, err := collection.Query.Where(firestore.DocumentID, "in", refs).Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch products", err)
		}

		for _, doc := range docs {
			product, err := decodeProduct(doc)
			if err != nil {
				return nil, err
			}
			products = append(products, product)
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) ListByFarmerID(ctx context.Context, farmerID string) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query.Where("farmerId", "==", farmerID)
	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return r.collect(ctx, r.client.Collection("products").Query)
}

func (r *firestoreProductRepository) SearchByName(ctx context.Context, query string) ([]*entity.Product, error) {
	// The store has no substring search; fetch and filter in memory the way
	// the browse screen always has. Fine at produce-stand scale.
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matched []*entity.Product
	for _, product := range all {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

func (r *firestoreProductRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Product, error) {
	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		product, err := decodeProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// decodeProduct tolerates legacy documents whose price field is numeric
// rather than text by falling back to a manual field mapping.
func decodeProduct(doc *firestore.DocumentSnapshot) (*entity.Product, error) {
	var product entity.Product
	if err := doc.DataTo(&product); err == nil {
		if product.ID == "" {
			product.ID = doc.Ref.ID
		}
		return &product, nil
	}

	data := doc.Data()
	product = entity.Product{
		ID:       doc.Ref.ID,
		Name:     stringField(data, "name"),
		Price:    utils.PriceFieldToText(data["price"]),
		ImageURL: stringField(data, "imageUrl"),
		FarmerID: stringField(data, "farmerId"),
	}
	if id := stringField(data, "id"); id != "" {
		product.ID = id
	}
	if t, ok := data["createdAt"].(time.Time); ok {
		product.CreatedAt = t
	}
	if t, ok := data["updatedAt"].(time.Time); ok {
		product.UpdatedAt = t
	}

	return &product, nil
}

func stringField(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
