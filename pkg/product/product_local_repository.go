package product

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils/storage"
)

// localProductRepository keeps the product collection as a single JSON record
// in the local key-value store, mirroring the server-backed contract.
type localProductRepository struct {
	store *storage.LocalStore
}

func NewLocalProductRepository(store *storage.LocalStore) ProductRepository {
	return &localProductRepository{store: store}
}

func (r *localProductRepository) load() ([]entities.Product, error) {
	raw, found, err := r.store.Get(storage.KeyProducts)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.Product{}, nil
	}

	var products []entities.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *localProductRepository) save(products []entities.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	return r.store.Put(storage.KeyProducts, raw)
}

func (r *localProductRepository) GetProducts(ctx context.Context) ([]entities.Product, error) {
	return r.load()
}

func (r *localProductRepository) GetProductByID(ctx context.Context, id int64) (*entities.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *localProductRepository) GetProductsByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	filtered := []entities.Product{}
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *localProductRepository) SearchProducts(ctx context.Context, q string) ([]entities.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	filtered := []entities.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *localProductRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}

	var maxID int64
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1

	products = append(products, *product)
	return r.save(products)
}

func (r *localProductRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			return r.save(products)
		}
	}
	return domain.ErrProductNotFound
}

func (r *localProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	filtered := products[:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return r.save(filtered)
}
