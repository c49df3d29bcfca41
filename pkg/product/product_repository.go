package product

import (
	"context"
	"strings"

	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetProducts(ctx context.Context) ([]entities.Product, error)
		GetProductByID(ctx context.Context, id int64) (*entities.Product, error)
		GetProductsByCategory(ctx context.Context, category string) ([]entities.Product, error)
		SearchProducts(ctx context.Context, q string) ([]entities.Product, error)
		CreateProduct(ctx context.Context, product *entities.Product) error
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id int64) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProducts(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProductsByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	var products []entities.Product
	if err := r.db.WithContext(ctx).Where("category = ?", category).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SearchProducts(ctx context.Context, q string) ([]entities.Product, error) {
	var products []entities.Product
	pattern := "%" + strings.ToLower(q) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Order("id asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}
