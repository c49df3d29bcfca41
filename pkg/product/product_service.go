package product

import (
	"context"
	"errors"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id int64) (domain.ProductResponse, error)
		GetProductsByCategory(ctx context.Context, category string) ([]domain.ProductResponse, error)
		SearchProducts(ctx context.Context, q string) ([]domain.ProductResponse, error)
		CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id int64, req domain.ProductUpdateRequest) (domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, id int64) error
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

// ToResponse maps a product entity to its response shape. Shared with the
// pantry and shopping list services, which embed products in their responses.
func ToResponse(p entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		Unit:            p.Unit,
		Description:     p.Description,
		TrackExpiration: p.TrackExpiration,
	}
}

func (s *productService) GetProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return ToResponse(*product), nil
}

func (s *productService) GetProductsByCategory(ctx context.Context, category string) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProductsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *productService) SearchProducts(ctx context.Context, q string) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.SearchProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.ProductResponse, error) {
	product := &entities.Product{
		Name:            req.Name,
		Category:        req.Category,
		Unit:            req.Unit,
		Description:     req.Description,
		TrackExpiration: req.TrackExpiration,
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}
	return ToResponse(*product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req domain.ProductUpdateRequest) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.TrackExpiration != nil {
		product.TrackExpiration = *req.TrackExpiration
	}

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}
	return ToResponse(*product), nil
}

// DeleteProduct is idempotent: deleting an absent id succeeds. Items already
// referencing the product keep their own copy.
func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepository.DeleteProduct(ctx, id)
}

func mapProducts(products []entities.Product) []domain.ProductResponse {
	responses := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToResponse(p))
	}
	return responses
}
