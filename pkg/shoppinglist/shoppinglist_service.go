package shoppinglist

import (
	"context"
	"errors"
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/product"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		GetShoppingListItems(ctx context.Context, pendingOnly bool) ([]domain.ShoppingListItemResponse, error)
		GetShoppingListItemByID(ctx context.Context, id int64) (domain.ShoppingListItemResponse, error)
		AddShoppingListItem(ctx context.Context, req domain.ShoppingListItemRequest) (domain.ShoppingListItemResponse, error)
		UpdateShoppingListItem(ctx context.Context, id int64, req domain.ShoppingListItemUpdateRequest) (domain.ShoppingListItemResponse, error)
		MarkPurchased(ctx context.Context, id int64) error
		MarkPurchasedBatch(ctx context.Context, ids []int64) error
		Cancel(ctx context.Context, id int64) error
		DeleteShoppingListItem(ctx context.Context, id int64) error
		ClearPurchased(ctx context.Context) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		productRepository      product.ProductRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository, productRepository product.ProductRepository) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		productRepository:      productRepository,
	}
}

// ToResponse maps a shopping list entity to its response shape. Shared with
// the dashboard service, which returns the items it generates.
func ToResponse(item entities.ShoppingListItem) domain.ShoppingListItemResponse {
	return domain.ShoppingListItemResponse{
		ID:        item.ID,
		Product:   product.ToResponse(item.Product),
		Quantity:  item.Quantity,
		Priority:  item.Priority,
		Status:    item.Status,
		AddedAt:   item.AddedAt.Format(time.RFC3339),
		Notes:     item.Notes,
		AutoAdded: item.AutoAdded,
	}
}

func (s *shoppingListService) GetShoppingListItems(ctx context.Context, pendingOnly bool) ([]domain.ShoppingListItemResponse, error) {
	var (
		items []entities.ShoppingListItem
		err   error
	)
	if pendingOnly {
		items, err = s.shoppingListRepository.GetPendingItems(ctx)
	} else {
		items, err = s.shoppingListRepository.GetShoppingListItems(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ShoppingListItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToResponse(item))
	}
	return responses, nil
}

func (s *shoppingListService) GetShoppingListItemByID(ctx context.Context, id int64) (domain.ShoppingListItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return ToResponse(*item), nil
}

// AddShoppingListItem creates a manual entry. When only a product name is
// given, a new product is materialized first with default category and unit.
func (s *shoppingListService) AddShoppingListItem(ctx context.Context, req domain.ShoppingListItemRequest) (domain.ShoppingListItemResponse, error) {
	var p *entities.Product
	switch {
	case req.ProductID != 0:
		existing, err := s.productRepository.GetProductByID(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ShoppingListItemResponse{}, domain.ErrProductNotFound
			}
			return domain.ShoppingListItemResponse{}, err
		}
		p = existing
	case req.ProductName != "":
		p = &entities.Product{
			Name:     req.ProductName,
			Category: domain.DefaultCategory,
			Unit:     domain.DefaultUnit,
		}
		if err := s.productRepository.CreateProduct(ctx, p); err != nil {
			return domain.ShoppingListItemResponse{}, err
		}
	default:
		return domain.ShoppingListItemResponse{}, domain.ErrMissingProductRef
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	priority := req.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}

	item := &entities.ShoppingListItem{
		ProductID: p.ID,
		Product:   *p,
		Quantity:  quantity,
		Priority:  priority,
		Status:    entities.StatusPending,
		AddedAt:   time.Now(),
		Notes:     req.Notes,
	}

	if err := s.shoppingListRepository.CreateShoppingListItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return ToResponse(*item), nil
}

// UpdateShoppingListItem only touches quantity, priority and notes; product,
// status and provenance are fixed once created.
func (s *shoppingListService) UpdateShoppingListItem(ctx context.Context, id int64, req domain.ShoppingListItemUpdateRequest) (domain.ShoppingListItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Priority != "" {
		item.Priority = req.Priority
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := s.shoppingListRepository.UpdateShoppingListItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return ToResponse(*item), nil
}

func (s *shoppingListService) MarkPurchased(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, entities.StatusPurchased)
}

// MarkPurchasedBatch marks each id that still exists; absent ids are skipped.
func (s *shoppingListService) MarkPurchasedBatch(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		if err := s.setStatus(ctx, id, entities.StatusPurchased); err != nil {
			if errors.Is(err, domain.ErrShoppingItemNotFound) {
				continue
			}
			return err
		}
	}
	return nil
}

func (s *shoppingListService) Cancel(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, entities.StatusCancelled)
}

func (s *shoppingListService) DeleteShoppingListItem(ctx context.Context, id int64) error {
	return s.shoppingListRepository.DeleteShoppingListItem(ctx, id)
}

func (s *shoppingListService) ClearPurchased(ctx context.Context) error {
	return s.shoppingListRepository.DeleteByStatus(ctx, entities.StatusPurchased)
}

func (s *shoppingListService) setStatus(ctx context.Context, id int64, status string) error {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return err
	}
	item.Status = status
	return s.shoppingListRepository.UpdateShoppingListItem(ctx, item)
}

func (s *shoppingListService) getItem(ctx context.Context, id int64) (*entities.ShoppingListItem, error) {
	item, err := s.shoppingListRepository.GetShoppingListItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}
	return item, nil
}
