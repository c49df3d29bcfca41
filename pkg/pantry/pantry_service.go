package pantry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/product"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		GetPantryItems(ctx context.Context) ([]domain.PantryItemResponse, error)
		GetPantryItemByID(ctx context.Context, id int64) (domain.PantryItemResponse, error)
		GetPantryItemsByProduct(ctx context.Context, productID int64) ([]domain.PantryItemResponse, error)
		SearchPantryItems(ctx context.Context, q string) ([]domain.PantryItemResponse, error)
		AddPantryItem(ctx context.Context, req domain.PantryItemRequest) (domain.PantryItemResponse, error)
		QuickPurchase(ctx context.Context, req domain.QuickPurchaseRequest) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id int64, req domain.PantryItemUpdateRequest) (domain.PantryItemResponse, error)
		Consume(ctx context.Context, id int64, req domain.ConsumeRequest) (domain.ConsumptionResponse, error)
		ConsumeBatch(ctx context.Context, req domain.BatchConsumeRequest) (domain.ConsumptionResponse, error)
		Discard(ctx context.Context, id int64) error
		DiscardExpired(ctx context.Context) error
		DeletePantryItem(ctx context.Context, id int64) error
	}

	pantryService struct {
		pantryRepository  PantryRepository
		productRepository product.ProductRepository
		thresholds        Thresholds
	}
)

func NewPantryService(pantryRepository PantryRepository, productRepository product.ProductRepository, thresholds Thresholds) PantryService {
	return &pantryService{
		pantryRepository:  pantryRepository,
		productRepository: productRepository,
		thresholds:        thresholds,
	}
}

func (s *pantryService) GetPantryItems(ctx context.Context) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapItems(items), nil
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id int64) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(*item), nil
}

func (s *pantryService) GetPantryItemsByProduct(ctx context.Context, productID int64) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItemsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.mapItems(items), nil
}

func (s *pantryService) SearchPantryItems(ctx context.Context, q string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.SearchPantryItems(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.mapItems(items), nil
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.PantryItemRequest) (domain.PantryItemResponse, error) {
	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
	}

	p, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrProductNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	item := &entities.PantryItem{
		ProductID:      p.ID,
		Product:        *p,
		Quantity:       req.Quantity,
		ExpirationDate: expirationDate,
		AddedDate:      dateOf(time.Now()),
		Location:       req.Location,
		Notes:          req.Notes,
	}

	if err := s.pantryRepository.CreatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(*item), nil
}

// QuickPurchase registers a purchase straight into the pantry. When only a
// product name is given a new product is created first; the two writes are not
// transactional, so a failed item insert leaves the product behind.
func (s *pantryService) QuickPurchase(ctx context.Context, req domain.QuickPurchaseRequest) (domain.PantryItemResponse, error) {
	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
	}

	var p *entities.Product
	switch {
	case req.ProductID != 0:
		p, err = s.productRepository.GetProductByID(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.PantryItemResponse{}, domain.ErrProductNotFound
			}
			return domain.PantryItemResponse{}, err
		}
	case req.ProductName != "":
		p = &entities.Product{
			Name:            req.ProductName,
			Category:        req.Category,
			Unit:            req.Unit,
			TrackExpiration: expirationDate != nil,
		}
		if p.Category == "" {
			p.Category = domain.DefaultCategory
		}
		if p.Unit == "" {
			p.Unit = domain.DefaultUnit
		}
		if err := s.productRepository.CreateProduct(ctx, p); err != nil {
			return domain.PantryItemResponse{}, err
		}
	default:
		return domain.PantryItemResponse{}, domain.ErrMissingProductRef
	}

	item := &entities.PantryItem{
		ProductID:      p.ID,
		Product:        *p,
		Quantity:       req.Quantity,
		ExpirationDate: expirationDate,
		AddedDate:      dateOf(time.Now()),
		Location:       req.Location,
		Notes:          req.Notes,
	}

	if err := s.pantryRepository.CreatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(*item), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id int64, req domain.PantryItemUpdateRequest) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.ExpirationDate != "" {
		expirationDate, err := parseDate(req.ExpirationDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpirationDate = expirationDate
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(*item), nil
}

func (s *pantryService) Consume(ctx context.Context, id int64, req domain.ConsumeRequest) (domain.ConsumptionResponse, error) {
	result := newConsumptionResponse()
	if err := s.consumeOne(ctx, id, req.Quantity, &result); err != nil {
		return domain.ConsumptionResponse{}, err
	}
	finishConsumptionResponse(&result)
	return result, nil
}

// ConsumeBatch applies each pair in order. Pairs already applied stay applied
// when a later one fails; there is no rollback.
func (s *pantryService) ConsumeBatch(ctx context.Context, req domain.BatchConsumeRequest) (domain.ConsumptionResponse, error) {
	result := newConsumptionResponse()
	for _, pair := range req.Items {
		if err := s.consumeOne(ctx, pair.PantryItemID, pair.Quantity, &result); err != nil {
			return domain.ConsumptionResponse{}, err
		}
	}
	finishConsumptionResponse(&result)
	return result, nil
}

func (s *pantryService) consumeOne(ctx context.Context, id int64, quantity float64, result *domain.ConsumptionResponse) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	remaining := item.Quantity - quantity
	if remaining <= 0 {
		// Depleted: the item leaves the pantry entirely, never goes negative.
		if err := s.pantryRepository.DeletePantryItem(ctx, id); err != nil {
			return err
		}
		result.DepletedItemIDs = append(result.DepletedItemIDs, id)
		result.DepletedProductNames = append(result.DepletedProductNames, item.Product.Name)
	} else {
		item.Quantity = remaining
		if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
			return err
		}
		if remaining <= s.thresholds.RunningLow {
			result.LowStockWarnings = append(result.LowStockWarnings, item.Product.Name)
		}
	}

	result.ItemsConsumed++
	return nil
}

// Discard removes an item regardless of remaining quantity. Idempotent.
func (s *pantryService) Discard(ctx context.Context, id int64) error {
	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) DiscardExpired(ctx context.Context) error {
	return s.pantryRepository.DeleteExpired(ctx, dateOf(time.Now()))
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id int64) error {
	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) mapItems(items []entities.PantryItem) []domain.PantryItemResponse {
	responses := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, s.toResponse(item))
	}
	return responses
}

func (s *pantryService) toResponse(item entities.PantryItem) domain.PantryItemResponse {
	flags := Classify(&item, time.Now(), s.thresholds)

	var expirationDate *string
	if item.ExpirationDate != nil {
		formatted := item.ExpirationDate.Format(domain.DateLayout)
		expirationDate = &formatted
	}

	return domain.PantryItemResponse{
		ID:                  item.ID,
		Product:             product.ToResponse(item.Product),
		Quantity:            item.Quantity,
		ExpirationDate:      expirationDate,
		AddedDate:           item.AddedDate.Format(domain.DateLayout),
		Location:            item.Location,
		Notes:               item.Notes,
		IsExpired:           flags.IsExpired,
		IsExpiringSoon:      flags.IsExpiringSoon,
		IsLowStock:          flags.IsLowStock,
		DaysUntilExpiration: flags.DaysUntilExpiration,
	}
}

func newConsumptionResponse() domain.ConsumptionResponse {
	return domain.ConsumptionResponse{
		DepletedItemIDs:      []int64{},
		DepletedProductNames: []string{},
		LowStockWarnings:     []string{},
	}
}

func finishConsumptionResponse(result *domain.ConsumptionResponse) {
	result.HasDepletedItems = len(result.DepletedItemIDs) > 0
	if result.HasDepletedItems {
		result.Message = fmt.Sprintf("Item %s was fully consumed", strings.Join(result.DepletedProductNames, ", "))
	} else {
		result.Message = "Consumption recorded successfully"
	}
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
