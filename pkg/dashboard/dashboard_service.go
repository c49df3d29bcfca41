package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/pantry"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/shoppinglist"
	"gorm.io/gorm"
)

type (
	DashboardService interface {
		GetAlerts(ctx context.Context) (domain.DashboardAlertsResponse, error)
		GenerateShoppingList(ctx context.Context) ([]domain.ShoppingListItemResponse, error)
		AddSelectedAlerts(ctx context.Context, pantryItemIDs []int64) ([]domain.ShoppingListItemResponse, error)
	}

	dashboardService struct {
		pantryRepository       pantry.PantryRepository
		shoppingListRepository shoppinglist.ShoppingListRepository
		thresholds             pantry.Thresholds
	}
)

func NewDashboardService(pantryRepository pantry.PantryRepository, shoppingListRepository shoppinglist.ShoppingListRepository, thresholds pantry.Thresholds) DashboardService {
	return &dashboardService{
		pantryRepository:       pantryRepository,
		shoppingListRepository: shoppingListRepository,
		thresholds:             thresholds,
	}
}

// GetAlerts classifies every pantry item and groups the alerts into buckets.
// Expired and expiring-soon are mutually exclusive; low-stock is independent,
// so one item may contribute two alerts.
func (s *dashboardService) GetAlerts(ctx context.Context) (domain.DashboardAlertsResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx)
	if err != nil {
		return domain.DashboardAlertsResponse{}, err
	}

	now := time.Now()
	expiringSoon := []domain.AlertItem{}
	expired := []domain.AlertItem{}
	lowStock := []domain.AlertItem{}

	for i := range items {
		item := items[i]
		flags := pantry.Classify(&item, now, s.thresholds)

		alert := domain.AlertItem{
			PantryItemID:        item.ID,
			ProductName:         item.Product.Name,
			Quantity:            item.Quantity,
			Unit:                item.Product.Unit,
			DaysUntilExpiration: flags.DaysUntilExpiration,
		}
		if item.ExpirationDate != nil {
			formatted := item.ExpirationDate.Format(domain.DateLayout)
			alert.ExpirationDate = &formatted
		}

		if flags.IsExpired {
			alert.AlertType = domain.AlertTypeExpired
			expired = append(expired, alert)
		} else if flags.IsExpiringSoon {
			alert.AlertType = domain.AlertTypeExpiringSoon
			expiringSoon = append(expiringSoon, alert)
		}
		if flags.IsLowStock {
			alert.AlertType = domain.AlertTypeLowStock
			lowStock = append(lowStock, alert)
		}
	}

	return domain.DashboardAlertsResponse{
		ExpiringSoon: expiringSoon,
		Expired:      expired,
		LowStock:     lowStock,
		TotalAlerts:  len(expiringSoon) + len(expired) + len(lowStock),
		Summary: domain.AlertSummary{
			ExpiringCount: len(expiringSoon),
			ExpiredCount:  len(expired),
			LowStockCount: len(lowStock),
		},
	}, nil
}

// GenerateShoppingList creates one pending shopping list entry per alerted
// pantry item. It does not deduplicate against entries already on the list:
// running it twice without consuming anything doubles the entries.
func (s *dashboardService) GenerateShoppingList(ctx context.Context) ([]domain.ShoppingListItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := []domain.ShoppingListItemResponse{}

	for i := range items {
		item := items[i]
		flags := pantry.Classify(&item, now, s.thresholds)
		if !flags.IsExpired && !flags.IsExpiringSoon && !flags.IsLowStock {
			continue
		}

		entry, err := s.addFromPantryItem(ctx, item, domain.NotesAutoAddedFromAlerts)
		if err != nil {
			return nil, err
		}
		created = append(created, entry)
	}

	return created, nil
}

// AddSelectedAlerts adds the named pantry items to the shopping list
// regardless of their current flags. Unknown ids are skipped.
func (s *dashboardService) AddSelectedAlerts(ctx context.Context, pantryItemIDs []int64) ([]domain.ShoppingListItemResponse, error) {
	created := []domain.ShoppingListItemResponse{}

	for _, id := range pantryItemIDs {
		item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrPantryItemNotFound) {
				continue
			}
			return nil, err
		}

		entry, err := s.addFromPantryItem(ctx, *item, domain.NotesAddedFromAlerts)
		if err != nil {
			return nil, err
		}
		created = append(created, entry)
	}

	return created, nil
}

func (s *dashboardService) addFromPantryItem(ctx context.Context, item entities.PantryItem, notes string) (domain.ShoppingListItemResponse, error) {
	entry := &entities.ShoppingListItem{
		ProductID: item.Product.ID,
		Product:   item.Product,
		Quantity:  item.Quantity,
		Priority:  entities.PriorityMedium,
		Status:    entities.StatusPending,
		AddedAt:   time.Now(),
		Notes:     notes,
		AutoAdded: true,
	}

	if err := s.shoppingListRepository.CreateShoppingListItem(ctx, entry); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return shoppinglist.ToResponse(*entry), nil
}
