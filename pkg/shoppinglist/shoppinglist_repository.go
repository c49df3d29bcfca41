package shoppinglist

import (
	"context"

	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		GetShoppingListItems(ctx context.Context) ([]entities.ShoppingListItem, error)
		GetPendingItems(ctx context.Context) ([]entities.ShoppingListItem, error)
		GetShoppingListItemByID(ctx context.Context, id int64) (*entities.ShoppingListItem, error)
		CreateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error
		UpdateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteShoppingListItem(ctx context.Context, id int64) error
		DeleteByStatus(ctx context.Context, status string) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) GetShoppingListItems(ctx context.Context) ([]entities.ShoppingListItem, error) {
	var items []entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Preload("Product").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) GetPendingItems(ctx context.Context) ([]entities.ShoppingListItem, error) {
	var items []entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Preload("Product").
		Where("status = ?", entities.StatusPending).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) GetShoppingListItemByID(ctx context.Context, id int64) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) CreateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Omit("Product").Create(item).Error
}

func (r *shoppingListRepository) UpdateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Omit("Product").Save(item).Error
}

func (r *shoppingListRepository) DeleteShoppingListItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingListRepository) DeleteByStatus(ctx context.Context, status string) error {
	return r.db.WithContext(ctx).Where("status = ?", status).Delete(&entities.ShoppingListItem{}).Error
}
