package pantry

import (
	"context"
	"strings"
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		GetPantryItems(ctx context.Context) ([]entities.PantryItem, error)
		GetPantryItemByID(ctx context.Context, id int64) (*entities.PantryItem, error)
		GetPantryItemsByProduct(ctx context.Context, productID int64) ([]entities.PantryItem, error)
		SearchPantryItems(ctx context.Context, q string) ([]entities.PantryItem, error)
		CreatePantryItem(ctx context.Context, item *entities.PantryItem) error
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, id int64) error
		DeleteExpired(ctx context.Context, before time.Time) error
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) GetPantryItems(ctx context.Context) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	if err := r.db.WithContext(ctx).Preload("Product").Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id int64) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetPantryItemsByProduct(ctx context.Context, productID int64) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	if err := r.db.WithContext(ctx).Preload("Product").
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) SearchPantryItems(ctx context.Context, q string) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	pattern := "%" + strings.ToLower(q) + "%"
	if err := r.db.WithContext(ctx).Preload("Product").
		Joins("JOIN products ON products.id = pantry_items.product_id").
		Where("LOWER(products.name) LIKE ?", pattern).
		Order("pantry_items.id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) CreatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Omit("Product").Create(item).Error
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Omit("Product").Save(item).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) DeleteExpired(ctx context.Context, before time.Time) error {
	return r.db.WithContext(ctx).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", before).
		Delete(&entities.PantryItem{}).Error
}
