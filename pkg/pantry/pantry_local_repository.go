package pantry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils/storage"
)

// localPantryRepository keeps the pantry collection as a single JSON record in
// the local key-value store. Items carry an embedded copy of their product, so
// deleting a product never breaks an existing pantry item.
type localPantryRepository struct {
	store *storage.LocalStore
}

func NewLocalPantryRepository(store *storage.LocalStore) PantryRepository {
	return &localPantryRepository{store: store}
}

func (r *localPantryRepository) load() ([]entities.PantryItem, error) {
	raw, found, err := r.store.Get(storage.KeyPantry)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.PantryItem{}, nil
	}

	var items []entities.PantryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode pantry items: %w", err)
	}
	return items, nil
}

func (r *localPantryRepository) save(items []entities.PantryItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode pantry items: %w", err)
	}
	return r.store.Put(storage.KeyPantry, raw)
}

func (r *localPantryRepository) GetPantryItems(ctx context.Context) ([]entities.PantryItem, error) {
	return r.load()
}

func (r *localPantryRepository) GetPantryItemByID(ctx context.Context, id int64) (*entities.PantryItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrPantryItemNotFound
}

func (r *localPantryRepository) GetPantryItemsByProduct(ctx context.Context, productID int64) ([]entities.PantryItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	filtered := []entities.PantryItem{}
	for _, item := range items {
		if item.Product.ID == productID {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (r *localPantryRepository) SearchPantryItems(ctx context.Context, q string) ([]entities.PantryItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	filtered := []entities.PantryItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Product.Name), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (r *localPantryRepository) CreatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}

	var maxID int64
	for _, existing := range items {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	item.ID = maxID + 1

	items = append(items, *item)
	return r.save(items)
}

func (r *localPantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.save(items)
		}
	}
	return domain.ErrPantryItemNotFound
}

func (r *localPantryRepository) DeletePantryItem(ctx context.Context, id int64) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	filtered := items[:0]
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return r.save(filtered)
}

func (r *localPantryRepository) DeleteExpired(ctx context.Context, before time.Time) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	kept := []entities.PantryItem{}
	for _, item := range items {
		if item.ExpirationDate == nil || !dateOf(*item.ExpirationDate).Before(before) {
			kept = append(kept, item)
		}
	}
	return r.save(kept)
}
