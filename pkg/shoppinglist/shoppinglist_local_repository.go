package shoppinglist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils/storage"
)

// localShoppingListRepository keeps the shopping list as a single JSON record
// in the local key-value store, products embedded.
type localShoppingListRepository struct {
	store *storage.LocalStore
}

func NewLocalShoppingListRepository(store *storage.LocalStore) ShoppingListRepository {
	return &localShoppingListRepository{store: store}
}

func (r *localShoppingListRepository) load() ([]entities.ShoppingListItem, error) {
	raw, found, err := r.store.Get(storage.KeyShoppingList)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.ShoppingListItem{}, nil
	}

	var items []entities.ShoppingListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode shopping list items: %w", err)
	}
	return items, nil
}

func (r *localShoppingListRepository) save(items []entities.ShoppingListItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode shopping list items: %w", err)
	}
	return r.store.Put(storage.KeyShoppingList, raw)
}

func (r *localShoppingListRepository) GetShoppingListItems(ctx context.Context) ([]entities.ShoppingListItem, error) {
	return r.load()
}

func (r *localShoppingListRepository) GetPendingItems(ctx context.Context) ([]entities.ShoppingListItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	pending := []entities.ShoppingListItem{}
	for _, item := range items {
		if item.Status == entities.StatusPending {
			pending = append(pending, item)
		}
	}
	return pending, nil
}

func (r *localShoppingListRepository) GetShoppingListItemByID(ctx context.Context, id int64) (*entities.ShoppingListItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrShoppingItemNotFound
}

func (r *localShoppingListRepository) CreateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error {
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

func (r *localShoppingListRepository) UpdateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error {
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
	return domain.ErrShoppingItemNotFound
}

func (r *localShoppingListRepository) DeleteShoppingListItem(ctx context.Context, id int64) error {
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

func (r *localShoppingListRepository) DeleteByStatus(ctx context.Context, status string) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	kept := []entities.ShoppingListItem{}
	for _, item := range items {
		if item.Status != status {
			kept = append(kept, item)
		}
	}
	return r.save(kept)
}
