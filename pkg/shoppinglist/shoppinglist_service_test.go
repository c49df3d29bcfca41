package shoppinglist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils/storage"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (ShoppingListService, product.ProductRepository) {
	t.Helper()
	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	productRepository := product.NewLocalProductRepository(store)
	return NewShoppingListService(NewLocalShoppingListRepository(store), productRepository), productRepository
}

func TestAddShoppingListItemByName(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()

	res, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Pão"})
	require.NoError(t, err)
	assert.Equal(t, "Pão", res.Product.Name)
	assert.Equal(t, domain.DefaultCategory, res.Product.Category)
	assert.Equal(t, domain.DefaultUnit, res.Product.Unit)
	assert.Equal(t, 1.0, res.Quantity)
	assert.Equal(t, entities.PriorityMedium, res.Priority)
	assert.Equal(t, entities.StatusPending, res.Status)
	assert.False(t, res.AutoAdded)

	// the product is materialized in the catalog
	products, err := productRepository.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestAddShoppingListItemByProductID(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()

	p := &entities.Product{Name: "Leite", Category: "Laticínios", Unit: "L"}
	require.NoError(t, productRepository.CreateProduct(ctx, p))

	res, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{
		ProductID: p.ID,
		Quantity:  3,
		Priority:  entities.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, res.Product.ID)
	assert.Equal(t, 3.0, res.Quantity)
	assert.Equal(t, entities.PriorityHigh, res.Priority)
}

func TestAddShoppingListItemProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddShoppingListItem(context.Background(), domain.ShoppingListItemRequest{ProductID: 404})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddShoppingListItemMissingProductRef(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddShoppingListItem(context.Background(), domain.ShoppingListItemRequest{})
	require.ErrorIs(t, err, domain.ErrMissingProductRef)
}

func TestUpdateShoppingListItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Café"})
	require.NoError(t, err)

	notes := "moído"
	updated, err := svc.UpdateShoppingListItem(ctx, created.ID, domain.ShoppingListItemUpdateRequest{
		Quantity: 2,
		Priority: entities.PriorityUrgent,
		Notes:    &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Quantity)
	assert.Equal(t, entities.PriorityUrgent, updated.Priority)
	assert.Equal(t, "moído", updated.Notes)
	// status never changes through update
	assert.Equal(t, entities.StatusPending, updated.Status)
}

func TestUpdateShoppingListItemNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateShoppingListItem(context.Background(), 404, domain.ShoppingListItemUpdateRequest{Quantity: 2})
	require.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestMarkPurchasedAndCancel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Arroz"})
	require.NoError(t, err)
	second, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Feijão"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkPurchased(ctx, first.ID))
	require.NoError(t, svc.Cancel(ctx, second.ID))

	purchased, err := svc.GetShoppingListItemByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPurchased, purchased.Status)

	cancelled, err := svc.GetShoppingListItemByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancelled, cancelled.Status)
}

func TestMarkPurchasedNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.MarkPurchased(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestMarkPurchasedBatchSkipsMissingIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Arroz"})
	require.NoError(t, err)
	second, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Feijão"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkPurchasedBatch(ctx, []int64{first.ID, 404, second.ID}))

	items, err := svc.GetShoppingListItems(ctx, false)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, entities.StatusPurchased, item.Status)
	}
}

func TestGetShoppingListItemsPendingOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Arroz"})
	require.NoError(t, err)
	_, err = svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Feijão"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkPurchased(ctx, first.ID))

	pending, err := svc.GetShoppingListItems(ctx, true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Feijão", pending[0].Product.Name)

	all, err := svc.GetShoppingListItems(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClearPurchased(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Arroz"})
	require.NoError(t, err)
	second, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Feijão"})
	require.NoError(t, err)
	third, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Leite"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkPurchased(ctx, first.ID))
	require.NoError(t, svc.Cancel(ctx, second.ID))

	require.NoError(t, svc.ClearPurchased(ctx))

	items, err := svc.GetShoppingListItems(ctx, false)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// cancelled and pending entries survive the sweep
	ids := []int64{items[0].ID, items[1].ID}
	assert.Contains(t, ids, second.ID)
	assert.Contains(t, ids, third.ID)
}

func TestDeleteShoppingListItemIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddShoppingListItem(ctx, domain.ShoppingListItemRequest{ProductName: "Arroz"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShoppingListItem(ctx, created.ID))
	require.NoError(t, svc.DeleteShoppingListItem(ctx, created.ID))
}
