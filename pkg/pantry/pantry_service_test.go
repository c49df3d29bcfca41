package pantry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/entities"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils/storage"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (PantryService, product.ProductRepository) {
	t.Helper()
	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	productRepository := product.NewLocalProductRepository(store)
	pantryRepository := NewLocalPantryRepository(store)
	return NewPantryService(pantryRepository, productRepository, DefaultThresholds()), productRepository
}

func createProduct(t *testing.T, repo product.ProductRepository, name string) *entities.Product {
	t.Helper()
	p := &entities.Product{Name: name, Category: "Grãos", Unit: "kg"}
	require.NoError(t, repo.CreateProduct(context.Background(), p))
	return p
}

func TestAddPantryItem(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Arroz")

	res, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{
		ProductID:      p.ID,
		Quantity:       3,
		ExpirationDate: time.Now().AddDate(0, 0, 30).Format(domain.DateLayout),
		Location:       "Armário",
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "Arroz", res.Product.Name)
	assert.Equal(t, 3.0, res.Quantity)
	assert.Equal(t, "Armário", res.Location)
	assert.False(t, res.IsExpired)
	assert.False(t, res.IsExpiringSoon)
}

func TestAddPantryItemProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddPantryItem(context.Background(), domain.PantryItemRequest{
		ProductID: 99999,
		Quantity:  1,
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddPantryItemInvalidDate(t *testing.T) {
	svc, productRepository := newTestService(t)
	p := createProduct(t, productRepository, "Leite")

	_, err := svc.AddPantryItem(context.Background(), domain.PantryItemRequest{
		ProductID:      p.ID,
		Quantity:       1,
		ExpirationDate: "15/06/2025",
	})
	require.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestQuickPurchaseByName(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()

	res, err := svc.QuickPurchase(ctx, domain.QuickPurchaseRequest{
		ProductName:    "Café",
		Quantity:       2,
		ExpirationDate: time.Now().AddDate(0, 1, 0).Format(domain.DateLayout),
	})
	require.NoError(t, err)
	assert.Equal(t, "Café", res.Product.Name)
	assert.Equal(t, domain.DefaultCategory, res.Product.Category)
	assert.Equal(t, domain.DefaultUnit, res.Product.Unit)
	assert.True(t, res.Product.TrackExpiration)

	// the product was materialized in the catalog
	products, err := productRepository.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Café", products[0].Name)
}

func TestQuickPurchaseByNameWithoutDate(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.QuickPurchase(context.Background(), domain.QuickPurchaseRequest{
		ProductName: "Sal",
		Quantity:    1,
	})
	require.NoError(t, err)
	assert.False(t, res.Product.TrackExpiration)
	assert.Nil(t, res.ExpirationDate)
}

func TestQuickPurchaseByID(t *testing.T) {
	svc, productRepository := newTestService(t)
	p := createProduct(t, productRepository, "Feijão")

	res, err := svc.QuickPurchase(context.Background(), domain.QuickPurchaseRequest{
		ProductID: p.ID,
		Quantity:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, res.Product.ID)
	assert.Equal(t, 4.0, res.Quantity)
}

func TestQuickPurchaseMissingProductRef(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.QuickPurchase(context.Background(), domain.QuickPurchaseRequest{Quantity: 1})
	require.ErrorIs(t, err, domain.ErrMissingProductRef)
}

func TestConsumePartial(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Arroz")

	item, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: p.ID, Quantity: 10})
	require.NoError(t, err)

	res, err := svc.Consume(ctx, item.ID, domain.ConsumeRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ItemsConsumed)
	assert.Empty(t, res.DepletedItemIDs)
	assert.False(t, res.HasDepletedItems)
	assert.Empty(t, res.LowStockWarnings)
	assert.Equal(t, "Consumption recorded successfully", res.Message)

	remaining, err := svc.GetPantryItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.0, remaining.Quantity)
}

func TestConsumeLeavesRunningLowWarning(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Açúcar")

	item, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: p.ID, Quantity: 6})
	require.NoError(t, err)

	res, err := svc.Consume(ctx, item.ID, domain.ConsumeRequest{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Açúcar"}, res.LowStockWarnings)
}

func TestConsumeDepletes(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Leite")

	item, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	// over-consuming removes the item instead of going negative
	res, err := svc.Consume(ctx, item.ID, domain.ConsumeRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{item.ID}, res.DepletedItemIDs)
	assert.Equal(t, []string{"Leite"}, res.DepletedProductNames)
	assert.True(t, res.HasDepletedItems)
	assert.Equal(t, "Item Leite was fully consumed", res.Message)

	_, err = svc.GetPantryItemByID(ctx, item.ID)
	require.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestConsumeInvalidQuantity(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Ovos")

	item, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: p.ID, Quantity: 12})
	require.NoError(t, err)

	_, err = svc.Consume(ctx, item.ID, domain.ConsumeRequest{Quantity: 0})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.Consume(ctx, item.ID, domain.ConsumeRequest{Quantity: -1})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestConsumeNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Consume(context.Background(), 404, domain.ConsumeRequest{Quantity: 1})
	require.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestConsumeBatch(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	rice := createProduct(t, productRepository, "Arroz")
	milk := createProduct(t, productRepository, "Leite")

	riceItem, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: rice.ID, Quantity: 10})
	require.NoError(t, err)
	milkItem, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: milk.ID, Quantity: 1})
	require.NoError(t, err)

	res, err := svc.ConsumeBatch(ctx, domain.BatchConsumeRequest{Items: []domain.BatchConsumeItem{
		{PantryItemID: riceItem.ID, Quantity: 2},
		{PantryItemID: milkItem.ID, Quantity: 1},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ItemsConsumed)
	assert.Equal(t, []int64{milkItem.ID}, res.DepletedItemIDs)
	assert.True(t, res.HasDepletedItems)
}

func TestConsumeBatchStopsOnMissingItem(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Arroz")

	item, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: p.ID, Quantity: 10})
	require.NoError(t, err)

	_, err = svc.ConsumeBatch(ctx, domain.BatchConsumeRequest{Items: []domain.BatchConsumeItem{
		{PantryItemID: item.ID, Quantity: 2},
		{PantryItemID: 404, Quantity: 1},
	}})
	require.ErrorIs(t, err, domain.ErrPantryItemNotFound)

	// the first pair stays applied
	remaining, err := svc.GetPantryItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, remaining.Quantity)
}

func TestUpdatePantryItemMergesFields(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Queijo")

	item, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{
		ProductID: p.ID,
		Quantity:  1,
		Location:  "Geladeira",
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePantryItem(ctx, item.ID, domain.PantryItemUpdateRequest{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Quantity)
	assert.Equal(t, "Geladeira", updated.Location)
}

func TestUpdatePantryItemNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdatePantryItem(context.Background(), 404, domain.PantryItemUpdateRequest{Quantity: 2})
	require.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestDiscardIsIdempotent(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Manteiga")

	item, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Discard(ctx, item.ID))
	require.NoError(t, svc.Discard(ctx, item.ID))
}

func TestDiscardExpired(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	p := createProduct(t, productRepository, "Iogurte")

	expired, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{
		ProductID:      p.ID,
		Quantity:       1,
		ExpirationDate: time.Now().AddDate(0, 0, -3).Format(domain.DateLayout),
	})
	require.NoError(t, err)
	fresh, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{
		ProductID:      p.ID,
		Quantity:       1,
		ExpirationDate: time.Now().AddDate(0, 0, 3).Format(domain.DateLayout),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DiscardExpired(ctx))

	items, err := svc.GetPantryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fresh.ID, items[0].ID)
	assert.NotEqual(t, expired.ID, items[0].ID)
}

func TestDeleteExpiredKeepsItemsExpiringToday(t *testing.T) {
	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	repo := NewLocalPantryRepository(store)
	ctx := context.Background()

	expToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	expYesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreatePantryItem(ctx, &entities.PantryItem{
		Product: entities.Product{Name: "Leite"}, Quantity: 1, ExpirationDate: &expToday,
	}))
	require.NoError(t, repo.CreatePantryItem(ctx, &entities.PantryItem{
		Product: entities.Product{Name: "Manteiga"}, Quantity: 1, ExpirationDate: &expYesterday,
	}))

	// cutoff derived from a clock west of UTC on the same calendar day
	brt := time.FixedZone("BRT", -3*60*60)
	require.NoError(t, repo.DeleteExpired(ctx, dateOf(time.Date(2025, 6, 15, 23, 0, 0, 0, brt))))

	items, err := repo.GetPantryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Leite", items[0].Product.Name)
}

func TestSearchPantryItems(t *testing.T) {
	svc, productRepository := newTestService(t)
	ctx := context.Background()
	rice := createProduct(t, productRepository, "Arroz Integral")
	coffee := createProduct(t, productRepository, "Café")

	_, err := svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: rice.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddPantryItem(ctx, domain.PantryItemRequest{ProductID: coffee.ID, Quantity: 1})
	require.NoError(t, err)

	results, err := svc.SearchPantryItems(ctx, "arroz")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Arroz Integral", results[0].Product.Name)
}
