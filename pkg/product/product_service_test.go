package product

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) ProductService {
	t.Helper()
	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewProductService(NewLocalProductRepository(store))
}

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateProduct(context.Background(), domain.ProductRequest{
		Name:            "Arroz",
		Category:        "Grãos",
		Unit:            "kg",
		TrackExpiration: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Arroz", res.Name)
	assert.True(t, res.TrackExpiration)
}

func TestCreateProductAssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateProduct(ctx, domain.ProductRequest{Name: "Arroz"})
	require.NoError(t, err)
	second, err := svc.CreateProduct(ctx, domain.ProductRequest{Name: "Feijão"})
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
}

func TestGetProductByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetProductByID(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductsByCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, domain.ProductRequest{Name: "Arroz", Category: "Grãos"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, domain.ProductRequest{Name: "Leite", Category: "Laticínios"})
	require.NoError(t, err)

	products, err := svc.GetProductsByCategory(ctx, "Grãos")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Arroz", products[0].Name)
}

func TestSearchProductsMatchesNameAndCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, domain.ProductRequest{Name: "Arroz Integral", Category: "Grãos"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, domain.ProductRequest{Name: "Leite", Category: "Laticínios"})
	require.NoError(t, err)

	byName, err := svc.SearchProducts(ctx, "arroz")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byCategory, err := svc.SearchProducts(ctx, "latic")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}

func TestUpdateProductMergesFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, domain.ProductRequest{
		Name:     "Arroz",
		Category: "Grãos",
		Unit:     "kg",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ID, domain.ProductUpdateRequest{Name: "Arroz Integral"})
	require.NoError(t, err)
	assert.Equal(t, "Arroz Integral", updated.Name)
	assert.Equal(t, "Grãos", updated.Category)
	assert.Equal(t, "kg", updated.Unit)
}

func TestUpdateProductKeepsTrackExpirationWhenOmitted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, domain.ProductRequest{
		Name:            "Leite",
		TrackExpiration: true,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ID, domain.ProductUpdateRequest{Name: "Leite Integral"})
	require.NoError(t, err)
	assert.True(t, updated.TrackExpiration)

	off := false
	updated, err = svc.UpdateProduct(ctx, created.ID, domain.ProductUpdateRequest{TrackExpiration: &off})
	require.NoError(t, err)
	assert.False(t, updated.TrackExpiration)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateProduct(context.Background(), 404, domain.ProductUpdateRequest{Name: "X"})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, domain.ProductRequest{Name: "Arroz"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))
	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	products, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}
