package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductUCFixture() (*ProductUseCase, *fakeProductRepo, *fakeCacheRepo, *fakeDB) {
	productRepo := newFakeProductRepo(
		&domain.Product{ID: 1, Name: "Laptop", Category: "electronics", Price: 99999, QuantityInStock: 10},
	)
	cacheRepo := newFakeCacheRepo()
	db := newFakeDB()
	uc := NewProductUC(productRepo, cacheRepo, db, noopLogger{})
	return uc, productRepo, cacheRepo, db
}

func TestProductUC_CreateProduct(t *testing.T) {
	uc, productRepo, _, db := newProductUCFixture()

	info, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:            "Mouse",
		Category:        "electronics",
		Price:           2500,
		QuantityInStock: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), info.ID)
	assert.Equal(t, "Mouse", info.Name)
	assert.Equal(t, int64(2500), info.Price)
	assert.Equal(t, int64(3), info.QuantityInStock)
	assert.Equal(t, 1, db.tx.commits)
	assert.NotNil(t, productRepo.products[2])
}

func TestProductUC_CreateProduct_Validation(t *testing.T) {
	uc, _, _, db := newProductUCFixture()

	cases := []struct {
		name string
		req  CreateProductReq
		want error
	}{
		{"empty name", CreateProductReq{Name: "  ", Price: 100}, e.ErrProductNameRequired},
		{"negative price", CreateProductReq{Name: "Mouse", Price: -1}, e.ErrInvalidPrice},
		{"negative stock", CreateProductReq{Name: "Mouse", Price: 100, QuantityInStock: -5}, e.ErrNegativeStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), &tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}

	assert.Zero(t, db.tx.commits, "невалидный запрос не должен открывать транзакцию")
}

func TestProductUC_GetProduct_CacheHit(t *testing.T) {
	uc, productRepo, cacheRepo, _ := newProductUCFixture()
	cacheRepo.stored[1] = NewProductInfo(1, "Laptop (cached)", "electronics", 99999, 10)

	// Кэш отвечает раньше базы
	delete(productRepo.products, 1)

	info, err := uc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop (cached)", info.Name)
}

func TestProductUC_GetProduct_CacheMissFallsBack(t *testing.T) {
	uc, _, cacheRepo, _ := newProductUCFixture()
	cacheRepo.getErr = errBoom

	info, err := uc.GetProduct(context.Background(), 1)
	require.NoError(t, err, "ошибка кэша не должна ломать чтение")
	assert.Equal(t, "Laptop", info.Name)
}

func TestProductUC_GetProduct_NotFound(t *testing.T) {
	uc, _, _, _ := newProductUCFixture()

	_, err := uc.GetProduct(context.Background(), 42)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestProductUC_UpdateProduct_InvalidatesCache(t *testing.T) {
	uc, productRepo, cacheRepo, _ := newProductUCFixture()

	info, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ID:              1,
		Name:            "Laptop Pro",
		Category:        "electronics",
		Price:           129999,
		QuantityInStock: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "Laptop Pro", info.Name)
	assert.Equal(t, "Laptop Pro", productRepo.products[1].Name)
	require.Len(t, cacheRepo.deletedIDs, 1)
	assert.Equal(t, []int64{1}, cacheRepo.deletedIDs[0])
}

func TestProductUC_UpdateProduct_NotFound(t *testing.T) {
	uc, _, cacheRepo, db := newProductUCFixture()

	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ID:    42,
		Name:  "Ghost",
		Price: 100,
	})
	require.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Empty(t, cacheRepo.deletedIDs)
}

func TestProductUC_DeleteProduct(t *testing.T) {
	uc, productRepo, cacheRepo, _ := newProductUCFixture()

	require.NoError(t, uc.DeleteProduct(context.Background(), 1))
	assert.Nil(t, productRepo.products[1])
	require.Len(t, cacheRepo.deletedIDs, 1)
}

func TestProductUC_AddStock(t *testing.T) {
	uc, productRepo, _, _ := newProductUCFixture()

	info, err := uc.AddStock(context.Background(), &StockReq{ProductID: 1, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(15), info.QuantityInStock)
	assert.Equal(t, int64(15), productRepo.products[1].QuantityInStock)
}

func TestProductUC_RemoveStock(t *testing.T) {
	uc, productRepo, _, _ := newProductUCFixture()

	info, err := uc.RemoveStock(context.Background(), &StockReq{ProductID: 1, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(6), info.QuantityInStock)
	assert.Equal(t, int64(6), productRepo.products[1].QuantityInStock)
}

func TestProductUC_RemoveStock_OutOfStock(t *testing.T) {
	uc, productRepo, _, db := newProductUCFixture()

	// Laptop: 999.99, остаток 10, запрошено 20
	_, err := uc.RemoveStock(context.Background(), &StockReq{ProductID: 1, Quantity: 20})
	require.ErrorIs(t, err, e.ErrOutOfStock)

	var outOfStock *e.OutOfStockError
	require.ErrorAs(t, err, &outOfStock)
	assert.Equal(t, "Laptop", outOfStock.ProductName)
	assert.Equal(t, int64(20), outOfStock.Requested)
	assert.Equal(t, int64(10), outOfStock.Available)

	assert.Equal(t, int64(10), productRepo.products[1].QuantityInStock)
	assert.Zero(t, db.tx.commits)
}

func TestProductUC_StockMutation_InvalidQuantity(t *testing.T) {
	uc, productRepo, _, _ := newProductUCFixture()

	_, err := uc.AddStock(context.Background(), &StockReq{ProductID: 1, Quantity: 0})
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.RemoveStock(context.Background(), &StockReq{ProductID: 1, Quantity: -3})
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	assert.Equal(t, int64(10), productRepo.products[1].QuantityInStock)
}

func TestProductUC_ListProducts(t *testing.T) {
	uc, productRepo, _, _ := newProductUCFixture()
	productRepo.products[2] = &domain.Product{ID: 2, Name: "Mouse", Category: "electronics", Price: 2500, QuantityInStock: 3}
	productRepo.nextID = 3

	infos, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "Laptop", infos[0].Name)
	assert.Equal(t, "Mouse", infos[1].Name)
}
