package service

import (
	"testing"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFavouriteServiceTest(t *testing.T) (FavouriteService, repository.ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productRepo := repository.NewProductRepository(testDB)
	favouriteRepo := repository.NewFavouriteRepository(testDB)

	return NewFavouriteService(favouriteRepo, productRepo), productRepo
}

func TestFavouriteService_Products(t *testing.T) {
	favouriteService, productRepo := setupFavouriteServiceTest(t)
	product := insertApprovedProduct(t, productRepo, "Black Tea")

	favourite, err := favouriteService.IsFavourite(product.ProductID)
	require.NoError(t, err)
	assert.False(t, favourite)

	require.NoError(t, favouriteService.AddProduct(product.ProductID))

	favourite, err = favouriteService.IsFavourite(product.ProductID)
	require.NoError(t, err)
	assert.True(t, favourite)

	products, err := favouriteService.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ProductID, products[0].ProductID)

	require.NoError(t, favouriteService.RemoveProduct(product.ProductID))

	favourite, err = favouriteService.IsFavourite(product.ProductID)
	require.NoError(t, err)
	assert.False(t, favourite)
}

func TestFavouriteService_AddProductIdempotent(t *testing.T) {
	favouriteService, productRepo := setupFavouriteServiceTest(t)
	product := insertApprovedProduct(t, productRepo, "Puffed Rice")

	require.NoError(t, favouriteService.AddProduct(product.ProductID))
	require.NoError(t, favouriteService.AddProduct(product.ProductID))
	require.NoError(t, favouriteService.AddProduct(product.ProductID))

	products, err := favouriteService.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestFavouriteService_AddUnknownProduct(t *testing.T) {
	favouriteService, _ := setupFavouriteServiceTest(t)

	err := favouriteService.AddProduct("PRODMISSING1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFavouriteService_ListProductsApprovedOnly(t *testing.T) {
	favouriteService, productRepo := setupFavouriteServiceTest(t)
	approved := insertApprovedProduct(t, productRepo, "Date Molasses")
	pending := insertApprovedProduct(t, productRepo, "Semai")

	require.NoError(t, favouriteService.AddProduct(approved.ProductID))
	require.NoError(t, favouriteService.AddProduct(pending.ProductID))

	// Favourites survive the status change but drop out of the listing
	updated, err := productRepo.SetApproval(pending.ProductID, model.ProductRejected, nil)
	require.NoError(t, err)
	require.True(t, updated)

	products, err := favouriteService.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, approved.ProductID, products[0].ProductID)

	stillFavourite, err := favouriteService.IsFavourite(pending.ProductID)
	require.NoError(t, err)
	assert.True(t, stillFavourite)
}

func TestFavouriteService_Categories(t *testing.T) {
	favouriteService, _ := setupFavouriteServiceTest(t)

	require.NoError(t, favouriteService.AddCategory("Snacks"))
	require.NoError(t, favouriteService.AddCategory("Beverages"))
	require.NoError(t, favouriteService.AddCategory("Snacks"))

	favourite, err := favouriteService.IsFavouriteCategory("Snacks")
	require.NoError(t, err)
	assert.True(t, favourite)

	categories, err := favouriteService.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Beverages", "Snacks"}, categories)

	require.NoError(t, favouriteService.RemoveCategory("Snacks"))

	favourite, err = favouriteService.IsFavouriteCategory("Snacks")
	require.NoError(t, err)
	assert.False(t, favourite)

	categories, err = favouriteService.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Beverages"}, categories)
}
