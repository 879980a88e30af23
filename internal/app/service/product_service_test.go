package service

import (
	"testing"
	"time"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	productService ProductService
	vendorService  VendorService
	productRepo    repository.ProductRepository
	companyRepo    repository.CompanyVendorRepository
}

func setupProductServiceTest(t *testing.T) *productServiceFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	companyRepo := repository.NewCompanyVendorRepository(testDB)
	retailRepo := repository.NewRetailVendorRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	vendorService := NewVendorService(
		companyRepo,
		retailRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)

	return &productServiceFixture{
		productService: NewProductService(productRepo, vendorService),
		vendorService:  vendorService,
		productRepo:    productRepo,
		companyRepo:    companyRepo,
	}
}

// approvedVendor registers a company vendor and flips it to approved
func (f *productServiceFixture) approvedVendor(t *testing.T, email string) *model.CompanyVendor {
	t.Helper()
	vendor := registerTestCompanyVendor(t, f.vendorService, email)
	updated, err := f.companyRepo.UpdateStatus(vendor.VendorID, model.StatusApproved)
	require.NoError(t, err)
	require.True(t, updated)
	return vendor
}

func (f *productServiceFixture) addProduct(t *testing.T, vendorID, name, category string) *model.Product {
	t.Helper()
	product, err := f.productService.AddProduct(AddProductInput{
		Name:       name,
		Price:      25.0,
		Unit:       "piece",
		Category:   category,
		VendorID:   vendorID,
		VendorType: model.VendorTypeCompany,
	})
	require.NoError(t, err)
	return product
}

func TestProductService_AddProduct(t *testing.T) {
	f := setupProductServiceTest(t)
	vendor := f.approvedVendor(t, "vendor@example.com")

	product := f.addProduct(t, vendor.VendorID, "Mango Juice", "Beverages")

	assert.Regexp(t, `^PROD[A-F0-9]{8}$`, product.ProductID)
	assert.Equal(t, model.ProductPending, product.ApprovalStatus)
	require.NotNil(t, product.VendorID)
	assert.Equal(t, vendor.VendorID, *product.VendorID)
}

func TestProductService_AddProductValidation(t *testing.T) {
	f := setupProductServiceTest(t)
	vendor := f.approvedVendor(t, "vendor@example.com")

	tests := []struct {
		name    string
		input   AddProductInput
		wantErr error
	}{
		{
			name: "Blank name",
			input: AddProductInput{
				Name:       "   ",
				Price:      10,
				VendorID:   vendor.VendorID,
				VendorType: model.VendorTypeCompany,
			},
			wantErr: ErrProductNameRequired,
		},
		{
			name: "Zero price",
			input: AddProductInput{
				Name:       "Free Thing",
				Price:      0,
				VendorID:   vendor.VendorID,
				VendorType: model.VendorTypeCompany,
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name: "Negative price",
			input: AddProductInput{
				Name:       "Weird Thing",
				Price:      -5,
				VendorID:   vendor.VendorID,
				VendorType: model.VendorTypeCompany,
			},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.productService.AddProduct(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_AddProductRequiresApprovedVendor(t *testing.T) {
	f := setupProductServiceTest(t)
	pending := registerTestCompanyVendor(t, f.vendorService, "pending@example.com")

	_, err := f.productService.AddProduct(AddProductInput{
		Name:       "Too Early",
		Price:      10,
		VendorID:   pending.VendorID,
		VendorType: model.VendorTypeCompany,
	})
	assert.ErrorIs(t, err, ErrVendorNotApproved)

	// Unknown vendor references are refused the same way
	_, err = f.productService.AddProduct(AddProductInput{
		Name:       "No Vendor",
		Price:      10,
		VendorID:   "CV-missing1",
		VendorType: model.VendorTypeCompany,
	})
	assert.ErrorIs(t, err, ErrVendorNotApproved)
}

func TestProductService_ApprovalFlow(t *testing.T) {
	f := setupProductServiceTest(t)
	vendor := f.approvedVendor(t, "vendor@example.com")
	product := f.addProduct(t, vendor.VendorID, "Banana Chips", "Snacks")

	// Pending products stay off the public catalog
	listed, err := f.productService.ListApproved()
	require.NoError(t, err)
	assert.Empty(t, listed)

	pending, err := f.productService.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, product.ProductID, pending[0].ProductID)

	require.NoError(t, f.productService.Approve(product.ProductID))

	listed, err = f.productService.ListApproved()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, model.ProductApproved, listed[0].ApprovalStatus)

	byCategory, err := f.productService.ListApprovedByCategory("Snacks")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	otherCategory, err := f.productService.ListApprovedByCategory("Beverages")
	require.NoError(t, err)
	assert.Empty(t, otherCategory)
}

func TestProductService_RejectThenApprove(t *testing.T) {
	f := setupProductServiceTest(t)
	vendor := f.approvedVendor(t, "vendor@example.com")
	product := f.addProduct(t, vendor.VendorID, "Pickles", "Condiments")

	require.NoError(t, f.productService.Reject(product.ProductID, "blurry product photo"))

	rejected, err := f.productService.GetProduct(product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, model.ProductRejected, rejected.ApprovalStatus)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "blurry product photo", *rejected.RejectionReason)

	// A rejected product can be approved later; the reason is cleared
	require.NoError(t, f.productService.Approve(product.ProductID))

	approved, err := f.productService.GetProduct(product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, model.ProductApproved, approved.ApprovalStatus)
	assert.Nil(t, approved.RejectionReason)
}

func TestProductService_RejectRequiresReason(t *testing.T) {
	f := setupProductServiceTest(t)
	vendor := f.approvedVendor(t, "vendor@example.com")
	product := f.addProduct(t, vendor.VendorID, "Soap", "Toiletries")

	err := f.productService.Reject(product.ProductID, "   ")
	assert.ErrorIs(t, err, ErrRejectionReasonRequired)

	err = f.productService.Reject("PRODMISSING1", "whatever")
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = f.productService.Approve("PRODMISSING1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_RecommendationCounter(t *testing.T) {
	f := setupProductServiceTest(t)
	vendor := f.approvedVendor(t, "vendor@example.com")
	product := f.addProduct(t, vendor.VendorID, "Green Tea", "Beverages")

	require.NoError(t, f.productService.Recommend(product.ProductID))

	got, err := f.productService.GetProduct(product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RecommendationCount)

	// The counter saturates at zero no matter how often it is lowered
	require.NoError(t, f.productService.Unrecommend(product.ProductID))
	require.NoError(t, f.productService.Unrecommend(product.ProductID))
	require.NoError(t, f.productService.Unrecommend(product.ProductID))

	got, err = f.productService.GetProduct(product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RecommendationCount)

	assert.ErrorIs(t, f.productService.Recommend("PRODMISSING1"), ErrProductNotFound)
	assert.ErrorIs(t, f.productService.Unrecommend("PRODMISSING1"), ErrProductNotFound)
}

func TestProductService_SetRecommendationCount(t *testing.T) {
	f := setupProductServiceTest(t)
	vendor := f.approvedVendor(t, "vendor@example.com")
	product := f.addProduct(t, vendor.VendorID, "Honey", "Grocery")

	require.NoError(t, f.productService.SetRecommendationCount(product.ProductID, 42))

	got, err := f.productService.GetProduct(product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.RecommendationCount)

	// Negative targets clamp to zero
	require.NoError(t, f.productService.SetRecommendationCount(product.ProductID, -3))

	got, err = f.productService.GetProduct(product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RecommendationCount)
}

func TestProductService_ListByVendor(t *testing.T) {
	f := setupProductServiceTest(t)
	vendorA := f.approvedVendor(t, "a@example.com")
	vendorB := f.approvedVendor(t, "b@example.com")

	f.addProduct(t, vendorA.VendorID, "Rice", "Grocery")
	f.addProduct(t, vendorA.VendorID, "Lentils", "Grocery")
	f.addProduct(t, vendorB.VendorID, "Biscuits", "Snacks")

	mine, err := f.productService.ListByVendor(vendorA.VendorID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := f.productService.ListByVendor(vendorB.VendorID)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
