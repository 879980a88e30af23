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

func setupVendorServiceTest(t *testing.T) (VendorService, repository.CompanyVendorRepository, repository.RetailVendorRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	companyRepo := repository.NewCompanyVendorRepository(testDB)
	retailRepo := repository.NewRetailVendorRepository(testDB)
	vendorService := NewVendorService(
		companyRepo,
		retailRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)

	return vendorService, companyRepo, retailRepo
}

func registerTestCompanyVendor(t *testing.T, vendorService VendorService, email string) *model.CompanyVendor {
	t.Helper()
	vendor, err := vendorService.RegisterCompanyVendor(RegisterCompanyVendorInput{
		FullName:    "Karim Ahmed",
		Designation: "Manager",
		CompanyName: "Deshi Foods Ltd",
		Email:       email,
		Password:    "vendor123",
		PhoneNumber: "01712340000",
	})
	require.NoError(t, err)
	return vendor
}

func registerTestRetailVendor(t *testing.T, vendorService VendorService, email string) *model.RetailVendor {
	t.Helper()
	vendor, err := vendorService.RegisterRetailVendor(RegisterRetailVendorInput{
		OwnerName:   "Salma Begum",
		ShopName:    "Salma General Store",
		Email:       email,
		Password:    "vendor123",
		PhoneNumber: "01812340000",
	})
	require.NoError(t, err)
	return vendor
}

func TestVendorService_RegistrationStartsPending(t *testing.T) {
	vendorService, _, _ := setupVendorServiceTest(t)

	company := registerTestCompanyVendor(t, vendorService, "company@example.com")
	assert.Equal(t, model.StatusPending, company.AccountStatus)
	assert.Regexp(t, `^CV-[a-f0-9]{8}$`, company.VendorID)

	retail := registerTestRetailVendor(t, vendorService, "retail@example.com")
	assert.Equal(t, model.StatusPending, retail.AccountStatus)
	assert.Regexp(t, `^RV-[a-f0-9]{8}$`, retail.VendorID)
}

func TestVendorService_DuplicateEmail(t *testing.T) {
	vendorService, _, _ := setupVendorServiceTest(t)
	registerTestCompanyVendor(t, vendorService, "dup@example.com")

	_, err := vendorService.RegisterCompanyVendor(RegisterCompanyVendorInput{
		FullName:    "Someone Else",
		CompanyName: "Other Company",
		Email:       "dup@example.com",
		Password:    "vendor456",
		PhoneNumber: "01700000000",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestVendorService_LoginRequiresApproval(t *testing.T) {
	vendorService, companyRepo, _ := setupVendorServiceTest(t)
	vendor := registerTestCompanyVendor(t, vendorService, "gate@example.com")

	// Pending: refused even with correct credentials
	_, _, err := vendorService.LoginCompanyVendor("gate@example.com", "vendor123")
	assert.ErrorIs(t, err, ErrVendorNotApproved)

	// Rejected: still refused
	updated, err := companyRepo.UpdateStatus(vendor.VendorID, model.StatusRejected)
	require.NoError(t, err)
	require.True(t, updated)
	_, _, err = vendorService.LoginCompanyVendor("gate@example.com", "vendor123")
	assert.ErrorIs(t, err, ErrVendorNotApproved)

	// Approved: allowed
	updated, err = companyRepo.UpdateStatus(vendor.VendorID, model.StatusApproved)
	require.NoError(t, err)
	require.True(t, updated)
	loggedIn, tokens, err := vendorService.LoginCompanyVendor("gate@example.com", "vendor123")
	require.NoError(t, err)
	assert.Equal(t, vendor.VendorID, loggedIn.VendorID)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestVendorService_LoginWrongPassword(t *testing.T) {
	vendorService, companyRepo, _ := setupVendorServiceTest(t)
	vendor := registerTestCompanyVendor(t, vendorService, "pw@example.com")

	_, err := companyRepo.UpdateStatus(vendor.VendorID, model.StatusApproved)
	require.NoError(t, err)

	// Wrong password reports invalid credentials, not the approval state
	_, _, err = vendorService.LoginCompanyVendor("pw@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = vendorService.LoginCompanyVendor("missing@example.com", "vendor123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVendorService_RetailLoginGate(t *testing.T) {
	vendorService, _, retailRepo := setupVendorServiceTest(t)
	vendor := registerTestRetailVendor(t, vendorService, "shop@example.com")

	_, _, err := vendorService.LoginRetailVendor("shop@example.com", "vendor123")
	assert.ErrorIs(t, err, ErrVendorNotApproved)

	_, err = retailRepo.UpdateStatus(vendor.VendorID, model.StatusApproved)
	require.NoError(t, err)

	loggedIn, _, err := vendorService.LoginRetailVendor("shop@example.com", "vendor123")
	require.NoError(t, err)
	assert.Equal(t, vendor.VendorID, loggedIn.VendorID)
}

func TestVendorService_IsVendorApproved(t *testing.T) {
	vendorService, companyRepo, _ := setupVendorServiceTest(t)
	vendor := registerTestCompanyVendor(t, vendorService, "check@example.com")

	approved, err := vendorService.IsVendorApproved(vendor.VendorID, model.VendorTypeCompany)
	require.NoError(t, err)
	assert.False(t, approved)

	_, err = companyRepo.UpdateStatus(vendor.VendorID, model.StatusApproved)
	require.NoError(t, err)

	approved, err = vendorService.IsVendorApproved(vendor.VendorID, model.VendorTypeCompany)
	require.NoError(t, err)
	assert.True(t, approved)

	// Unknown vendors are simply not approved
	approved, err = vendorService.IsVendorApproved("CV-missing1", model.VendorTypeCompany)
	require.NoError(t, err)
	assert.False(t, approved)

	_, err = vendorService.IsVendorApproved(vendor.VendorID, model.VendorType("wholesale"))
	assert.ErrorIs(t, err, ErrInvalidVendorType)
}

func TestVendorService_ManufacturerName(t *testing.T) {
	vendorService, _, _ := setupVendorServiceTest(t)

	company := registerTestCompanyVendor(t, vendorService, "maker@example.com")
	assert.Equal(t, "Deshi Foods Ltd", vendorService.ManufacturerName(company.VendorID))

	retail := registerTestRetailVendor(t, vendorService, "store@example.com")
	assert.Equal(t, "Salma General Store", vendorService.ManufacturerName(retail.VendorID))

	assert.Equal(t, UnknownManufacturer, vendorService.ManufacturerName("CV-missing1"))
}
