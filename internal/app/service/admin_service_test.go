package service

import (
	"testing"
	"time"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/internal/db"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceFixture struct {
	adminService  AdminService
	vendorService VendorService
	companyRepo   repository.CompanyVendorRepository
	retailRepo    repository.RetailVendorRepository
}

func setupAdminServiceTest(t *testing.T) *adminServiceFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	adminRepo := repository.NewAdminRepository(testDB)
	companyRepo := repository.NewCompanyVendorRepository(testDB)
	retailRepo := repository.NewRetailVendorRepository(testDB)

	hashed, err := util.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, adminRepo.Create(&model.Admin{
		AdminID:  "admin001",
		Email:    "admin@findingbd.com",
		Password: hashed,
	}))

	return &adminServiceFixture{
		adminService: NewAdminService(
			adminRepo,
			companyRepo,
			retailRepo,
			"test-jwt-secret",
			15*time.Minute,
			7*24*time.Hour,
		),
		vendorService: NewVendorService(
			companyRepo,
			retailRepo,
			"test-jwt-secret",
			15*time.Minute,
			7*24*time.Hour,
		),
		companyRepo: companyRepo,
		retailRepo:  retailRepo,
	}
}

func TestAdminService_Login(t *testing.T) {
	f := setupAdminServiceTest(t)

	admin, tokens, err := f.adminService.Login("admin@findingbd.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin001", admin.AdminID)
	assert.NotEmpty(t, tokens.AccessToken)

	_, _, err = f.adminService.Login("admin@findingbd.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = f.adminService.Login("nobody@findingbd.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminService_PendingVendorListings(t *testing.T) {
	f := setupAdminServiceTest(t)

	company := registerTestCompanyVendor(t, f.vendorService, "c1@example.com")
	retail := registerTestRetailVendor(t, f.vendorService, "r1@example.com")

	companies, err := f.adminService.ListPendingCompanyVendors()
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, company.VendorID, companies[0].VendorID)

	retailers, err := f.adminService.ListPendingRetailVendors()
	require.NoError(t, err)
	require.Len(t, retailers, 1)
	assert.Equal(t, retail.VendorID, retailers[0].VendorID)

	// Decided vendors leave the pending queue
	require.NoError(t, f.adminService.ApproveCompanyVendor(company.VendorID))

	companies, err = f.adminService.ListPendingCompanyVendors()
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestAdminService_ApproveCompanyVendor(t *testing.T) {
	f := setupAdminServiceTest(t)
	vendor := registerTestCompanyVendor(t, f.vendorService, "approve@example.com")

	require.NoError(t, f.adminService.ApproveCompanyVendor(vendor.VendorID))

	stored, err := f.companyRepo.FindByID(vendor.VendorID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, stored.AccountStatus)

	// The decision is final
	err = f.adminService.RejectCompanyVendor(vendor.VendorID)
	assert.ErrorIs(t, err, ErrVendorAlreadyDecided)
	err = f.adminService.ApproveCompanyVendor(vendor.VendorID)
	assert.ErrorIs(t, err, ErrVendorAlreadyDecided)
}

func TestAdminService_RejectRetailVendor(t *testing.T) {
	f := setupAdminServiceTest(t)
	vendor := registerTestRetailVendor(t, f.vendorService, "reject@example.com")

	require.NoError(t, f.adminService.RejectRetailVendor(vendor.VendorID))

	stored, err := f.retailRepo.FindByID(vendor.VendorID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, stored.AccountStatus)

	err = f.adminService.ApproveRetailVendor(vendor.VendorID)
	assert.ErrorIs(t, err, ErrVendorAlreadyDecided)
}

func TestAdminService_DecideUnknownVendor(t *testing.T) {
	f := setupAdminServiceTest(t)

	assert.ErrorIs(t, f.adminService.ApproveCompanyVendor("CV-missing1"), ErrVendorNotFound)
	assert.ErrorIs(t, f.adminService.RejectRetailVendor("RV-missing1"), ErrVendorNotFound)
}
