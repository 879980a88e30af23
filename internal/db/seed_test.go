package db

import (
	"testing"

	"github.com/findingbd/findingbd-backend/config"
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdminConfig() *config.AdminConfig {
	return &config.AdminConfig{
		Email:    "admin@findingbd.com",
		Password: "admin123",
	}
}

func TestSeedInitialData_FirstRun(t *testing.T) {
	testDB, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(testDB)

	require.NoError(t, seedInitialData(testDB, testAdminConfig()))

	var adminCount int64
	require.NoError(t, testDB.Model(&model.Admin{}).Count(&adminCount).Error)
	assert.Equal(t, int64(1), adminCount)

	var admin model.Admin
	require.NoError(t, testDB.First(&admin).Error)
	assert.Equal(t, "admin@findingbd.com", admin.Email)
	assert.True(t, util.VerifyPassword(admin.Password, "admin123"))

	var productCount int64
	require.NoError(t, testDB.Model(&model.Product{}).Count(&productCount).Error)
	assert.Equal(t, int64(12), productCount)

	// Seeded catalog is publicly visible
	var approvedCount int64
	require.NoError(t, testDB.Model(&model.Product{}).
		Where("approval_status = ?", model.ProductApproved).
		Count(&approvedCount).Error)
	assert.Equal(t, productCount, approvedCount)

	// Seed vendors are pre-approved
	var vendors []model.CompanyVendor
	require.NoError(t, testDB.Find(&vendors).Error)
	require.NotEmpty(t, vendors)
	for _, v := range vendors {
		assert.Equal(t, model.StatusApproved, v.AccountStatus)
	}

	var mojo model.Product
	require.NoError(t, testDB.Where("product_id = ?", "mojo").First(&mojo).Error)
	assert.Equal(t, 15, mojo.RecommendationCount)
}

func TestSeedInitialData_Idempotent(t *testing.T) {
	testDB, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(testDB)

	require.NoError(t, seedInitialData(testDB, testAdminConfig()))
	require.NoError(t, seedInitialData(testDB, testAdminConfig()))

	var adminCount, productCount, reviewCount int64
	require.NoError(t, testDB.Model(&model.Admin{}).Count(&adminCount).Error)
	require.NoError(t, testDB.Model(&model.Product{}).Count(&productCount).Error)
	require.NoError(t, testDB.Model(&model.Review{}).Count(&reviewCount).Error)

	assert.Equal(t, int64(1), adminCount)
	assert.Equal(t, int64(12), productCount)
	assert.Equal(t, int64(4), reviewCount)
}
