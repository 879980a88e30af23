package session

import (
	"testing"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
)

func TestSession_StartsEmpty(t *testing.T) {
	s := New()

	assert.False(t, s.IsUserLoggedIn())
	assert.False(t, s.IsVendorLoggedIn())
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, s.CurrentUserID())
	assert.Empty(t, s.CurrentVendorID())
	assert.Empty(t, s.CurrentVendorName())
	assert.Empty(t, s.VendorType())
}

func TestSession_UserSlot(t *testing.T) {
	s := New()
	user := &model.User{UserID: "U-1a2b3c4d", FullName: "Test User", Email: "user@example.com"}

	s.LoginUser(user)
	assert.True(t, s.IsUserLoggedIn())
	assert.Equal(t, "U-1a2b3c4d", s.CurrentUserID())

	s.LogoutUser()
	assert.False(t, s.IsUserLoggedIn())
	assert.Nil(t, s.CurrentUser())
}

func TestSession_VendorKindsMutuallyExclusive(t *testing.T) {
	s := New()
	company := &model.CompanyVendor{VendorID: "CV-1a2b3c4d", CompanyName: "Pran Foods Ltd"}
	retail := &model.RetailVendor{VendorID: "RV-1a2b3c4d", ShopName: "Meena Bazar"}

	s.LoginCompanyVendor(company)
	assert.True(t, s.IsVendorLoggedIn())
	assert.Equal(t, model.VendorTypeCompany, s.VendorType())
	assert.Equal(t, "CV-1a2b3c4d", s.CurrentVendorID())
	assert.Equal(t, "Pran Foods Ltd", s.CurrentVendorName())

	// Logging in as a retail vendor clears the company identity
	s.LoginRetailVendor(retail)
	assert.Nil(t, s.CurrentCompanyVendor())
	assert.Equal(t, model.VendorTypeRetail, s.VendorType())
	assert.Equal(t, "RV-1a2b3c4d", s.CurrentVendorID())
	assert.Equal(t, "Meena Bazar", s.CurrentVendorName())

	s.LogoutVendor()
	assert.False(t, s.IsVendorLoggedIn())
	assert.Empty(t, s.VendorType())
}

func TestSession_UserAndVendorSlotsIndependent(t *testing.T) {
	s := New()

	s.LoginUser(&model.User{UserID: "U-1a2b3c4d"})
	s.LoginCompanyVendor(&model.CompanyVendor{VendorID: "CV-1a2b3c4d"})

	assert.True(t, s.IsUserLoggedIn())
	assert.True(t, s.IsVendorLoggedIn())

	// Vendor logout leaves the user slot untouched
	s.LogoutVendor()
	assert.True(t, s.IsUserLoggedIn())
	assert.False(t, s.IsVendorLoggedIn())
}
