// Package session tracks who is currently acting in the running
// application instance. The state lives in memory only: it starts empty,
// changes only through explicit login/logout calls, and is never
// persisted across restarts.
package session

import (
	"sync"

	"github.com/findingbd/findingbd-backend/internal/app/model"
)

// Session holds one user slot and one vendor slot. The slots are
// independent: a user and a vendor can be logged in at the same time.
// Within the vendor slot the two vendor kinds are mutually exclusive.
type Session struct {
	mu sync.RWMutex

	currentUser *model.User

	currentCompanyVendor *model.CompanyVendor
	currentRetailVendor  *model.RetailVendor
	vendorType           model.VendorType
}

// New creates an empty session. One session is constructed by the
// application entry point and injected where needed.
func New() *Session {
	return &Session{}
}

// LoginUser fills the user slot
func (s *Session) LoginUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = user
}

// LogoutUser empties the user slot
func (s *Session) LogoutUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// IsUserLoggedIn reports whether the user slot is filled
func (s *Session) IsUserLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser != nil
}

// CurrentUser returns the logged-in user, or nil
func (s *Session) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// CurrentUserID returns the logged-in user's ID, or ""
func (s *Session) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return ""
	}
	return s.currentUser.UserID
}

// LoginCompanyVendor fills the vendor slot with a company vendor,
// clearing any retail vendor identity.
func (s *Session) LoginCompanyVendor(vendor *model.CompanyVendor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentCompanyVendor = vendor
	s.currentRetailVendor = nil
	s.vendorType = model.VendorTypeCompany
}

// LoginRetailVendor fills the vendor slot with a retail vendor, clearing
// any company vendor identity.
func (s *Session) LoginRetailVendor(vendor *model.RetailVendor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentRetailVendor = vendor
	s.currentCompanyVendor = nil
	s.vendorType = model.VendorTypeRetail
}

// LogoutVendor empties the vendor slot
func (s *Session) LogoutVendor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentCompanyVendor = nil
	s.currentRetailVendor = nil
	s.vendorType = ""
}

// IsVendorLoggedIn reports whether the vendor slot is filled
func (s *Session) IsVendorLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentCompanyVendor != nil || s.currentRetailVendor != nil
}

// VendorType returns the active vendor kind, or ""
func (s *Session) VendorType() model.VendorType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vendorType
}

// CurrentVendorID returns the logged-in vendor's ID, or ""
func (s *Session) CurrentVendorID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentCompanyVendor != nil {
		return s.currentCompanyVendor.VendorID
	}
	if s.currentRetailVendor != nil {
		return s.currentRetailVendor.VendorID
	}
	return ""
}

// CurrentVendorName returns the active vendor's display name (company
// name or shop name), or "".
func (s *Session) CurrentVendorName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentCompanyVendor != nil {
		return s.currentCompanyVendor.CompanyName
	}
	if s.currentRetailVendor != nil {
		return s.currentRetailVendor.ShopName
	}
	return ""
}

// CurrentCompanyVendor returns the logged-in company vendor, or nil
func (s *Session) CurrentCompanyVendor() *model.CompanyVendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentCompanyVendor
}

// CurrentRetailVendor returns the logged-in retail vendor, or nil
func (s *Session) CurrentRetailVendor() *model.RetailVendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentRetailVendor
}
