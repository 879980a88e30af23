package service

import (
	"errors"
	"time"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"gorm.io/gorm"
)

// ErrVendorAlreadyDecided is returned when an admin tries to decide a
// vendor that has already been approved or rejected. Vendor decisions are
// final; there is no un-approve path.
var ErrVendorAlreadyDecided = errors.New("vendor account has already been decided")

type AdminService interface {
	Login(email, password string) (*model.Admin, *util.TokenPair, error)

	ListPendingCompanyVendors() ([]model.CompanyVendor, error)
	ListPendingRetailVendors() ([]model.RetailVendor, error)
	ApproveCompanyVendor(vendorID string) error
	RejectCompanyVendor(vendorID string) error
	ApproveRetailVendor(vendorID string) error
	RejectRetailVendor(vendorID string) error
}

type adminService struct {
	adminRepo     repository.AdminRepository
	companyRepo   repository.CompanyVendorRepository
	retailRepo    repository.RetailVendorRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAdminService(
	adminRepo repository.AdminRepository,
	companyRepo repository.CompanyVendorRepository,
	retailRepo repository.RetailVendorRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AdminService {
	return &adminService{
		adminRepo:     adminRepo,
		companyRepo:   companyRepo,
		retailRepo:    retailRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *adminService) Login(email, password string) (*model.Admin, *util.TokenPair, error) {
	logger.Info("Admin login attempt", map[string]interface{}{
		"email": email,
	})

	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(admin.Password, password) {
		logger.Warn("Admin login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(
		admin.AdminID, admin.Email, util.RoleAdmin,
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Admin logged in successfully", map[string]interface{}{
		"admin_id": admin.AdminID,
	})
	return admin, tokens, nil
}

func (s *adminService) ListPendingCompanyVendors() ([]model.CompanyVendor, error) {
	return s.companyRepo.FindByStatus(model.StatusPending)
}

func (s *adminService) ListPendingRetailVendors() ([]model.RetailVendor, error) {
	return s.retailRepo.FindByStatus(model.StatusPending)
}

func (s *adminService) ApproveCompanyVendor(vendorID string) error {
	return s.decideCompanyVendor(vendorID, model.StatusApproved)
}

func (s *adminService) RejectCompanyVendor(vendorID string) error {
	return s.decideCompanyVendor(vendorID, model.StatusRejected)
}

func (s *adminService) ApproveRetailVendor(vendorID string) error {
	return s.decideRetailVendor(vendorID, model.StatusApproved)
}

func (s *adminService) RejectRetailVendor(vendorID string) error {
	return s.decideRetailVendor(vendorID, model.StatusRejected)
}

func (s *adminService) decideCompanyVendor(vendorID string, status model.AccountStatus) error {
	vendor, err := s.companyRepo.FindByID(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVendorNotFound
		}
		return err
	}
	if vendor.AccountStatus != model.StatusPending {
		return ErrVendorAlreadyDecided
	}

	if _, err := s.companyRepo.UpdateStatus(vendorID, status); err != nil {
		return err
	}

	logger.Info("Company vendor decision recorded", map[string]interface{}{
		"vendor_id": vendorID,
		"status":    status,
	})
	return nil
}

func (s *adminService) decideRetailVendor(vendorID string, status model.AccountStatus) error {
	vendor, err := s.retailRepo.FindByID(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVendorNotFound
		}
		return err
	}
	if vendor.AccountStatus != model.StatusPending {
		return ErrVendorAlreadyDecided
	}

	if _, err := s.retailRepo.UpdateStatus(vendorID, status); err != nil {
		return err
	}

	logger.Info("Retail vendor decision recorded", map[string]interface{}{
		"vendor_id": vendorID,
		"status":    status,
	})
	return nil
}
