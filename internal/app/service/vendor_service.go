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

var (
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrVendorNotApproved = errors.New("vendor account is not approved")
	ErrInvalidVendorType = errors.New("invalid vendor type")
)

// UnknownManufacturer is returned when a product's vendor reference
// cannot be resolved against either vendor table.
const UnknownManufacturer = "Unknown Manufacturer"

// RegisterCompanyVendorInput carries the company vendor signup form fields
type RegisterCompanyVendorInput struct {
	FullName                  string
	Designation               string
	CompanyName               string
	Email                     string
	Password                  string
	PhoneNumber               string
	CompanyRegistrationNumber string
	BstiCertificateNumber     string
	CompanyAddress            string
	TinNumber                 string
	CompanyLogo               string
}

// RegisterRetailVendorInput carries the retail vendor signup form fields
type RegisterRetailVendorInput struct {
	OwnerName                  string
	ShopName                   string
	Email                      string
	Password                   string
	PhoneNumber                string
	BusinessRegistrationNumber string
	TradeLicenseNumber         string
	ShopAddress                string
	TinNumber                  string
	ShopLogo                   string
}

type VendorService interface {
	RegisterCompanyVendor(input RegisterCompanyVendorInput) (*model.CompanyVendor, error)
	RegisterRetailVendor(input RegisterRetailVendorInput) (*model.RetailVendor, error)
	LoginCompanyVendor(email, password string) (*model.CompanyVendor, *util.TokenPair, error)
	LoginRetailVendor(email, password string) (*model.RetailVendor, *util.TokenPair, error)
	IsVendorApproved(vendorID string, vendorType model.VendorType) (bool, error)
	ManufacturerName(vendorID string) string
}

type vendorService struct {
	companyRepo   repository.CompanyVendorRepository
	retailRepo    repository.RetailVendorRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewVendorService(
	companyRepo repository.CompanyVendorRepository,
	retailRepo repository.RetailVendorRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) VendorService {
	return &vendorService{
		companyRepo:   companyRepo,
		retailRepo:    retailRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// RegisterCompanyVendor creates a company vendor account. The account is
// always created pending, whatever the caller supplies; only an admin
// decision can change that.
func (s *vendorService) RegisterCompanyVendor(input RegisterCompanyVendorInput) (*model.CompanyVendor, error) {
	logger.Info("Attempting company vendor registration", map[string]interface{}{
		"email":        input.Email,
		"company_name": input.CompanyName,
	})

	existing, err := s.companyRepo.FindByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.Warn("Company vendor registration failed: email already exists", map[string]interface{}{
			"email": input.Email,
		})
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	vendor := &model.CompanyVendor{
		VendorID:                  util.NewCompanyVendorID(),
		FullName:                  input.FullName,
		Designation:               input.Designation,
		CompanyName:               input.CompanyName,
		Email:                     input.Email,
		Password:                  hashedPassword,
		PhoneNumber:               input.PhoneNumber,
		CompanyRegistrationNumber: input.CompanyRegistrationNumber,
		BstiCertificateNumber:     input.BstiCertificateNumber,
		CompanyAddress:            input.CompanyAddress,
		TinNumber:                 input.TinNumber,
		CompanyLogo:               input.CompanyLogo,
		AccountStatus:             model.StatusPending,
	}

	if err := s.companyRepo.Create(vendor); err != nil {
		return nil, err
	}

	logger.Info("Company vendor registered, awaiting approval", map[string]interface{}{
		"vendor_id": vendor.VendorID,
		"email":     vendor.Email,
	})
	return vendor, nil
}

// RegisterRetailVendor creates a retail vendor account, always pending
func (s *vendorService) RegisterRetailVendor(input RegisterRetailVendorInput) (*model.RetailVendor, error) {
	logger.Info("Attempting retail vendor registration", map[string]interface{}{
		"email":     input.Email,
		"shop_name": input.ShopName,
	})

	existing, err := s.retailRepo.FindByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.Warn("Retail vendor registration failed: email already exists", map[string]interface{}{
			"email": input.Email,
		})
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	vendor := &model.RetailVendor{
		VendorID:                   util.NewRetailVendorID(),
		OwnerName:                  input.OwnerName,
		ShopName:                   input.ShopName,
		Email:                      input.Email,
		Password:                   hashedPassword,
		PhoneNumber:                input.PhoneNumber,
		BusinessRegistrationNumber: input.BusinessRegistrationNumber,
		TradeLicenseNumber:         input.TradeLicenseNumber,
		ShopAddress:                input.ShopAddress,
		TinNumber:                  input.TinNumber,
		ShopLogo:                   input.ShopLogo,
		AccountStatus:              model.StatusPending,
	}

	if err := s.retailRepo.Create(vendor); err != nil {
		return nil, err
	}

	logger.Info("Retail vendor registered, awaiting approval", map[string]interface{}{
		"vendor_id": vendor.VendorID,
		"email":     vendor.Email,
	})
	return vendor, nil
}

// LoginCompanyVendor authenticates a company vendor. Pending and rejected
// accounts cannot log in even with correct credentials.
func (s *vendorService) LoginCompanyVendor(email, password string) (*model.CompanyVendor, *util.TokenPair, error) {
	logger.Info("Company vendor login attempt", map[string]interface{}{
		"email": email,
	})

	vendor, err := s.companyRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(vendor.Password, password) {
		logger.Warn("Company vendor login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if vendor.AccountStatus != model.StatusApproved {
		logger.Warn("Company vendor login refused: account not approved", map[string]interface{}{
			"vendor_id": vendor.VendorID,
			"status":    vendor.AccountStatus,
		})
		return nil, nil, ErrVendorNotApproved
	}

	tokens, err := util.GenerateTokenPair(
		vendor.VendorID, vendor.Email, util.RoleCompanyVendor,
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Company vendor logged in successfully", map[string]interface{}{
		"vendor_id": vendor.VendorID,
	})
	return vendor, tokens, nil
}

// LoginRetailVendor authenticates a retail vendor with the same
// approved-only gate as the company flow
func (s *vendorService) LoginRetailVendor(email, password string) (*model.RetailVendor, *util.TokenPair, error) {
	logger.Info("Retail vendor login attempt", map[string]interface{}{
		"email": email,
	})

	vendor, err := s.retailRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(vendor.Password, password) {
		logger.Warn("Retail vendor login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if vendor.AccountStatus != model.StatusApproved {
		logger.Warn("Retail vendor login refused: account not approved", map[string]interface{}{
			"vendor_id": vendor.VendorID,
			"status":    vendor.AccountStatus,
		})
		return nil, nil, ErrVendorNotApproved
	}

	tokens, err := util.GenerateTokenPair(
		vendor.VendorID, vendor.Email, util.RoleRetailVendor,
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Retail vendor logged in successfully", map[string]interface{}{
		"vendor_id": vendor.VendorID,
	})
	return vendor, tokens, nil
}

// IsVendorApproved reports whether the vendor exists in the table for its
// kind with an approved status. Unknown vendors are simply not approved.
func (s *vendorService) IsVendorApproved(vendorID string, vendorType model.VendorType) (bool, error) {
	switch vendorType {
	case model.VendorTypeCompany:
		vendor, err := s.companyRepo.FindByID(vendorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return vendor.AccountStatus == model.StatusApproved, nil
	case model.VendorTypeRetail:
		vendor, err := s.retailRepo.FindByID(vendorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return vendor.AccountStatus == model.StatusApproved, nil
	default:
		return false, ErrInvalidVendorType
	}
}

// ManufacturerName resolves a vendor reference to a display name, probing
// the company table first, then the retail table.
func (s *vendorService) ManufacturerName(vendorID string) string {
	if company, err := s.companyRepo.FindByID(vendorID); err == nil {
		return company.CompanyName
	}
	if retail, err := s.retailRepo.FindByID(vendorID); err == nil {
		return retail.ShopName
	}
	return UnknownManufacturer
}
