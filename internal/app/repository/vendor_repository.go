package repository

import (
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/gorm"
)

type CompanyVendorRepository interface {
	Create(vendor *model.CompanyVendor) error
	FindByID(id string) (*model.CompanyVendor, error)
	FindByEmail(email string) (*model.CompanyVendor, error)
	FindByStatus(status model.AccountStatus) ([]model.CompanyVendor, error)
	UpdateStatus(id string, status model.AccountStatus) (bool, error)
}

type RetailVendorRepository interface {
	Create(vendor *model.RetailVendor) error
	FindByID(id string) (*model.RetailVendor, error)
	FindByEmail(email string) (*model.RetailVendor, error)
	FindByStatus(status model.AccountStatus) ([]model.RetailVendor, error)
	UpdateStatus(id string, status model.AccountStatus) (bool, error)
}

type companyVendorRepository struct {
	db *gorm.DB
}

func NewCompanyVendorRepository(db *gorm.DB) CompanyVendorRepository {
	return &companyVendorRepository{db: db}
}

func (r *companyVendorRepository) Create(vendor *model.CompanyVendor) error {
	logger.Debug("Creating company vendor in database", map[string]interface{}{
		"vendor_id": vendor.VendorID,
		"email":     vendor.Email,
	})

	if err := r.db.Create(vendor).Error; err != nil {
		logger.Error("Failed to create company vendor in database", err, map[string]interface{}{
			"email": vendor.Email,
		})
		return err
	}
	return nil
}

func (r *companyVendorRepository) FindByID(id string) (*model.CompanyVendor, error) {
	var vendor model.CompanyVendor
	if err := r.db.Where("vendor_id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *companyVendorRepository) FindByEmail(email string) (*model.CompanyVendor, error) {
	var vendor model.CompanyVendor
	if err := r.db.Where("email = ?", email).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *companyVendorRepository) FindByStatus(status model.AccountStatus) ([]model.CompanyVendor, error) {
	var vendors []model.CompanyVendor
	if err := r.db.Where("account_status = ?", status).Find(&vendors).Error; err != nil {
		logger.Error("Failed to list company vendors by status", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return vendors, nil
}

func (r *companyVendorRepository) UpdateStatus(id string, status model.AccountStatus) (bool, error) {
	logger.Debug("Updating company vendor status", map[string]interface{}{
		"vendor_id": id,
		"status":    status,
	})

	result := r.db.Model(&model.CompanyVendor{}).
		Where("vendor_id = ?", id).
		Update("account_status", status)
	if result.Error != nil {
		logger.Error("Failed to update company vendor status", result.Error, map[string]interface{}{
			"vendor_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type retailVendorRepository struct {
	db *gorm.DB
}

func NewRetailVendorRepository(db *gorm.DB) RetailVendorRepository {
	return &retailVendorRepository{db: db}
}

func (r *retailVendorRepository) Create(vendor *model.RetailVendor) error {
	logger.Debug("Creating retail vendor in database", map[string]interface{}{
		"vendor_id": vendor.VendorID,
		"email":     vendor.Email,
	})

	if err := r.db.Create(vendor).Error; err != nil {
		logger.Error("Failed to create retail vendor in database", err, map[string]interface{}{
			"email": vendor.Email,
		})
		return err
	}
	return nil
}

func (r *retailVendorRepository) FindByID(id string) (*model.RetailVendor, error) {
	var vendor model.RetailVendor
	if err := r.db.Where("vendor_id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *retailVendorRepository) FindByEmail(email string) (*model.RetailVendor, error) {
	var vendor model.RetailVendor
	if err := r.db.Where("email = ?", email).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *retailVendorRepository) FindByStatus(status model.AccountStatus) ([]model.RetailVendor, error) {
	var vendors []model.RetailVendor
	if err := r.db.Where("account_status = ?", status).Find(&vendors).Error; err != nil {
		logger.Error("Failed to list retail vendors by status", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return vendors, nil
}

func (r *retailVendorRepository) UpdateStatus(id string, status model.AccountStatus) (bool, error) {
	logger.Debug("Updating retail vendor status", map[string]interface{}{
		"vendor_id": id,
		"status":    status,
	})

	result := r.db.Model(&model.RetailVendor{}).
		Where("vendor_id = ?", id).
		Update("account_status", status)
	if result.Error != nil {
		logger.Error("Failed to update retail vendor status", result.Error, map[string]interface{}{
			"vendor_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
