package repository

import (
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Count() (int64, error)
	Create(admin *model.Admin) error
	FindByEmail(email string) (*model.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count admins", err)
		return 0, err
	}
	return count, nil
}

func (r *adminRepository) Create(admin *model.Admin) error {
	logger.Debug("Creating admin in database", map[string]interface{}{
		"admin_id": admin.AdminID,
		"email":    admin.Email,
	})

	if err := r.db.Create(admin).Error; err != nil {
		logger.Error("Failed to create admin in database", err, map[string]interface{}{
			"email": admin.Email,
		})
		return err
	}
	return nil
}

func (r *adminRepository) FindByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
