package repository

import (
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id string) (*model.Product, error)
	FindApproved() ([]model.Product, error)
	FindApprovedByCategory(category string) ([]model.Product, error)
	FindByStatus(status model.ApprovalStatus) ([]model.Product, error)
	FindByVendor(vendorID string) ([]model.Product, error)
	SetApproval(id string, status model.ApprovalStatus, rejectionReason *string) (bool, error)
	IncrementRecommendation(id string) error
	DecrementRecommendation(id string) error
	SetRecommendationCount(id string, count int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"product_id": product.ProductID,
		"name":       product.Name,
		"category":   product.Category,
		"vendor_id":  product.VendorID,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"product_id": product.ProductID,
			"name":       product.Name,
		})
		return err
	}
	return nil
}

// FindByID loads a product with its reviews and recomputes the derived
// average rating.
func (r *productRepository) FindByID(id string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Reviews").Where("product_id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	product.RecalculateAverageRating()
	return &product, nil
}

// FindApproved returns the public catalog: approved products only
func (r *productRepository) FindApproved() ([]model.Product, error) {
	return r.FindByStatus(model.ProductApproved)
}

func (r *productRepository) FindApprovedByCategory(category string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("approval_status = ? AND category = ?", model.ProductApproved, category).
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to list products by category", err, map[string]interface{}{
			"category": category,
		})
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByStatus(status model.ApprovalStatus) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Where("approval_status = ?", status).Find(&products).Error; err != nil {
		logger.Error("Failed to list products by status", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByVendor(vendorID string) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Where("vendor_id = ?", vendorID).Find(&products).Error; err != nil {
		logger.Error("Failed to list products by vendor", err, map[string]interface{}{
			"vendor_id": vendorID,
		})
		return nil, err
	}
	return products, nil
}

// SetApproval updates approval status and rejection reason in one
// statement. Approval passes a nil reason, clearing any earlier one.
func (r *productRepository) SetApproval(id string, status model.ApprovalStatus, rejectionReason *string) (bool, error) {
	logger.Debug("Updating product approval", map[string]interface{}{
		"product_id": id,
		"status":     status,
	})

	result := r.db.Model(&model.Product{}).
		Where("product_id = ?", id).
		Updates(map[string]interface{}{
			"approval_status":  status,
			"rejection_reason": rejectionReason,
		})
	if result.Error != nil {
		logger.Error("Failed to update product approval", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *productRepository) IncrementRecommendation(id string) error {
	err := r.db.Model(&model.Product{}).
		Where("product_id = ?", id).
		Update("recommendation_count", gorm.Expr("recommendation_count + 1")).Error
	if err != nil {
		logger.Error("Failed to increment recommendation count", err, map[string]interface{}{
			"product_id": id,
		})
	}
	return err
}

// DecrementRecommendation saturates at zero; the guard lives in the WHERE
// clause so the floor holds in a single statement.
func (r *productRepository) DecrementRecommendation(id string) error {
	err := r.db.Model(&model.Product{}).
		Where("product_id = ? AND recommendation_count > 0", id).
		Update("recommendation_count", gorm.Expr("recommendation_count - 1")).Error
	if err != nil {
		logger.Error("Failed to decrement recommendation count", err, map[string]interface{}{
			"product_id": id,
		})
	}
	return err
}

func (r *productRepository) SetRecommendationCount(id string, count int) error {
	err := r.db.Model(&model.Product{}).
		Where("product_id = ?", id).
		Update("recommendation_count", count).Error
	if err != nil {
		logger.Error("Failed to set recommendation count", err, map[string]interface{}{
			"product_id": id,
			"count":      count,
		})
	}
	return err
}
