package repository

import (
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavouriteRepository interface {
	Add(productID string) error
	Remove(productID string) error
	Contains(productID string) (bool, error)
	ListProducts() ([]model.Product, error)

	AddCategory(categoryName string) error
	RemoveCategory(categoryName string) error
	ContainsCategory(categoryName string) (bool, error)
	ListCategories() ([]string, error)
}

type favouriteRepository struct {
	db *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

// Add is idempotent: inserting an existing membership is a no-op, matching
// the original INSERT OR IGNORE contract.
func (r *favouriteRepository) Add(productID string) error {
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Favourite{ProductID: productID}).Error
	if err != nil {
		logger.Error("Failed to add favourite", err, map[string]interface{}{
			"product_id": productID,
		})
	}
	return err
}

func (r *favouriteRepository) Remove(productID string) error {
	err := r.db.Where("product_id = ?", productID).Delete(&model.Favourite{}).Error
	if err != nil {
		logger.Error("Failed to remove favourite", err, map[string]interface{}{
			"product_id": productID,
		})
	}
	return err
}

func (r *favouriteRepository) Contains(productID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favourite{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to check favourite membership", err, map[string]interface{}{
			"product_id": productID,
		})
		return false, err
	}
	return count > 0, nil
}

// ListProducts returns favourited products that are publicly visible
func (r *favouriteRepository) ListProducts() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Model(&model.Product{}).
		Joins("INNER JOIN favourites ON favourites.product_id = products.product_id").
		Where("products.approval_status = ?", model.ProductApproved).
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to list favourite products", err)
		return nil, err
	}
	return products, nil
}

func (r *favouriteRepository) AddCategory(categoryName string) error {
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.FavouriteCategory{CategoryName: categoryName}).Error
	if err != nil {
		logger.Error("Failed to add favourite category", err, map[string]interface{}{
			"category": categoryName,
		})
	}
	return err
}

func (r *favouriteRepository) RemoveCategory(categoryName string) error {
	err := r.db.Where("category_name = ?", categoryName).
		Delete(&model.FavouriteCategory{}).Error
	if err != nil {
		logger.Error("Failed to remove favourite category", err, map[string]interface{}{
			"category": categoryName,
		})
	}
	return err
}

func (r *favouriteRepository) ContainsCategory(categoryName string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FavouriteCategory{}).
		Where("category_name = ?", categoryName).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to check favourite category membership", err, map[string]interface{}{
			"category": categoryName,
		})
		return false, err
	}
	return count > 0, nil
}

func (r *favouriteRepository) ListCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.FavouriteCategory{}).
		Order("category_name ASC").
		Pluck("category_name", &categories).Error
	if err != nil {
		logger.Error("Failed to list favourite categories", err)
		return nil, err
	}
	return categories, nil
}
