package repository

import (
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Upsert(review *model.Review) error
	FindByProduct(productID string) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert inserts the review or replaces an existing row with the same
// review_id, matching the original INSERT OR REPLACE contract.
func (r *reviewRepository) Upsert(review *model.Review) error {
	logger.Debug("Upserting review in database", map[string]interface{}{
		"review_id":  review.ReviewID,
		"product_id": review.ProductID,
		"rating":     review.Rating,
	})

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "review_id"}},
		UpdateAll: true,
	}).Create(review).Error
	if err != nil {
		logger.Error("Failed to upsert review in database", err, map[string]interface{}{
			"review_id": review.ReviewID,
		})
		return err
	}
	return nil
}

func (r *reviewRepository) FindByProduct(productID string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("product_id = ?", productID).
		Order("date_posted ASC").
		Find(&reviews).Error
	if err != nil {
		logger.Error("Failed to list reviews for product", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return reviews, nil
}
