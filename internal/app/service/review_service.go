package service

import (
	"errors"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService interface {
	AddReview(productID, userName, comment string, rating int) (*model.Review, error)
	ListForProduct(productID string) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// AddReview stores a review against an existing product. The product's
// average rating is derived at load time, so no aggregate write happens
// here.
func (s *reviewService) AddReview(productID, userName, comment string, rating int) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := &model.Review{
		ReviewID:  util.NewReviewID(),
		ProductID: productID,
		UserName:  userName,
		Comment:   comment,
		Rating:    rating,
	}

	if err := s.reviewRepo.Upsert(review); err != nil {
		return nil, err
	}

	logger.Info("Review added", map[string]interface{}{
		"review_id":  review.ReviewID,
		"product_id": productID,
		"rating":     rating,
	})
	return review, nil
}

func (s *reviewService) ListForProduct(productID string) ([]model.Review, error) {
	return s.reviewRepo.FindByProduct(productID)
}
