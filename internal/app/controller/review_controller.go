package controller

import (
	"errors"
	"net/http"

	"github.com/findingbd/findingbd-backend/internal/app/service"
	apperrors "github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

type AddReviewRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating" binding:"required"`
}

// List returns a product's reviews oldest first
// GET /api/v1/products/:id/reviews
func (ctrl *ReviewController) List(c *gin.Context) {
	reviews, err := ctrl.reviewService.ListForProduct(c.Param("id"))
	if err != nil {
		apperrors.ParseAndRespond(c, err, "reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// Add posts a review on a product
// POST /api/v1/products/:id/reviews
func (ctrl *ReviewController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "review details are not valid")
		return
	}

	review, err := ctrl.reviewService.AddReview(c.Param("id"), req.UserName, req.Comment, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "rating must be between 1 and 5")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
		default:
			log.Error("Failed to add review", err, map[string]interface{}{
				"product_id": c.Param("id"),
			})
			apperrors.ParseAndRespond(c, err, "review")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review posted",
		"review":  review,
	})
}
