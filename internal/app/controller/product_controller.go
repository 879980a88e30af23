package controller

import (
	"errors"
	"net/http"

	"github.com/findingbd/findingbd-backend/internal/app/service"
	apperrors "github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
	vendorService  service.VendorService
	reviewService  service.ReviewService
}

func NewProductController(productService service.ProductService, vendorService service.VendorService, reviewService service.ReviewService) *ProductController {
	return &ProductController{
		productService: productService,
		vendorService:  vendorService,
		reviewService:  reviewService,
	}
}

// List returns the public catalog: approved products only, optionally
// narrowed to a category
// GET /api/v1/products?category=Beverages
func (ctrl *ProductController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var (
		products interface{}
		err      error
		count    int
	)

	if category := c.Query("category"); category != "" {
		list, listErr := ctrl.productService.ListApprovedByCategory(category)
		products, err, count = list, listErr, len(list)
	} else {
		list, listErr := ctrl.productService.ListApproved()
		products, err, count = list, listErr, len(list)
	}
	if err != nil {
		log.Error("Failed to list products", err)
		apperrors.ParseAndRespond(c, err, "products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    count,
	})
}

// Get returns one product with its reviews, derived average rating and
// the resolved manufacturer name
// GET /api/v1/products/:id
func (ctrl *ProductController) Get(c *gin.Context) {
	product, err := ctrl.productService.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		apperrors.ParseAndRespond(c, err, "product")
		return
	}

	manufacturer := service.UnknownManufacturer
	if product.VendorID != nil {
		manufacturer = ctrl.vendorService.ManufacturerName(*product.VendorID)
	}

	c.JSON(http.StatusOK, gin.H{
		"product":      product,
		"manufacturer": manufacturer,
	})
}

// Recommend bumps a product's recommendation counter
// POST /api/v1/products/:id/recommend
func (ctrl *ProductController) Recommend(c *gin.Context) {
	if err := ctrl.productService.Recommend(c.Param("id")); err != nil {
		ctrl.respondRecommendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Recommendation recorded",
	})
}

// Unrecommend lowers the counter; it never drops below zero
// POST /api/v1/products/:id/unrecommend
func (ctrl *ProductController) Unrecommend(c *gin.Context) {
	if err := ctrl.productService.Unrecommend(c.Param("id")); err != nil {
		ctrl.respondRecommendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Recommendation withdrawn",
	})
}

func (ctrl *ProductController) respondRecommendError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProductNotFound) {
		apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
		return
	}
	apperrors.ParseAndRespond(c, err, "product")
}
