package controller

import (
	"errors"
	"net/http"

	"github.com/findingbd/findingbd-backend/internal/app/service"
	apperrors "github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type FavouriteController struct {
	favouriteService service.FavouriteService
}

func NewFavouriteController(favouriteService service.FavouriteService) *FavouriteController {
	return &FavouriteController{
		favouriteService: favouriteService,
	}
}

// ListProducts returns the favourite products that are still approved
// GET /api/v1/favourites/products
func (ctrl *FavouriteController) ListProducts(c *gin.Context) {
	products, err := ctrl.favouriteService.ListProducts()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "favourites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// AddProduct marks a product as favourite; repeating it is a no-op
// PUT /api/v1/favourites/products/:id
func (ctrl *FavouriteController) AddProduct(c *gin.Context) {
	if err := ctrl.favouriteService.AddProduct(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		apperrors.ParseAndRespond(c, err, "favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to favourites",
	})
}

// RemoveProduct unmarks a favourite product
// DELETE /api/v1/favourites/products/:id
func (ctrl *FavouriteController) RemoveProduct(c *gin.Context) {
	if err := ctrl.favouriteService.RemoveProduct(c.Param("id")); err != nil {
		apperrors.ParseAndRespond(c, err, "favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from favourites",
	})
}

// CheckProduct reports whether a product is currently a favourite
// GET /api/v1/favourites/products/:id
func (ctrl *FavouriteController) CheckProduct(c *gin.Context) {
	favourite, err := ctrl.favouriteService.IsFavourite(c.Param("id"))
	if err != nil {
		apperrors.ParseAndRespond(c, err, "favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favourite": favourite,
	})
}

// ListCategories returns the favourite category names in alphabetical
// order
// GET /api/v1/favourites/categories
func (ctrl *FavouriteController) ListCategories(c *gin.Context) {
	categories, err := ctrl.favouriteService.ListCategories()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "favourites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// AddCategory marks a category as favourite
// PUT /api/v1/favourites/categories/:name
func (ctrl *FavouriteController) AddCategory(c *gin.Context) {
	if err := ctrl.favouriteService.AddCategory(c.Param("name")); err != nil {
		apperrors.ParseAndRespond(c, err, "favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category added to favourites",
	})
}

// RemoveCategory unmarks a favourite category
// DELETE /api/v1/favourites/categories/:name
func (ctrl *FavouriteController) RemoveCategory(c *gin.Context) {
	if err := ctrl.favouriteService.RemoveCategory(c.Param("name")); err != nil {
		apperrors.ParseAndRespond(c, err, "favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category removed from favourites",
	})
}

// CheckCategory reports whether a category is currently a favourite
// GET /api/v1/favourites/categories/:name
func (ctrl *FavouriteController) CheckCategory(c *gin.Context) {
	favourite, err := ctrl.favouriteService.IsFavouriteCategory(c.Param("name"))
	if err != nil {
		apperrors.ParseAndRespond(c, err, "favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favourite": favourite,
	})
}
