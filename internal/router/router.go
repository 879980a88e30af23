package router

import (
	"github.com/findingbd/findingbd-backend/config"
	"github.com/findingbd/findingbd-backend/internal/app/controller"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController      *controller.AuthController
	vendorController    *controller.VendorController
	productController   *controller.ProductController
	reviewController    *controller.ReviewController
	favouriteController *controller.FavouriteController
	adminController     *controller.AdminController
	uploadController    *controller.UploadController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
	imagesDir           string
}

func NewRouter(
	authController *controller.AuthController,
	vendorController *controller.VendorController,
	productController *controller.ProductController,
	reviewController *controller.ReviewController,
	favouriteController *controller.FavouriteController,
	adminController *controller.AdminController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
	imagesDir string,
) *Router {
	return &Router{
		authController:      authController,
		vendorController:    vendorController,
		productController:   productController,
		reviewController:    reviewController,
		favouriteController: favouriteController,
		adminController:     adminController,
		uploadController:    uploadController,
		authMiddleware:      authMiddleware,
		config:              cfg,
		imagesDir:           imagesDir,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Finding BD Products API is running",
		})
	})

	// Serve uploaded product images
	router.Static("/images", r.imagesDir)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/send-verification", r.authController.SendVerification)
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateMe)
		}

		vendors := v1.Group("/vendors")
		{
			vendors.POST("/company/register", r.vendorController.RegisterCompany)
			vendors.POST("/company/login", r.vendorController.LoginCompany)
			vendors.POST("/retail/register", r.vendorController.RegisterRetail)
			vendors.POST("/retail/login", r.vendorController.LoginRetail)
			vendors.POST("/logout", r.vendorController.Logout)

			vendors.POST("/products",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireVendor(),
				r.vendorController.AddProduct,
			)
			vendors.GET("/products",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireVendor(),
				r.vendorController.MyProducts,
			)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.List)
			products.GET("/:id", r.productController.Get)
			products.GET("/:id/reviews", r.reviewController.List)

			products.POST("/:id/reviews",
				r.authMiddleware.Authenticate(),
				r.reviewController.Add,
			)
			products.POST("/:id/recommend",
				r.authMiddleware.Authenticate(),
				r.productController.Recommend,
			)
			products.POST("/:id/unrecommend",
				r.authMiddleware.Authenticate(),
				r.productController.Unrecommend,
			)
		}

		favourites := v1.Group("/favourites", r.authMiddleware.Authenticate())
		{
			favourites.GET("/products", r.favouriteController.ListProducts)
			favourites.GET("/products/:id", r.favouriteController.CheckProduct)
			favourites.PUT("/products/:id", r.favouriteController.AddProduct)
			favourites.DELETE("/products/:id", r.favouriteController.RemoveProduct)

			favourites.GET("/categories", r.favouriteController.ListCategories)
			favourites.GET("/categories/:name", r.favouriteController.CheckCategory)
			favourites.PUT("/categories/:name", r.favouriteController.AddCategory)
			favourites.DELETE("/categories/:name", r.favouriteController.RemoveCategory)
		}

		uploads := v1.Group("/uploads", r.authMiddleware.Authenticate())
		{
			uploads.POST("/images",
				r.authMiddleware.RequireVendor(),
				r.uploadController.UploadImage,
			)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/login", r.adminController.Login)

			protected := admin.Group("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
			)
			{
				protected.GET("/vendors/pending", r.adminController.PendingVendors)
				protected.POST("/vendors/company/:id/approve", r.adminController.ApproveCompanyVendor)
				protected.POST("/vendors/company/:id/reject", r.adminController.RejectCompanyVendor)
				protected.POST("/vendors/retail/:id/approve", r.adminController.ApproveRetailVendor)
				protected.POST("/vendors/retail/:id/reject", r.adminController.RejectRetailVendor)

				protected.GET("/products/pending", r.adminController.PendingProducts)
				protected.POST("/products/:id/approve", r.adminController.ApproveProduct)
				protected.POST("/products/:id/reject", r.adminController.RejectProduct)
			}
		}
	}

	return router
}
