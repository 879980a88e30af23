package controller

import (
	"errors"
	"net/http"

	"github.com/findingbd/findingbd-backend/internal/app/service"
	apperrors "github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	adminService   service.AdminService
	productService service.ProductService
}

func NewAdminController(adminService service.AdminService, productService service.ProductService) *AdminController {
	return &AdminController{
		adminService:   adminService,
		productService: productService,
	}
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RejectProductRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Login authenticates an admin
// POST /api/v1/admin/login
func (ctrl *AdminController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email and password are required")
		return
	}

	admin, tokens, err := ctrl.adminService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "invalid email or password")
			return
		}
		log.Error("Admin login failed", err)
		apperrors.ParseAndRespond(c, err, "admin")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   admin,
		"tokens":  tokens,
	})
}

// PendingVendors lists every vendor awaiting a decision, grouped by kind
// GET /api/v1/admin/vendors/pending
func (ctrl *AdminController) PendingVendors(c *gin.Context) {
	companies, err := ctrl.adminService.ListPendingCompanyVendors()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "vendors")
		return
	}

	retailers, err := ctrl.adminService.ListPendingRetailVendors()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "vendors")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company_vendors": companies,
		"retail_vendors":  retailers,
		"count":           len(companies) + len(retailers),
	})
}

// ApproveCompanyVendor approves a pending company vendor. Decisions are
// final: an already-decided vendor cannot be decided again.
// POST /api/v1/admin/vendors/company/:id/approve
func (ctrl *AdminController) ApproveCompanyVendor(c *gin.Context) {
	ctrl.respondVendorDecision(c, ctrl.adminService.ApproveCompanyVendor(c.Param("id")), "Vendor approved")
}

// RejectCompanyVendor rejects a pending company vendor
// POST /api/v1/admin/vendors/company/:id/reject
func (ctrl *AdminController) RejectCompanyVendor(c *gin.Context) {
	ctrl.respondVendorDecision(c, ctrl.adminService.RejectCompanyVendor(c.Param("id")), "Vendor rejected")
}

// ApproveRetailVendor approves a pending retail vendor
// POST /api/v1/admin/vendors/retail/:id/approve
func (ctrl *AdminController) ApproveRetailVendor(c *gin.Context) {
	ctrl.respondVendorDecision(c, ctrl.adminService.ApproveRetailVendor(c.Param("id")), "Vendor approved")
}

// RejectRetailVendor rejects a pending retail vendor
// POST /api/v1/admin/vendors/retail/:id/reject
func (ctrl *AdminController) RejectRetailVendor(c *gin.Context) {
	ctrl.respondVendorDecision(c, ctrl.adminService.RejectRetailVendor(c.Param("id")), "Vendor rejected")
}

func (ctrl *AdminController) respondVendorDecision(c *gin.Context, err error, message string) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVendorNotFound):
			apperrors.NotFound(c, apperrors.VendorNotFound, "vendor not found")
		case errors.Is(err, service.ErrVendorAlreadyDecided):
			apperrors.Conflict(c, apperrors.VendorAlreadyDecided, "vendor has already been approved or rejected")
		default:
			apperrors.ParseAndRespond(c, err, "vendor")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// PendingProducts lists products awaiting review
// GET /api/v1/admin/products/pending
func (ctrl *AdminController) PendingProducts(c *gin.Context) {
	products, err := ctrl.productService.ListPending()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ApproveProduct puts a product on the public catalog and clears any
// earlier rejection reason. A rejected product may be approved later.
// POST /api/v1/admin/products/:id/approve
func (ctrl *AdminController) ApproveProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if err := ctrl.productService.Approve(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
			return
		}
		log.Error("Failed to approve product", err, map[string]interface{}{
			"product_id": c.Param("id"),
		})
		apperrors.ParseAndRespond(c, err, "product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product approved",
	})
}

// RejectProduct marks a product rejected with a mandatory reason
// POST /api/v1/admin/products/:id/reject
func (ctrl *AdminController) RejectProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RejectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ProductReasonRequired, "a rejection reason is required")
		return
	}

	if err := ctrl.productService.Reject(c.Param("id"), req.Reason); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "product not found")
		case errors.Is(err, service.ErrRejectionReasonRequired):
			apperrors.BadRequest(c, apperrors.ProductReasonRequired, "a rejection reason is required")
		default:
			log.Error("Failed to reject product", err, map[string]interface{}{
				"product_id": c.Param("id"),
			})
			apperrors.ParseAndRespond(c, err, "product")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product rejected",
	})
}
