package controller

import (
	"errors"
	"net/http"

	"github.com/findingbd/findingbd-backend/internal/app/service"
	apperrors "github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/findingbd/findingbd-backend/internal/session"
	"github.com/gin-gonic/gin"
)

type VendorController struct {
	vendorService  service.VendorService
	productService service.ProductService
	session        *session.Session
}

func NewVendorController(vendorService service.VendorService, productService service.ProductService, sess *session.Session) *VendorController {
	return &VendorController{
		vendorService:  vendorService,
		productService: productService,
		session:        sess,
	}
}

type RegisterCompanyVendorRequest struct {
	FullName                  string `json:"full_name" binding:"required"`
	Designation               string `json:"designation"`
	CompanyName               string `json:"company_name" binding:"required"`
	Email                     string `json:"email" binding:"required,email"`
	Password                  string `json:"password" binding:"required,min=6"`
	PhoneNumber               string `json:"phone_number" binding:"required"`
	CompanyRegistrationNumber string `json:"company_registration_number"`
	BstiCertificateNumber     string `json:"bsti_certificate_number"`
	CompanyAddress            string `json:"company_address"`
	TinNumber                 string `json:"tin_number"`
	CompanyLogo               string `json:"company_logo"`
}

type RegisterRetailVendorRequest struct {
	OwnerName                  string `json:"owner_name" binding:"required"`
	ShopName                   string `json:"shop_name" binding:"required"`
	Email                      string `json:"email" binding:"required,email"`
	Password                   string `json:"password" binding:"required,min=6"`
	PhoneNumber                string `json:"phone_number" binding:"required"`
	BusinessRegistrationNumber string `json:"business_registration_number"`
	TradeLicenseNumber         string `json:"trade_license_number"`
	ShopAddress                string `json:"shop_address"`
	TinNumber                  string `json:"tin_number"`
	ShopLogo                   string `json:"shop_logo"`
}

type VendorLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// RegisterCompany handles company vendor signup. The new account starts
// pending and cannot log in until an admin approves it.
// POST /api/v1/vendors/company/register
func (ctrl *VendorController) RegisterCompany(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterCompanyVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid company vendor registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "vendor registration details are not valid")
		return
	}

	vendor, err := ctrl.vendorService.RegisterCompanyVendor(service.RegisterCompanyVendorInput{
		FullName:                  req.FullName,
		Designation:               req.Designation,
		CompanyName:               req.CompanyName,
		Email:                     req.Email,
		Password:                  req.Password,
		PhoneNumber:               req.PhoneNumber,
		CompanyRegistrationNumber: req.CompanyRegistrationNumber,
		BstiCertificateNumber:     req.BstiCertificateNumber,
		CompanyAddress:            req.CompanyAddress,
		TinNumber:                 req.TinNumber,
		CompanyLogo:               req.CompanyLogo,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "this email is already registered")
			return
		}
		apperrors.ParseAndRespond(c, err, "vendor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vendor registered, pending admin approval",
		"vendor":  vendor,
	})
}

// RegisterRetail handles retail vendor signup
// POST /api/v1/vendors/retail/register
func (ctrl *VendorController) RegisterRetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRetailVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid retail vendor registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "vendor registration details are not valid")
		return
	}

	vendor, err := ctrl.vendorService.RegisterRetailVendor(service.RegisterRetailVendorInput{
		OwnerName:                  req.OwnerName,
		ShopName:                   req.ShopName,
		Email:                      req.Email,
		Password:                   req.Password,
		PhoneNumber:                req.PhoneNumber,
		BusinessRegistrationNumber: req.BusinessRegistrationNumber,
		TradeLicenseNumber:         req.TradeLicenseNumber,
		ShopAddress:                req.ShopAddress,
		TinNumber:                  req.TinNumber,
		ShopLogo:                   req.ShopLogo,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "this email is already registered")
			return
		}
		apperrors.ParseAndRespond(c, err, "vendor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vendor registered, pending admin approval",
		"vendor":  vendor,
	})
}

// LoginCompany authenticates a company vendor and fills the vendor
// session slot. Pending or rejected accounts are refused.
// POST /api/v1/vendors/company/login
func (ctrl *VendorController) LoginCompany(c *gin.Context) {
	var req VendorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email and password are required")
		return
	}

	vendor, tokens, err := ctrl.vendorService.LoginCompanyVendor(req.Email, req.Password)
	if err != nil {
		ctrl.respondVendorLoginError(c, err)
		return
	}

	ctrl.session.LoginCompanyVendor(vendor)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"vendor":  vendor,
		"tokens":  tokens,
	})
}

// LoginRetail authenticates a retail vendor and fills the vendor session
// slot
// POST /api/v1/vendors/retail/login
func (ctrl *VendorController) LoginRetail(c *gin.Context) {
	var req VendorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email and password are required")
		return
	}

	vendor, tokens, err := ctrl.vendorService.LoginRetailVendor(req.Email, req.Password)
	if err != nil {
		ctrl.respondVendorLoginError(c, err)
		return
	}

	ctrl.session.LoginRetailVendor(vendor)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"vendor":  vendor,
		"tokens":  tokens,
	})
}

func (ctrl *VendorController) respondVendorLoginError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "invalid email or password")
	case errors.Is(err, service.ErrVendorNotApproved):
		apperrors.Forbidden(c, apperrors.VendorNotApproved, "vendor account is pending approval or has been rejected")
	default:
		log.Error("Vendor login failed", err)
		apperrors.ParseAndRespond(c, err, "vendor")
	}
}

// Logout empties the vendor session slot
// POST /api/v1/vendors/logout
func (ctrl *VendorController) Logout(c *gin.Context) {
	ctrl.session.LogoutVendor()
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// AddProduct submits a new product for the authenticated vendor. The
// product starts pending and stays off public listings until approved.
// POST /api/v1/vendors/products
func (ctrl *VendorController) AddProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "product details are not valid")
		return
	}

	vendorType, ok := middleware.VendorTypeFromRole(c.GetString(middleware.ActorRoleKey))
	if !ok {
		apperrors.Forbidden(c, apperrors.AuthzVendorOnly, "vendor access required")
		return
	}

	product, err := ctrl.productService.AddProduct(service.AddProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		VendorID:    c.GetString(middleware.ActorIDKey),
		VendorType:  vendorType,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNameRequired):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "product name is required")
		case errors.Is(err, service.ErrInvalidPrice):
			apperrors.BadRequest(c, apperrors.ProductInvalidPrice, "price must be greater than zero")
		case errors.Is(err, service.ErrVendorNotApproved):
			apperrors.Forbidden(c, apperrors.VendorNotApproved, "only approved vendors can add products")
		default:
			log.Error("Failed to add product", err, map[string]interface{}{
				"vendor_id": c.GetString(middleware.ActorIDKey),
			})
			apperrors.ParseAndRespond(c, err, "product")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product submitted for approval",
		"product": product,
	})
}

// MyProducts lists the authenticated vendor's own products in every
// approval state
// GET /api/v1/vendors/products
func (ctrl *VendorController) MyProducts(c *gin.Context) {
	products, err := ctrl.productService.ListByVendor(c.GetString(middleware.ActorIDKey))
	if err != nil {
		apperrors.ParseAndRespond(c, err, "products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}
