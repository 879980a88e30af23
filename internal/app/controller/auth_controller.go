package controller

import (
	"errors"
	"net/http"

	"github.com/findingbd/findingbd-backend/internal/app/service"
	apperrors "github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/findingbd/findingbd-backend/internal/session"
	"github.com/findingbd/findingbd-backend/pkg/mailer"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	notifier    mailer.Notifier
	session     *session.Session
	// verifyEmails gates registration on a prior email verification.
	// Enabled only when SMTP is configured.
	verifyEmails bool
}

func NewAuthController(authService service.AuthService, notifier mailer.Notifier, sess *session.Session, verifyEmails bool) *AuthController {
	return &AuthController{
		authService:  authService,
		notifier:     notifier,
		session:      sess,
		verifyEmails: verifyEmails,
	}
}

type RegisterRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	City             string `json:"city"`
	VerificationCode string `json:"verification_code"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
}

// SendVerification generates a verification code and mails it to the
// given address
// POST /api/v1/auth/send-verification
func (ctrl *AuthController) SendVerification(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "a valid email address is required")
		return
	}

	code, err := util.GenerateVerificationCode()
	if err != nil {
		log.Error("Failed to generate verification code", err)
		apperrors.InternalError(c, "")
		return
	}

	util.StoreEmailVerificationCode(req.Email, code)

	if err := ctrl.notifier.SendVerificationEmail(req.Email, code); err != nil {
		apperrors.InternalError(c, "failed to send verification email")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification code sent",
	})
}

// Register handles user registration
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "registration details are not valid")
		return
	}

	if ctrl.verifyEmails && !util.VerifyEmailCode(req.Email, req.VerificationCode) {
		apperrors.BadRequest(c, apperrors.AuthCodeInvalid, "email verification code is missing or incorrect")
		return
	}

	user, tokens, err := ctrl.authService.Register(service.RegisterUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		City:        req.City,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "this email is already registered")
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"tokens":  tokens,
	})
}

// Login handles user login and fills the user session slot
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email and password are required")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "invalid email or password")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	ctrl.session.LoginUser(user)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"tokens":  tokens,
	})
}

// Logout empties the user session slot
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.session.LogoutUser()
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// GetMe returns the authenticated user's profile
// GET /api/v1/auth/me
func (ctrl *AuthController) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ActorIDKey)

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "user not found")
			return
		}
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateMe updates the authenticated user's profile
// PUT /api/v1/auth/me
func (ctrl *AuthController) UpdateMe(c *gin.Context) {
	userID := c.GetString(middleware.ActorIDKey)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "profile details are not valid")
		return
	}

	user, err := ctrl.authService.UpdateProfile(userID, req.FullName, req.PhoneNumber, req.City)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "user not found")
			return
		}
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"user":    user,
	})
}
