package errors

// Error code constants returned to API clients.
// Format: CATEGORY_SPECIFIC_DETAIL; the front end maps these to messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthCodeInvalid        = "AUTH_CODE_INVALID"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden  = "AUTHZ_FORBIDDEN"
	AuthzAdminOnly  = "AUTHZ_ADMIN_ONLY"
	AuthzVendorOnly = "AUTHZ_VENDOR_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Vendors (VENDOR_) ====================
	VendorNotFound       = "VENDOR_NOT_FOUND"
	VendorNotApproved    = "VENDOR_NOT_APPROVED"
	VendorAlreadyDecided = "VENDOR_ALREADY_DECIDED"
	VendorInvalidType    = "VENDOR_INVALID_TYPE"

	// ==================== Products (PRODUCT_) ====================
	ProductNotFound       = "PRODUCT_NOT_FOUND"
	ProductNotPending     = "PRODUCT_NOT_PENDING"
	ProductReasonRequired = "PRODUCT_REJECTION_REASON_REQUIRED"
	ProductInvalidPrice   = "PRODUCT_INVALID_PRICE"

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
