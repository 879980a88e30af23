package util

import (
	"strings"

	"github.com/google/uuid"
)

// Identifier prefixes used across the database. The short 8-character
// suffix keeps IDs typeable, which matters for a locally administered
// database.
const (
	UserIDPrefix          = "U-"
	CompanyVendorIDPrefix = "CV-"
	RetailVendorIDPrefix  = "RV-"
	ProductIDPrefix       = "PROD"
	ReviewIDPrefix        = "REV-"
)

func shortID() string {
	return uuid.NewString()[:8]
}

// NewUserID generates a user identifier of the form U-xxxxxxxx
func NewUserID() string {
	return UserIDPrefix + shortID()
}

// NewCompanyVendorID generates a company vendor identifier of the form CV-xxxxxxxx
func NewCompanyVendorID() string {
	return CompanyVendorIDPrefix + shortID()
}

// NewRetailVendorID generates a retail vendor identifier of the form RV-xxxxxxxx
func NewRetailVendorID() string {
	return RetailVendorIDPrefix + shortID()
}

// NewProductID generates a product identifier of the form PRODXXXXXXXX
func NewProductID() string {
	return ProductIDPrefix + strings.ToUpper(shortID())
}

// NewReviewID generates a review identifier of the form REV-xxxxxxxx
func NewReviewID() string {
	return ReviewIDPrefix + shortID()
}
