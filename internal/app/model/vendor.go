package model

// AccountStatus is the admin-controlled lifecycle state of a vendor account
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusRejected AccountStatus = "rejected"
)

// VendorType distinguishes the two vendor account tables
type VendorType string

const (
	VendorTypeCompany VendorType = "company"
	VendorTypeRetail  VendorType = "retail"
)

// CompanyVendor is a manufacturer account. Created pending; only an admin
// decision moves it to approved or rejected, and neither is reversible.
type CompanyVendor struct {
	VendorID                  string        `gorm:"primaryKey;column:vendor_id" json:"vendor_id"`
	FullName                  string        `gorm:"column:full_name;not null" json:"full_name"`
	Designation               string        `gorm:"not null" json:"designation"`
	CompanyName               string        `gorm:"column:company_name;not null" json:"company_name"`
	Email                     string        `gorm:"uniqueIndex;not null" json:"email"`
	Password                  string        `gorm:"not null" json:"-"` // bcrypt hash
	PhoneNumber               string        `gorm:"column:phone_number;not null" json:"phone_number"`
	CompanyRegistrationNumber string        `gorm:"column:company_registration_number" json:"company_registration_number"`
	BstiCertificateNumber     string        `gorm:"column:bsti_certificate_number" json:"bsti_certificate_number"`
	CompanyAddress            string        `gorm:"column:company_address;not null" json:"company_address"`
	TinNumber                 string        `gorm:"column:tin_number" json:"tin_number"`
	CompanyLogo               string        `gorm:"column:company_logo" json:"company_logo"`
	AccountStatus             AccountStatus `gorm:"column:account_status;type:varchar(20);default:pending" json:"account_status"`
}

func (CompanyVendor) TableName() string {
	return "company_vendors"
}

// RetailVendor is a shop account with the same lifecycle as CompanyVendor
type RetailVendor struct {
	VendorID                   string        `gorm:"primaryKey;column:vendor_id" json:"vendor_id"`
	OwnerName                  string        `gorm:"column:owner_name;not null" json:"owner_name"`
	ShopName                   string        `gorm:"column:shop_name;not null" json:"shop_name"`
	Email                      string        `gorm:"uniqueIndex;not null" json:"email"`
	Password                   string        `gorm:"not null" json:"-"` // bcrypt hash
	PhoneNumber                string        `gorm:"column:phone_number;not null" json:"phone_number"`
	BusinessRegistrationNumber string        `gorm:"column:business_registration_number" json:"business_registration_number"`
	TradeLicenseNumber         string        `gorm:"column:trade_license_number" json:"trade_license_number"`
	ShopAddress                string        `gorm:"column:shop_address;not null" json:"shop_address"`
	TinNumber                  string        `gorm:"column:tin_number" json:"tin_number"`
	ShopLogo                   string        `gorm:"column:shop_logo" json:"shop_logo"`
	AccountStatus              AccountStatus `gorm:"column:account_status;type:varchar(20);default:pending" json:"account_status"`
}

func (RetailVendor) TableName() string {
	return "retail_vendors"
}
