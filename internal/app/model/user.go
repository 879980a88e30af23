package model

// UserType is fixed to "user" for accounts created through registration
const DefaultUserType = "user"

// User is a registered end-user account. Users are usable immediately
// after registration; admin approval applies to vendors and products only.
type User struct {
	UserID         string `gorm:"primaryKey;column:user_id" json:"user_id"`
	FullName       string `gorm:"column:full_name;not null" json:"full_name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"` // bcrypt hash
	PhoneNumber    string `gorm:"column:phone_number;not null" json:"phone_number"`
	DateOfBirth    string `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender         string `json:"gender"`
	City           string `json:"city"`
	ProfilePicture string `gorm:"column:profile_picture" json:"profile_picture"`
	UserType       string `gorm:"column:user_type;default:user" json:"user_type"`
}

func (User) TableName() string {
	return "users"
}
