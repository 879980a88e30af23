package model

// Admin is the approval authority. Exactly one is seeded on first run;
// there is no signup flow for admins.
type Admin struct {
	AdminID  string `gorm:"primaryKey;column:admin_id" json:"admin_id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
}

func (Admin) TableName() string {
	return "admins"
}
