package model

import "time"

// Review is a star rating with a comment. Immutable once created; the
// owning product's average is derived from all of its reviews.
type Review struct {
	ReviewID   string    `gorm:"primaryKey;column:review_id" json:"review_id"`
	ProductID  string    `gorm:"column:product_id;not null;index" json:"product_id"`
	UserName   string    `gorm:"column:user_name;not null" json:"user_name"`
	Comment    string    `gorm:"type:text" json:"comment"`
	Rating     int       `gorm:"not null" json:"rating"` // 1..5
	DatePosted time.Time `gorm:"column:date_posted;autoCreateTime" json:"date_posted"`
}

func (Review) TableName() string {
	return "reviews"
}
