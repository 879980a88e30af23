package model

// ApprovalStatus is the admin-controlled lifecycle state of a product.
// Pending products are invisible to public listings; rejected products
// stay rejected (a vendor lists a new product to retry).
type ApprovalStatus string

const (
	ProductPending  ApprovalStatus = "pending"
	ProductApproved ApprovalStatus = "approved"
	ProductRejected ApprovalStatus = "rejected"
)

type Product struct {
	ProductID           string         `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name                string         `gorm:"not null" json:"name"`
	Description         string         `gorm:"type:text" json:"description"`
	Price               float64        `gorm:"not null" json:"price"`
	Unit                string         `json:"unit"`
	Category            string         `gorm:"index" json:"category"`
	ImageURL            string         `gorm:"column:image_url" json:"image_url"`
	VendorID            *string        `gorm:"column:vendor_id;index" json:"vendor_id,omitempty"` // nil for seed catalog entries
	RecommendationCount int            `gorm:"column:recommendation_count;default:0" json:"recommendation_count"`
	ApprovalStatus      ApprovalStatus `gorm:"column:approval_status;type:varchar(20);default:pending;index" json:"approval_status"`
	RejectionReason     *string        `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`

	Reviews       []Review `gorm:"foreignKey:ProductID;references:ProductID" json:"reviews,omitempty"`
	AverageRating float64  `gorm:"-" json:"average_rating"`
}

func (Product) TableName() string {
	return "products"
}

// RecalculateAverageRating recomputes the derived average from the loaded
// reviews; 0.0 when there are none.
func (p *Product) RecalculateAverageRating() {
	if len(p.Reviews) == 0 {
		p.AverageRating = 0.0
		return
	}
	sum := 0
	for _, review := range p.Reviews {
		sum += review.Rating
	}
	p.AverageRating = float64(sum) / float64(len(p.Reviews))
}

// AddReview appends a review and keeps the derived average in step
func (p *Product) AddReview(review Review) {
	p.Reviews = append(p.Reviews, review)
	p.RecalculateAverageRating()
}
