package model

// Favourite marks a product as favourited. Membership is the only state;
// the table is global to the installation (no per-account scoping).
type Favourite struct {
	ProductID string `gorm:"primaryKey;column:product_id" json:"product_id"`
}

func (Favourite) TableName() string {
	return "favourites"
}

// FavouriteCategory marks a category name as favourited
type FavouriteCategory struct {
	CategoryName string `gorm:"primaryKey;column:category_name" json:"category_name"`
}

func (FavouriteCategory) TableName() string {
	return "favourite_categories"
}
