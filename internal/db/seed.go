package db

import (
	"github.com/findingbd/findingbd-backend/config"
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"gorm.io/gorm"
)

// Fixed identifiers for the seeded records so reseeding an existing
// database never duplicates them.
const (
	seedAdminID        = "admin001"
	seedCompanyPranID  = "CV-pran0001"
	seedCompanySqreID  = "CV-sqre0001"
	seedRetailMeenaID  = "RV-meena001"
	seedVendorPassword = "vendor123"
)

// Seed runs the first-run seed against the initialized database
func Seed(cfg *config.AdminConfig) error {
	return seedInitialData(DB, cfg)
}

func seedInitialData(db *gorm.DB, cfg *config.AdminConfig) error {
	if err := seedDefaultAdmin(db, cfg); err != nil {
		return err
	}
	return seedCatalog(db)
}

// seedDefaultAdmin creates the single admin account when the admins table
// is empty. The default credentials are publicly known; deployments must
// override them via ADMIN_EMAIL/ADMIN_PASSWORD.
func seedDefaultAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	var count int64
	if err := db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := util.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := model.Admin{
		AdminID:  seedAdminID,
		Email:    cfg.Email,
		Password: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Default admin created", map[string]interface{}{
		"admin_id": admin.AdminID,
		"email":    admin.Email,
	})
	return nil
}

// seedCatalog loads the demonstration catalog: a set of pre-approved
// vendor accounts and the fixed product list with its reviews and
// recommendation counts. Skipped entirely when products already exist.
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Catalog already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding demonstration catalog...")

	vendorHash, err := util.HashPassword(seedVendorPassword)
	if err != nil {
		return err
	}

	companyVendors := []model.CompanyVendor{
		{
			VendorID:                  seedCompanyPranID,
			FullName:                  "Kamal Uddin",
			Designation:               "Sales Manager",
			CompanyName:               "Pran Foods Ltd",
			Email:                     "vendor.pran@findingbd.com",
			Password:                  vendorHash,
			PhoneNumber:               "01711000001",
			CompanyRegistrationNumber: "C-48151",
			BstiCertificateNumber:     "BSTI-10234",
			CompanyAddress:            "Pran Center, Badda, Dhaka",
			TinNumber:                 "TIN-550122",
			AccountStatus:             model.StatusApproved,
		},
		{
			VendorID:                  seedCompanySqreID,
			FullName:                  "Nasrin Akter",
			Designation:               "Brand Executive",
			CompanyName:               "Square Toiletries Ltd",
			Email:                     "vendor.square@findingbd.com",
			Password:                  vendorHash,
			PhoneNumber:               "01711000002",
			CompanyRegistrationNumber: "C-20987",
			BstiCertificateNumber:     "BSTI-20811",
			CompanyAddress:            "Square Center, Mohakhali, Dhaka",
			TinNumber:                 "TIN-660233",
			AccountStatus:             model.StatusApproved,
		},
	}
	for i := range companyVendors {
		if err := db.Create(&companyVendors[i]).Error; err != nil {
			return err
		}
	}

	retailVendor := model.RetailVendor{
		VendorID:                   seedRetailMeenaID,
		OwnerName:                  "Rafiq Islam",
		ShopName:                   "Meena Bazar Dhanmondi",
		Email:                      "vendor.meena@findingbd.com",
		Password:                   vendorHash,
		PhoneNumber:                "01711000003",
		BusinessRegistrationNumber: "BR-77120",
		TradeLicenseNumber:         "TL-30412",
		ShopAddress:                "House 4, Road 27, Dhanmondi, Dhaka",
		TinNumber:                  "TIN-770344",
		AccountStatus:              model.StatusApproved,
	}
	if err := db.Create(&retailVendor).Error; err != nil {
		return err
	}

	pran := seedCompanyPranID
	square := seedCompanySqreID

	products := []model.Product{
		{ProductID: "mojo", Name: "Mojo", Description: "Soft Drink", Price: 25, Unit: "250ml", Category: "Beverages", ImageURL: "/images/mojo.jpg", VendorID: &pran},
		{ProductID: "mediplus", Name: "Mediplus DS", Description: "Toothpaste", Price: 85, Unit: "100g", Category: "Oral Care", ImageURL: "/images/mediplus.jpg"},
		{ProductID: "spa-water", Name: "Spa Drinking Water", Description: "Water", Price: 20, Unit: "500ml", Category: "Beverages", ImageURL: "/images/spa-water.jpg"},
		{ProductID: "meril-soap", Name: "Meril Milk Soap", Description: "Moisturizing Soap", Price: 35, Unit: "75g", Category: "Skin Care", ImageURL: "/images/meril-soap.jpg", VendorID: &square},
		{ProductID: "shezan-juice", Name: "Shezan Mango Juice", Description: "Mango Juice", Price: 35, Unit: "200ml", Category: "Beverages", ImageURL: "/images/shezan-juice.jpg"},
		{ProductID: "pran-potata", Name: "Pran Potata Spicy", Description: "Biscuit", Price: 40, Unit: "pack", Category: "Snacks", ImageURL: "/images/pran-potata.jpg", VendorID: &pran},
		{ProductID: "ruchi-chanachur", Name: "Ruchi BBQ Chanachur", Description: "Snack", Price: 30, Unit: "150g", Category: "Snacks", ImageURL: "/images/ruchi-chanachur.jpg", VendorID: &pran},
		{ProductID: "bashundhara-towel", Name: "Bashundhara Towel", Description: "Hand Towel", Price: 80, Unit: "pack", Category: "Home Care", ImageURL: "/images/bashundhara-towel.jpg"},
		{ProductID: "revive-lotion", Name: "Revive Perfect Skin", Description: "Moisturizing Lotion", Price: 150, Unit: "100ml", Category: "Skin Care", ImageURL: "/images/revive-lotion.jpg", VendorID: &square},
		{ProductID: "jui-oil", Name: "Jui HairCare Oil", Description: "Hair Oil", Price: 95, Unit: "200ml", Category: "Hair Care", ImageURL: "/images/jui-oil.jpg", VendorID: &square},
		{ProductID: "radhuni-tumeric", Name: "Radhuni Tumeric", Description: "Powder", Price: 55, Unit: "100g", Category: "Food & Grocery", ImageURL: "/images/radhuni-tumeric.jpg"},
		{ProductID: "pran-ghee", Name: "Pran Premium Ghee", Description: "Cooking Ghee", Price: 250, Unit: "500g", Category: "Food & Grocery", ImageURL: "/images/pran-ghee.jpg", VendorID: &pran},
	}
	for i := range products {
		products[i].ApprovalStatus = model.ProductApproved
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	reviews := []model.Review{
		{ReviewID: "r1", ProductID: "mojo", UserName: "Ahmed Khan", Comment: "Great energy drink! Very refreshing.", Rating: 5},
		{ReviewID: "r2", ProductID: "mojo", UserName: "Fatima Rahman", Comment: "Good taste but a bit sweet.", Rating: 4},
		{ReviewID: "r3", ProductID: "meril-soap", UserName: "Sadia Islam", Comment: "Makes my skin very soft!", Rating: 5},
		{ReviewID: "r4", ProductID: "shezan-juice", UserName: "Karim Hossain", Comment: "Love the mango flavor!", Rating: 5},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			return err
		}
	}

	recommendations := map[string]int{
		"mojo":         15,
		"meril-soap":   23,
		"shezan-juice": 18,
	}
	for productID, count := range recommendations {
		err := db.Model(&model.Product{}).
			Where("product_id = ?", productID).
			Update("recommendation_count", count).Error
		if err != nil {
			return err
		}
	}

	logger.Info("Demonstration catalog seeded successfully", map[string]interface{}{
		"products": len(products),
		"vendors":  len(companyVendors) + 1,
		"reviews":  len(reviews),
	})
	return nil
}
