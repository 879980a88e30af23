package service

import (
	"errors"
	"strings"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrInvalidPrice            = errors.New("price must be greater than zero")
	ErrProductNameRequired     = errors.New("product name is required")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)

// AddProductInput carries the add-product form fields together with the
// acting vendor's identity.
type AddProductInput struct {
	Name        string
	Description string
	Price       float64
	Unit        string
	Category    string
	ImageURL    string
	VendorID    string
	VendorType  model.VendorType
}

type ProductService interface {
	AddProduct(input AddProductInput) (*model.Product, error)
	GetProduct(id string) (*model.Product, error)
	ListApproved() ([]model.Product, error)
	ListApprovedByCategory(category string) ([]model.Product, error)
	ListPending() ([]model.Product, error)
	ListByVendor(vendorID string) ([]model.Product, error)
	Approve(id string) error
	Reject(id, reason string) error
	Recommend(id string) error
	Unrecommend(id string) error
	SetRecommendationCount(id string, count int) error
}

type productService struct {
	productRepo repository.ProductRepository
	vendorSvc   VendorService
}

func NewProductService(productRepo repository.ProductRepository, vendorSvc VendorService) ProductService {
	return &productService{
		productRepo: productRepo,
		vendorSvc:   vendorSvc,
	}
}

// AddProduct creates a pending product for an approved vendor. The
// approval check lives here, not at the call site, so the invariant holds
// for every caller.
func (s *productService) AddProduct(input AddProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProductNameRequired
	}
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	approved, err := s.vendorSvc.IsVendorApproved(input.VendorID, input.VendorType)
	if err != nil {
		return nil, err
	}
	if !approved {
		logger.Warn("Add product refused: vendor not approved", map[string]interface{}{
			"vendor_id":   input.VendorID,
			"vendor_type": input.VendorType,
		})
		return nil, ErrVendorNotApproved
	}

	vendorID := input.VendorID
	product := &model.Product{
		ProductID:      util.NewProductID(),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Unit:           input.Unit,
		Category:       input.Category,
		ImageURL:       input.ImageURL,
		VendorID:       &vendorID,
		ApprovalStatus: model.ProductPending,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	logger.Info("Product submitted for approval", map[string]interface{}{
		"product_id": product.ProductID,
		"vendor_id":  input.VendorID,
	})
	return product, nil
}

func (s *productService) GetProduct(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListApproved() ([]model.Product, error) {
	return s.productRepo.FindApproved()
}

func (s *productService) ListApprovedByCategory(category string) ([]model.Product, error) {
	return s.productRepo.FindApprovedByCategory(category)
}

func (s *productService) ListPending() ([]model.Product, error) {
	return s.productRepo.FindByStatus(model.ProductPending)
}

func (s *productService) ListByVendor(vendorID string) ([]model.Product, error) {
	return s.productRepo.FindByVendor(vendorID)
}

// Approve makes a product publicly visible and clears any earlier
// rejection reason.
func (s *productService) Approve(id string) error {
	updated, err := s.productRepo.SetApproval(id, model.ProductApproved, nil)
	if err != nil {
		return err
	}
	if !updated {
		return ErrProductNotFound
	}

	logger.Info("Product approved", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// Reject marks a product rejected with a mandatory reason
func (s *productService) Reject(id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrRejectionReasonRequired
	}

	updated, err := s.productRepo.SetApproval(id, model.ProductRejected, &reason)
	if err != nil {
		return err
	}
	if !updated {
		return ErrProductNotFound
	}

	logger.Info("Product rejected", map[string]interface{}{
		"product_id": id,
		"reason":     reason,
	})
	return nil
}

func (s *productService) Recommend(id string) error {
	if err := s.ensureExists(id); err != nil {
		return err
	}
	return s.productRepo.IncrementRecommendation(id)
}

// Unrecommend lowers the counter by one; the count never goes below zero
// however many times this is called.
func (s *productService) Unrecommend(id string) error {
	if err := s.ensureExists(id); err != nil {
		return err
	}
	return s.productRepo.DecrementRecommendation(id)
}

func (s *productService) SetRecommendationCount(id string, count int) error {
	if count < 0 {
		count = 0
	}
	if err := s.ensureExists(id); err != nil {
		return err
	}
	return s.productRepo.SetRecommendationCount(id, count)
}

func (s *productService) ensureExists(id string) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
