package service

import (
	"errors"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/gorm"
)

// FavouriteService manages the two global membership sets: favourite
// products and favourite categories. Both operations are idempotent.
type FavouriteService interface {
	AddProduct(productID string) error
	RemoveProduct(productID string) error
	IsFavourite(productID string) (bool, error)
	ListProducts() ([]model.Product, error)

	AddCategory(categoryName string) error
	RemoveCategory(categoryName string) error
	IsFavouriteCategory(categoryName string) (bool, error)
	ListCategories() ([]string, error)
}

type favouriteService struct {
	favouriteRepo repository.FavouriteRepository
	productRepo   repository.ProductRepository
}

func NewFavouriteService(favouriteRepo repository.FavouriteRepository, productRepo repository.ProductRepository) FavouriteService {
	return &favouriteService{
		favouriteRepo: favouriteRepo,
		productRepo:   productRepo,
	}
}

func (s *favouriteService) AddProduct(productID string) error {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.favouriteRepo.Add(productID); err != nil {
		return err
	}

	logger.Debug("Product added to favourites", map[string]interface{}{
		"product_id": productID,
	})
	return nil
}

func (s *favouriteService) RemoveProduct(productID string) error {
	return s.favouriteRepo.Remove(productID)
}

func (s *favouriteService) IsFavourite(productID string) (bool, error) {
	return s.favouriteRepo.Contains(productID)
}

func (s *favouriteService) ListProducts() ([]model.Product, error) {
	return s.favouriteRepo.ListProducts()
}

func (s *favouriteService) AddCategory(categoryName string) error {
	if err := s.favouriteRepo.AddCategory(categoryName); err != nil {
		return err
	}

	logger.Debug("Category added to favourites", map[string]interface{}{
		"category": categoryName,
	})
	return nil
}

func (s *favouriteService) RemoveCategory(categoryName string) error {
	return s.favouriteRepo.RemoveCategory(categoryName)
}

func (s *favouriteService) IsFavouriteCategory(categoryName string) (bool, error) {
	return s.favouriteRepo.ContainsCategory(categoryName)
}

func (s *favouriteService) ListCategories() ([]string, error) {
	return s.favouriteRepo.ListCategories()
}
