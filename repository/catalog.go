package repository

import (
	"github.com/maurozn/storefront-api/models"
	"gorm.io/gorm"
)

// CatalogStore is the read surface over the product catalog. The catalog is
// seeded once at startup and never written by request handlers.
type CatalogStore interface {
	ListProducts() ([]models.Product, error)
	// ProductsByIDs resolves the given ids, silently dropping any that do
	// not exist in the catalog.
	ProductsByIDs(ids []int) ([]models.Product, error)
}

type GormCatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

func (s *GormCatalogStore) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormCatalogStore) ProductsByIDs(ids []int) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := s.db.Where("id IN ?", ids).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SeedProducts inserts the given products if the catalog is empty.
func (s *GormCatalogStore) SeedProducts(products []models.Product) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.Create(&products).Error
}
