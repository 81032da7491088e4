package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MOHITH-R2/my-e-commerce-website/models"
)

// GormCatalog reads products from the relational store.
type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (s *GormCatalog) Products() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormCatalog) ProductsByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("category = ?", category).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormCatalog) ProductByID(id uint) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (s *GormCatalog) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Product{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormCatalog) Related(id uint, limit int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("id <> ?", id).Order("id asc").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GormAccounts persists users. The unique indexes on username and email are
// the real uniqueness guarantee; concurrent registrations race only down to
// the database constraint. Requires gorm.Config{TranslateError: true} so a
// violation surfaces as gorm.ErrDuplicatedKey.
type GormAccounts struct {
	db *gorm.DB
}

func NewGormAccounts(db *gorm.DB) *GormAccounts {
	return &GormAccounts{db: db}
}

func (s *GormAccounts) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (s *GormAccounts) UserByUsername(username string) (models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *GormAccounts) UserByEmail(email string) (models.User, error) {
	var user models.User
	err := s.db.Where("lower(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
