package store

import (
	"errors"

	"github.com/MOHITH-R2/my-e-commerce-website/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateAccount = errors.New("username or email already registered")
)

// CatalogStore is read-only at request time; products only appear via seeding.
type CatalogStore interface {
	// Products returns the whole catalog, id ascending.
	Products() ([]models.Product, error)
	// ProductsByCategory returns the catalog rows in one category, id ascending.
	ProductsByCategory(category string) ([]models.Product, error)
	// ProductByID returns ErrNotFound for an unknown id.
	ProductByID(id uint) (models.Product, error)
	// Categories returns the distinct category names present in the catalog.
	Categories() ([]string, error)
	// Related returns up to limit products other than id. Order is not a
	// relevance ranking, only a stable pick.
	Related(id uint, limit int) ([]models.Product, error)
}

type AccountStore interface {
	// CreateUser persists a new account. Uniqueness of username and email is
	// enforced by the store itself, not by caller pre-checks; a collision
	// returns ErrDuplicateAccount.
	CreateUser(user *models.User) error
	// UserByUsername matches case-sensitively; ErrNotFound when absent.
	UserByUsername(username string) (models.User, error)
	// UserByEmail matches case-insensitively; ErrNotFound when absent.
	UserByEmail(email string) (models.User, error)
}
