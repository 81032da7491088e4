package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MOHITH-R2/my-e-commerce-website/models"
)

// MemoryCatalog serves the catalog from a fixed in-memory slice. It is the
// no-database variant and the test backend.
type MemoryCatalog struct {
	products []models.Product
}

// NewMemoryCatalog copies the given products and keeps them sorted by id.
func NewMemoryCatalog(products ...models.Product) *MemoryCatalog {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &MemoryCatalog{products: sorted}
}

func (s *MemoryCatalog) Products() ([]models.Product, error) {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryCatalog) ProductsByCategory(category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryCatalog) ProductByID(id uint) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryCatalog) Categories() ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *MemoryCatalog) Related(id uint, limit int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.ID == id {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// MemoryAccounts keeps users in process memory. The mutex spans the whole
// check-then-insert so concurrent registrations cannot slip in a duplicate.
type MemoryAccounts struct {
	mu      sync.Mutex
	byID    map[uint]models.User
	nextID  uint
	byName  map[string]uint
	byEmail map[string]uint
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{
		byID:    make(map[uint]models.User),
		nextID:  1,
		byName:  make(map[string]uint),
		byEmail: make(map[string]uint),
	}
}

func (s *MemoryAccounts) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emailKey := strings.ToLower(user.Email)
	if _, taken := s.byName[user.Username]; taken {
		return ErrDuplicateAccount
	}
	if _, taken := s.byEmail[emailKey]; taken {
		return ErrDuplicateAccount
	}

	user.ID = s.nextID
	s.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.byID[user.ID] = *user
	s.byName[user.Username] = user.ID
	s.byEmail[emailKey] = user.ID
	return nil
}

func (s *MemoryAccounts) UserByUsername(username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byName[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.byID[id], nil
}

func (s *MemoryAccounts) UserByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.byID[id], nil
}
