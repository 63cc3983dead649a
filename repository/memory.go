package repository

import (
	"sort"
	"sync"

	"github.com/maurozn/storefront-api/models"
)

// InMemoryCatalogStore is a map-backed CatalogStore for tests.
type InMemoryCatalogStore struct {
	products map[uint]models.Product
}

func NewInMemoryCatalogStore(products ...models.Product) *InMemoryCatalogStore {
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &InMemoryCatalogStore{products: byID}
}

func (s *InMemoryCatalogStore) ListProducts() ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryCatalogStore) ProductsByIDs(ids []int) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if id < 0 {
			continue
		}
		if p, ok := s.products[uint(id)]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// InMemoryAccountStore is a map-backed AccountStore for tests.
type InMemoryAccountStore struct {
	mu      sync.Mutex
	nextID  uint
	byEmail map[string]*models.User
}

func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{nextID: 1, byEmail: make(map[string]*models.User)}
}

func (s *InMemoryAccountStore) UserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *InMemoryAccountStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[user.Email]; ok {
		return ErrDuplicateEmail
	}
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.byEmail[user.Email] = &copied
	return nil
}

// Count reports how many users the store holds.
func (s *InMemoryAccountStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byEmail)
}
