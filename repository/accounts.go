package repository

import (
	"errors"

	"github.com/maurozn/storefront-api/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountStore is the persistence surface for user credentials.
type AccountStore interface {
	UserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
}

type GormAccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *GormAccountStore {
	return &GormAccountStore{db: db}
}

func (s *GormAccountStore) UserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormAccountStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}
