package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

// UserStore defines the user lookups the session layer and seeder need.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	UserByID(ctx context.Context, id uint) (*domain.User, error)
}

// GormUserStore is a GORM-based implementation of UserStore.
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore initializes a new GormUserStore.
func NewGormUserStore(db *gorm.DB) UserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) CreateUser(ctx context.Context, user *domain.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormUserStore) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
