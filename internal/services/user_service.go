package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/reportesapp/backend/internal/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindByEmail looks a user up by its login email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// Create inserts a user and reads the row back by its generated id.
func (s *UserService) Create(ctx context.Context, name, email string, picture *string) (*models.User, error) {
	user := models.User{Name: name, Email: email, Picture: picture}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	var created models.User
	if err := s.db.WithContext(ctx).First(&created, user.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to read back created user: %w", err)
	}
	return &created, nil
}

// GoogleLogin returns the user for email, creating it on first login. Two
// concurrent first logins are resolved by the unique email index: the insert
// that loses surfaces gorm.ErrDuplicatedKey and re-fetches the winner's row.
func (s *UserService) GoogleLogin(ctx context.Context, email, name string, picture *string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	created, err := s.Create(ctx, name, email, picture)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return s.FindByEmail(ctx, email)
	}
	return nil, err
}
