package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "mosque_backend/internals/features/users/auth/model"
	userModel "mosque_backend/internals/features/users/user/model"
)

// UserRepository is the persistence surface the auth and profile services
// are built against. The gorm implementation below is the production one;
// tests substitute an in-memory fake.
type UserRepository interface {
	Create(ctx context.Context, user *userModel.UserModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
	FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	FindByGoogleID(ctx context.Context, googleID string) (*userModel.UserModel, error)
	Update(ctx context.Context, user *userModel.UserModel) error
}

// TokenRepository records revoked access tokens.
type TokenRepository interface {
	Blacklist(ctx context.Context, token string, expiredAt time.Time) error
}

/* ==========================
   GORM implementations
========================== */

type GormUserRepository struct {
	DB *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *userModel.UserModel) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "google_id = ?", googleID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *userModel.UserModel) error {
	return r.DB.WithContext(ctx).Save(user).Error
}

type GormTokenRepository struct {
	DB *gorm.DB
}

func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{DB: db}
}

func (r *GormTokenRepository) Blacklist(ctx context.Context, token string, expiredAt time.Time) error {
	return r.DB.WithContext(ctx).Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}
