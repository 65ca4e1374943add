package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/feature/identity/usecase"
)

// tokenGorm is a GORM implementation of the TokenRepository interface.
type tokenGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenGorm implements TokenRepository.
var _ usecase.TokenRepository = (*tokenGorm)(nil)

// NewTokenGorm creates a new instance of tokenGorm.
func NewTokenGorm(db *gorm.DB) *tokenGorm {
	return &tokenGorm{db: db}
}

// Create persists a new token. The identity_id column carries a unique
// index, so a concurrent issue for the same identity surfaces as
// usecase.ErrTokenExists.
func (r *tokenGorm) Create(ctx context.Context, token *entity.Token) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrTokenExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a token by its opaque value.
func (r *tokenGorm) FindByID(ctx context.Context, id string) (*entity.Token, error) {
	var token entity.Token
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// FindByIdentityID retrieves the token bound to the given identity.
func (r *tokenGorm) FindByIdentityID(ctx context.Context, identityID uint) (*entity.Token, error) {
	var token entity.Token
	if err := r.db.WithContext(ctx).Where("identity_id = ?", identityID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}
