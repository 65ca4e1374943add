// Package adapters provides repository implementations for the applications feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/usecase"
)

// applicationGorm is a GORM implementation of the ApplicationRepository interface.
type applicationGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure applicationGorm implements ApplicationRepository.
var _ usecase.ApplicationRepository = (*applicationGorm)(nil)

// NewApplicationGorm creates a new instance of applicationGorm.
func NewApplicationGorm(db *gorm.DB) *applicationGorm {
	return &applicationGorm{db: db}
}

// Create persists a new application. The (listing_id, applicant_id)
// composite unique index is the authoritative duplicate guard: a
// violation is translated to usecase.ErrDuplicateApplication, the same
// error kind the proactive existence check produces.
func (r *applicationGorm) Create(ctx context.Context, a *entity.Application) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

// Exists reports whether an application exists for the given pair.
func (r *applicationGorm) Exists(ctx context.Context, listingID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("listing_id = ? AND applicant_id = ?", listingID, applicantID).
		Count(&count).Error
	return count > 0, err
}

// FindByApplicant retrieves all applications submitted by the identity,
// newest first. The listing title is joined in for the response payload.
func (r *applicationGorm) FindByApplicant(ctx context.Context, applicantID uint) ([]entity.Application, error) {
	var applications []entity.Application
	if err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Select("applications.*, listings.title AS listing_title").
		Joins("LEFT JOIN listings ON listings.id = applications.listing_id").
		Where("applications.applicant_id = ?", applicantID).
		Order("applications.created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
