// Package adapters はsavedjobsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/savedjobs/domain/entity"
	"jobboard_backend/internal/feature/savedjobs/usecase"
)

// savedJobGorm はSavedJobRepositoryインターフェースのGORM実装です。
type savedJobGorm struct {
	db *gorm.DB
}

// savedJobGormがSavedJobRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SavedJobRepository = (*savedJobGorm)(nil)

// NewSavedJobGorm は指定されたgorm.DB接続でsavedJobGormの新しいインスタンスを生成します。
func NewSavedJobGorm(db *gorm.DB) *savedJobGorm {
	return &savedJobGorm{db: db}
}

// Create はブックマークをデータベースに追加します。
// (listing_id, identity_id)のユニーク制約違反はusecase.ErrAlreadySavedに翻訳されます。
func (r *savedJobGorm) Create(ctx context.Context, s *entity.SavedJob) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadySaved
		}
		return err
	}
	return nil
}

// Exists は指定ペアのブックマークが存在するかを返します。
func (r *savedJobGorm) Exists(ctx context.Context, listingID, identityID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.SavedJob{}).
		Where("listing_id = ? AND identity_id = ?", listingID, identityID).
		Count(&count).Error
	return count > 0, err
}

// Delete は指定ペアのブックマークを削除します。
// 対象が存在しない場合、usecase.ErrNotSavedを返します。
func (r *savedJobGorm) Delete(ctx context.Context, listingID, identityID uint) error {
	result := r.db.WithContext(ctx).
		Where("listing_id = ? AND identity_id = ?", listingID, identityID).
		Delete(&entity.SavedJob{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotSaved
	}
	return nil
}

// FindByIdentity はアイデンティティのブックマークを保存日時の降順で取得します。
func (r *savedJobGorm) FindByIdentity(ctx context.Context, identityID uint) ([]entity.SavedJob, error) {
	var saved []entity.SavedJob
	if err := r.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Order("saved_at DESC").
		Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}
