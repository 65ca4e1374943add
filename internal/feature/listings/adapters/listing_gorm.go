// Package adapters はlistingsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/listings/domain/entity"
	"jobboard_backend/internal/feature/listings/usecase"
)

// listingGorm はListingRepositoryインターフェースのGORM実装です。
type listingGorm struct {
	db *gorm.DB
}

// listingGormがListingRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ListingRepository = (*listingGorm)(nil)

// NewListingGorm は指定されたgorm.DB接続でlistingGormの新しいインスタンスを生成します。
func NewListingGorm(db *gorm.DB) *listingGorm {
	return &listingGorm{db: db}
}

// Create はリスティングをデータベースに追加します。
func (r *listingGorm) Create(ctx context.Context, l *entity.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// Save は既存のリスティングを保存します。
func (r *listingGorm) Save(ctx context.Context, l *entity.Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// FindByID はIDでリスティングを取得します。
// 存在しない場合、usecase.ErrListingNotFoundを返します。
func (r *listingGorm) FindByID(ctx context.Context, id uint) (*entity.Listing, error) {
	var l entity.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Delete はIDでリスティングを削除します。
// 対象が存在しない場合、usecase.ErrListingNotFoundを返します。
func (r *listingGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Listing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrListingNotFound
	}
	return nil
}

// List はフィルタに一致するリスティングを作成日時の降順で取得します。
// LocationとCompanyNameは完全一致、Queryは主要テキスト列への
// 大文字小文字を区別しない部分一致です。
func (r *listingGorm) List(ctx context.Context, f usecase.ListFilter) ([]entity.Listing, error) {
	q := r.db.WithContext(ctx).Model(&entity.Listing{})

	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.CompanyName != "" {
		q = q.Where("company_name = ?", f.CompanyName)
	}
	if f.Query != "" {
		// LOWER同士の比較でpostgresとsqliteの両方で大文字小文字を無視する
		like := "%" + f.Query + "%"
		q = q.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(requirements) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?) OR LOWER(company_name) LIKE LOWER(?)",
			like, like, like, like, like,
		)
	}

	var listings []entity.Listing
	if err := q.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// Deactivate はリスティングを無効化します（is_active = false）。
// 対象が存在しない場合、usecase.ErrListingNotFoundを返します。
func (r *listingGorm) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrListingNotFound
	}
	return nil
}
