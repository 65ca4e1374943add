// Package adapters はidentityフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/feature/identity/usecase"
)

// identityGorm はIdentityRepositoryインターフェースのGORM実装です。
type identityGorm struct {
	db *gorm.DB
}

// identityGormがIdentityRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.IdentityRepository = (*identityGorm)(nil)

// NewIdentityGorm は指定されたgorm.DB接続でidentityGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewIdentityGorm(db *gorm.DB) *identityGorm {
	return &identityGorm{db: db}
}

// Create はアイデンティティをデータベースに追加します。
// 同じメールアドレスが既に存在する場合、usecase.ErrEmailTakenを返します。
// ユニーク制約違反の検出はGORMのTranslateErrorに依存します。
func (r *identityGorm) Create(ctx context.Context, id *entity.Identity) error {
	if err := r.db.WithContext(ctx).Create(id).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでアイデンティティを取得します。
// 存在しない場合、usecase.ErrIdentityNotFoundを返します。
func (r *identityGorm) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var id entity.Identity
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrIdentityNotFound
		}
		return nil, err
	}
	return &id, nil
}

// FindByID はIDでアイデンティティを取得します。
// 存在しない場合、usecase.ErrIdentityNotFoundを返します。
func (r *identityGorm) FindByID(ctx context.Context, idVal uint) (*entity.Identity, error) {
	var id entity.Identity
	if err := r.db.WithContext(ctx).Where("id = ?", idVal).First(&id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrIdentityNotFound
		}
		return nil, err
	}
	return &id, nil
}

// Update は既存のアイデンティティを保存します。
func (r *identityGorm) Update(ctx context.Context, id *entity.Identity) error {
	return r.db.WithContext(ctx).Save(id).Error
}
