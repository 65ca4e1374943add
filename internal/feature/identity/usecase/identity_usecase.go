// Package usecase はidentityフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/platform/authz"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// tokenBytes はトークン値の乱数バイト数です（hexで64文字）。
	tokenBytes = 32
)

// IdentityRepository はアイデンティティエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type IdentityRepository interface {
	// Create は新しいアイデンティティをストレージに永続化します。
	// 同じメールアドレスが既に存在する場合、ErrEmailTakenを返します。
	Create(ctx context.Context, id *entity.Identity) error

	// FindByEmail は指定されたメールアドレスに一致するアイデンティティを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// FindByID は指定されたIDに一致するアイデンティティを取得します。
	FindByID(ctx context.Context, id uint) (*entity.Identity, error)

	// Update は既存のアイデンティティを保存します。
	Update(ctx context.Context, id *entity.Identity) error
}

// TokenRepository はベアラートークンの永続化層を抽象化します。
type TokenRepository interface {
	// Create は新しいトークンを永続化します。
	// 同じアイデンティティのトークンが既に存在する場合、ErrTokenExistsを返します。
	Create(ctx context.Context, token *entity.Token) error

	// FindByID はトークン値でトークンを取得します。
	FindByID(ctx context.Context, id string) (*entity.Token, error)

	// FindByIdentityID はアイデンティティIDに紐づくトークンを取得します。
	FindByIdentityID(ctx context.Context, identityID uint) (*entity.Token, error)
}

// RegisterInput は新規登録の入力です。
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	Role        entity.Role
	PhoneNumber string
	Skills      string
	Company     string
}

// UpdateInput はプロフィール更新の入力です。空のフィールドは変更されません。
// Roleは登録後に変更できません。
type UpdateInput struct {
	FullName    string
	PhoneNumber string
	Skills      string
	Company     string
	Password    string
}

// IdentityUsecase はアイデンティティと認証のビジネスロジックを実装します。
type IdentityUsecase struct {
	identities IdentityRepository
	tokens     TokenRepository
}

// NewIdentityUsecase はIdentityUsecaseの新しいインスタンスを生成します。
func NewIdentityUsecase(identities IdentityRepository, tokens TokenRepository) *IdentityUsecase {
	return &IdentityUsecase{
		identities: identities,
		tokens:     tokens,
	}
}

// validateRegister は登録入力がロール固有の要件を満たしているかチェックします。
// job_seekerはskills、employerはcompanyが必須です。
func validateRegister(in RegisterInput) error {
	if !in.Role.Valid() {
		return ErrInvalidRole
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if in.Role == entity.RoleJobSeeker && in.Skills == "" {
		return ErrSkillsRequired
	}
	if in.Role == entity.RoleEmployer && in.Company == "" {
		return ErrCompanyRequired
	}
	return nil
}

// Register はハッシュ化されたパスワードで新規アイデンティティを作成し、
// ベアラートークンを発行します。
func (u *IdentityUsecase) Register(ctx context.Context, in RegisterInput) (*entity.Identity, string, error) {
	if err := validateRegister(in); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	id := &entity.Identity{
		Email:       in.Email,
		FullName:    in.FullName,
		Role:        in.Role,
		PhoneNumber: in.PhoneNumber,
		Skills:      in.Skills,
		Company:     in.Company,
		Password:    string(hashed),
		IsActive:    true,
	}
	if err := u.identities.Create(ctx, id); err != nil {
		return nil, "", err
	}

	token, err := u.issueToken(ctx, id.ID)
	if err != nil {
		return nil, "", err
	}
	return id, token, nil
}

// Authenticate はメールアドレスとパスワードを検証し、成功時にアイデンティティと
// ベアラートークンを返します。
// タイミング攻撃を防止するため、アイデンティティが存在しない場合でもbcrypt比較を実行します。
func (u *IdentityUsecase) Authenticate(ctx context.Context, email, password string) (*entity.Identity, string, error) {
	id, err := u.identities.FindByEmail(ctx, email)

	// アイデンティティが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = id.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// 未検出・パスワード不一致・無効化済みはすべて同じ汎用エラーを返す
	if err != nil || compareErr != nil || !id.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.issueToken(ctx, id.ID)
	if err != nil {
		return nil, "", err
	}
	return id, token, nil
}

// Update は自分自身のプロフィールを部分更新します。
// 他のアイデンティティの更新はポリシーにより拒否されます。
// パスワードは指定された場合のみ再ハッシュされます。
func (u *IdentityUsecase) Update(ctx context.Context, actor *entity.Identity, targetID uint, in UpdateInput) (*entity.Identity, error) {
	if err := authz.Can(actor, authz.ActionIdentityUpdate, authz.OwnedBy(targetID)); err != nil {
		return nil, err
	}

	target, err := u.identities.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		target.FullName = in.FullName
	}
	if in.PhoneNumber != "" {
		target.PhoneNumber = in.PhoneNumber
	}
	if in.Skills != "" {
		target.Skills = in.Skills
	}
	if in.Company != "" {
		target.Company = in.Company
	}
	if in.Password != "" {
		if len(in.Password) < minPasswordLength {
			return nil, fmt.Errorf("password must be at least %d characters long", minPasswordLength)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		target.Password = string(hashed)
	}

	if err := u.identities.Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// issueToken は既存トークンを返すか、存在しない場合は新規に発行します。
// トークンはアイデンティティと1:1で、ローテーションされません。
// 同時リクエストによる重複挿入はユニーク制約で検出し、既存トークンを再取得します。
func (u *IdentityUsecase) issueToken(ctx context.Context, identityID uint) (string, error) {
	existing, err := u.tokens.FindByIdentityID(ctx, identityID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, ErrTokenNotFound) {
		return "", err
	}

	value, err := newTokenValue()
	if err != nil {
		return "", err
	}
	token := &entity.Token{ID: value, IdentityID: identityID}
	if err := u.tokens.Create(ctx, token); err != nil {
		if errors.Is(err, ErrTokenExists) {
			// 並行リクエストが先に発行した場合はそちらを採用する
			existing, ferr := u.tokens.FindByIdentityID(ctx, identityID)
			if ferr != nil {
				return "", ferr
			}
			return existing.ID, nil
		}
		return "", err
	}
	return token.ID, nil
}

// newTokenValue は暗号学的乱数から64文字のhexトークン値を生成します。
func newTokenValue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
