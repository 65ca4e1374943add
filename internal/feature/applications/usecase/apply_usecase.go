// Package usecase はapplicationsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard_backend/internal/feature/applications/domain/entity"
	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	listingentity "jobboard_backend/internal/feature/listings/domain/entity"
	listingusecase "jobboard_backend/internal/feature/listings/usecase"
	"jobboard_backend/internal/platform/authz"
)

// ApplicationRepository は応募エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ApplicationRepository interface {
	// Create は新しい応募を永続化します。
	// 同じ(listing, applicant)の応募が既に存在する場合、ErrDuplicateApplicationを返します。
	Create(ctx context.Context, a *entity.Application) error

	// Exists は指定の(listing, applicant)の応募が存在するかを返します。
	Exists(ctx context.Context, listingID, applicantID uint) (bool, error)

	// FindByApplicant は応募者の全応募を作成日時の降順で取得します。
	FindByApplicant(ctx context.Context, applicantID uint) ([]entity.Application, error)
}

// ListingReader は応募対象のリスティングを取得します。
type ListingReader interface {
	FindByID(ctx context.Context, id uint) (*listingentity.Listing, error)
}

// IdentityReader は通知先となる雇用主のアイデンティティを取得します。
type IdentityReader interface {
	FindByID(ctx context.Context, id uint) (*identityentity.Identity, error)
}

// Notifier は応募成立後の通知を抽象化します。実装はplatform/mailが提供します。
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// ApplyInput は応募の入力ペイロードです。
type ApplyInput struct {
	Resume      string
	CoverLetter string
}

// ApplyUsecase は応募ワークフローを実装します。
type ApplyUsecase struct {
	applications ApplicationRepository
	listings     ListingReader
	identities   IdentityReader
	notifier     Notifier
}

// NewApplyUsecase はApplyUsecaseの新しいインスタンスを生成します。
func NewApplyUsecase(applications ApplicationRepository, listings ListingReader, identities IdentityReader, notifier Notifier) *ApplyUsecase {
	return &ApplyUsecase{
		applications: applications,
		listings:     listings,
		identities:   identities,
		notifier:     notifier,
	}
}

// Apply はリスティングへの応募を処理します。
//  1. リスティングが存在し有効であることを確認（両ケースとも同一エラー）
//  2. 重複応募チェック（最終的な担保はDBのユニーク制約）
//  3. resume必須のペイロード検証
//  4. PENDINGステータスで応募を作成
//  5. 雇用主と応募者へ通知
//
// 通知の失敗は握りつぶさず、ワークフローの失敗として呼び出し元へ伝播します。
// 応募レコード自体は作成済みのまま残ります。
func (u *ApplyUsecase) Apply(ctx context.Context, actor *identityentity.Identity, listingID uint, in ApplyInput) (*entity.Application, error) {
	if err := authz.Can(actor, authz.ActionApply, nil); err != nil {
		return nil, err
	}

	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingusecase.ErrListingNotFound) {
			return nil, ErrListingNotFoundOrInactive
		}
		// ストレージ障害はクライアントエラーに変換しない
		return nil, err
	}
	if !listing.IsActive {
		// 未存在と無効は呼び出し元に区別させない
		return nil, ErrListingNotFoundOrInactive
	}

	exists, err := u.applications.Exists(ctx, listingID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	if in.Resume == "" {
		return nil, ErrResumeRequired
	}

	a := &entity.Application{
		ListingID:   listingID,
		ApplicantID: actor.ID,
		Resume:      in.Resume,
		CoverLetter: in.CoverLetter,
		Status:      entity.StatusPending,
	}
	// 同時応募はここでユニーク制約違反となり、ErrDuplicateApplicationに翻訳される
	if err := u.applications.Create(ctx, a); err != nil {
		return nil, err
	}

	if err := u.notify(ctx, listing, actor); err != nil {
		return nil, fmt.Errorf("application created but notification failed: %w", err)
	}
	return a, nil
}

// ListForApplicant は自分の応募一覧を作成日時の降順で返します。
func (u *ApplyUsecase) ListForApplicant(ctx context.Context, actor *identityentity.Identity) ([]entity.Application, error) {
	if actor == nil {
		return nil, authz.ErrUnauthenticated
	}
	return u.applications.FindByApplicant(ctx, actor.ID)
}

// notify は雇用主と応募者の双方へテンプレート化された通知を送信します。
func (u *ApplyUsecase) notify(ctx context.Context, listing *listingentity.Listing, applicant *identityentity.Identity) error {
	employer, err := u.identities.FindByID(ctx, listing.EmployerID)
	if err != nil {
		return err
	}

	if err := u.notifier.Notify(ctx,
		employer.Email,
		fmt.Sprintf("New Application for %s", listing.Title),
		fmt.Sprintf("%s has applied for your job posting: %s.", applicant.FullName, listing.Title),
	); err != nil {
		return err
	}

	return u.notifier.Notify(ctx,
		applicant.Email,
		fmt.Sprintf("Application Received: %s", listing.Title),
		fmt.Sprintf("Your application for %s has been submitted successfully.", listing.Title),
	)
}

// IsClientError はワークフローのエラーがクライアント起因かどうかを返します。
func IsClientError(err error) bool {
	return errors.Is(err, ErrListingNotFoundOrInactive) ||
		errors.Is(err, ErrDuplicateApplication) ||
		errors.Is(err, ErrResumeRequired)
}
