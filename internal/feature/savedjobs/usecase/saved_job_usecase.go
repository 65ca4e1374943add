package usecase

import (
	"context"
	"errors"
	"time"

	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	listingentity "jobboard_backend/internal/feature/listings/domain/entity"
	listingusecase "jobboard_backend/internal/feature/listings/usecase"
	"jobboard_backend/internal/feature/savedjobs/domain/entity"
	"jobboard_backend/internal/platform/authz"
)

// SavedJobRepository abstracts the persistence layer for saved jobs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SavedJobRepository interface {
	// Create persists a new bookmark, returning ErrAlreadySaved when one
	// already exists for the (listing, identity) pair.
	Create(ctx context.Context, s *entity.SavedJob) error

	// Exists reports whether a bookmark exists for the pair.
	Exists(ctx context.Context, listingID, identityID uint) (bool, error)

	// Delete removes the bookmark for the pair, returning ErrNotSaved if absent.
	Delete(ctx context.Context, listingID, identityID uint) error

	// FindByIdentity retrieves the identity's bookmarks, newest first.
	FindByIdentity(ctx context.Context, identityID uint) ([]entity.SavedJob, error)
}

// ListingReader resolves the listing being bookmarked.
type ListingReader interface {
	FindByID(ctx context.Context, id uint) (*listingentity.Listing, error)
}

// SavedJobUsecase provides business logic for the saved-job workflow.
type SavedJobUsecase struct {
	saved    SavedJobRepository
	listings ListingReader
}

// NewSavedJobUsecase creates a new SavedJobUsecase with the given repositories.
func NewSavedJobUsecase(saved SavedJobRepository, listings ListingReader) *SavedJobUsecase {
	return &SavedJobUsecase{saved: saved, listings: listings}
}

// Save bookmarks a listing for the acting job seeker. The listing must
// exist, but unlike applying, an inactive listing may still be saved.
// Duplicate saves fail with ErrAlreadySaved; concurrent saves are caught
// by the unique constraint and translated to the same error.
func (u *SavedJobUsecase) Save(ctx context.Context, actor *identityentity.Identity, listingID uint) (*entity.SavedJob, error) {
	if err := authz.Can(actor, authz.ActionSave, nil); err != nil {
		return nil, err
	}

	if _, err := u.listings.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, listingusecase.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		// Storage failures stay infrastructure errors, never a client 404.
		return nil, err
	}

	exists, err := u.saved.Exists(ctx, listingID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySaved
	}

	s := &entity.SavedJob{
		ListingID:  listingID,
		IdentityID: actor.ID,
		SavedAt:    time.Now(),
	}
	if err := u.saved.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Unsave removes the actor's bookmark for the listing.
func (u *SavedJobUsecase) Unsave(ctx context.Context, actor *identityentity.Identity, listingID uint) error {
	if err := authz.Can(actor, authz.ActionSave, nil); err != nil {
		return err
	}
	return u.saved.Delete(ctx, listingID, actor.ID)
}

// ListForIdentity returns the actor's bookmarks, newest first.
func (u *SavedJobUsecase) ListForIdentity(ctx context.Context, actor *identityentity.Identity) ([]entity.SavedJob, error) {
	if actor == nil {
		return nil, authz.ErrUnauthenticated
	}
	return u.saved.FindByIdentity(ctx, actor.ID)
}
