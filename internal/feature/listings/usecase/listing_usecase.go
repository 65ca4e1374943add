package usecase

import (
	"context"

	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/feature/listings/domain/entity"
	"jobboard_backend/internal/platform/authz"
)

// ListingRepository abstracts the persistence layer for listings.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, l *entity.Listing) error

	// Save persists changes to an existing listing.
	Save(ctx context.Context, l *entity.Listing) error

	// FindByID retrieves a listing by ID, returning ErrListingNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.Listing, error)

	// Delete removes a listing by ID, returning ErrListingNotFound if absent.
	Delete(ctx context.Context, id uint) error

	// List retrieves listings matching the filter, newest first.
	List(ctx context.Context, f ListFilter) ([]entity.Listing, error)

	// Deactivate sets is_active to false, returning ErrListingNotFound if absent.
	Deactivate(ctx context.Context, id uint) error
}

// IdentityReader loads identity records so the owner's current company
// name can be re-derived on every write.
type IdentityReader interface {
	FindByID(ctx context.Context, id uint) (*identityentity.Identity, error)
}

// ListFilter narrows List results. Location and CompanyName are exact
// matches; Query is a free-text search across title, description,
// requirements, location and company name.
type ListFilter struct {
	Location    string
	CompanyName string
	Query       string
}

// CreateInput carries the client-settable listing fields.
// CompanyName is deliberately absent: it is always derived from the owner.
type CreateInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       string
}

// UpdateInput carries the client-settable fields for an update.
// Empty fields are left unchanged.
type UpdateInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	Salary       string
}

// ListingUsecase provides business logic for listing operations.
type ListingUsecase struct {
	listings   ListingRepository
	identities IdentityReader
}

// NewListingUsecase creates a new ListingUsecase with the given repositories.
func NewListingUsecase(listings ListingRepository, identities IdentityReader) *ListingUsecase {
	return &ListingUsecase{listings: listings, identities: identities}
}

// Create creates a listing owned by the acting employer. The company name
// is copied from the actor's company field; clients cannot set it.
func (u *ListingUsecase) Create(ctx context.Context, actor *identityentity.Identity, in CreateInput) (*entity.Listing, error) {
	if err := authz.Can(actor, authz.ActionListingCreate, nil); err != nil {
		return nil, err
	}

	l := &entity.Listing{
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     in.Location,
		Salary:       in.Salary,
		CompanyName:  actor.Company,
		EmployerID:   actor.ID,
		IsActive:     true,
	}
	if err := u.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get retrieves a single listing. Visible to any authenticated identity.
func (u *ListingUsecase) Get(ctx context.Context, actor *identityentity.Identity, id uint) (*entity.Listing, error) {
	if err := authz.Can(actor, authz.ActionListingRead, nil); err != nil {
		return nil, err
	}
	return u.listings.FindByID(ctx, id)
}

// List retrieves listings matching the filter, newest first.
// Visible to any authenticated identity.
func (u *ListingUsecase) List(ctx context.Context, actor *identityentity.Identity, f ListFilter) ([]entity.Listing, error) {
	if err := authz.Can(actor, authz.ActionListingRead, nil); err != nil {
		return nil, err
	}
	return u.listings.List(ctx, f)
}

// Update modifies a listing. Only the owning employer may update it.
// The company name is re-derived from the owner's current company on
// every write, so it always reflects the owner record, never a snapshot.
func (u *ListingUsecase) Update(ctx context.Context, actor *identityentity.Identity, id uint, in UpdateInput) (*entity.Listing, error) {
	l, err := u.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Can(actor, authz.ActionListingMutate, l); err != nil {
		return nil, err
	}

	if in.Title != "" {
		l.Title = in.Title
	}
	if in.Description != "" {
		l.Description = in.Description
	}
	if in.Requirements != "" {
		l.Requirements = in.Requirements
	}
	if in.Location != "" {
		l.Location = in.Location
	}
	if in.Salary != "" {
		l.Salary = in.Salary
	}

	owner, err := u.identities.FindByID(ctx, l.EmployerID)
	if err != nil {
		return nil, err
	}
	l.CompanyName = owner.Company

	if err := u.listings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a listing. Only the owning employer may delete it.
func (u *ListingUsecase) Delete(ctx context.Context, actor *identityentity.Identity, id uint) error {
	l, err := u.listings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Can(actor, authz.ActionListingMutate, l); err != nil {
		return err
	}
	return u.listings.Delete(ctx, id)
}

// Close deactivates a listing by ID. This is the administrative close
// operation used by the closejob command; it bypasses ownership checks
// and fails with ErrListingNotFound when the ID is absent.
func (u *ListingUsecase) Close(ctx context.Context, id uint) error {
	return u.listings.Deactivate(ctx, id)
}
