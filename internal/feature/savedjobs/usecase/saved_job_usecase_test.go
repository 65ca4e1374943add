package usecase

import (
	"context"
	"errors"
	"testing"

	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	listingentity "jobboard_backend/internal/feature/listings/domain/entity"
	listingusecase "jobboard_backend/internal/feature/listings/usecase"
	"jobboard_backend/internal/feature/savedjobs/domain/entity"
	"jobboard_backend/internal/platform/authz"
)

// mockSavedJobRepository is a mock implementation of the SavedJobRepository interface.
type mockSavedJobRepository struct {
	CreateFunc         func(ctx context.Context, s *entity.SavedJob) error
	ExistsFunc         func(ctx context.Context, listingID, identityID uint) (bool, error)
	DeleteFunc         func(ctx context.Context, listingID, identityID uint) error
	FindByIdentityFunc func(ctx context.Context, identityID uint) ([]entity.SavedJob, error)
}

func (m *mockSavedJobRepository) Create(ctx context.Context, s *entity.SavedJob) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	s.ID = 1
	return nil
}

func (m *mockSavedJobRepository) Exists(ctx context.Context, listingID, identityID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, listingID, identityID)
	}
	return false, nil
}

func (m *mockSavedJobRepository) Delete(ctx context.Context, listingID, identityID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, listingID, identityID)
	}
	return nil
}

func (m *mockSavedJobRepository) FindByIdentity(ctx context.Context, identityID uint) ([]entity.SavedJob, error) {
	if m.FindByIdentityFunc != nil {
		return m.FindByIdentityFunc(ctx, identityID)
	}
	return nil, nil
}

// mockListingReader is a mock implementation of the ListingReader interface.
type mockListingReader struct {
	FindByIDFunc func(ctx context.Context, id uint) (*listingentity.Listing, error)
}

func (m *mockListingReader) FindByID(ctx context.Context, id uint) (*listingentity.Listing, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, listingusecase.ErrListingNotFound
}

func seeker() *identityentity.Identity {
	return &identityentity.Identity{
		ID:    8,
		Email: "seeker@example.com",
		Role:  identityentity.RoleJobSeeker,
	}
}

func TestSavedJobUsecase_Save(t *testing.T) {
	foundListing := &mockListingReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*listingentity.Listing, error) {
			return &listingentity.Listing{ID: id, Title: "t", EmployerID: 7, IsActive: true}, nil
		},
	}

	t.Run("job seeker saves a listing", func(t *testing.T) {
		uc := NewSavedJobUsecase(&mockSavedJobRepository{}, foundListing)

		s, err := uc.Save(context.Background(), seeker(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ListingID != 3 || s.IdentityID != 8 {
			t.Errorf("wrong ownership: listing=%d identity=%d", s.ListingID, s.IdentityID)
		}
		if s.SavedAt.IsZero() {
			t.Errorf("SavedAt must be set")
		}
	})

	t.Run("inactive listing can still be saved", func(t *testing.T) {
		closed := &mockListingReader{
			FindByIDFunc: func(ctx context.Context, id uint) (*listingentity.Listing, error) {
				return &listingentity.Listing{ID: id, EmployerID: 7, IsActive: false}, nil
			},
		}
		uc := NewSavedJobUsecase(&mockSavedJobRepository{}, closed)

		if _, err := uc.Save(context.Background(), seeker(), 3); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing listing", func(t *testing.T) {
		uc := NewSavedJobUsecase(&mockSavedJobRepository{}, &mockListingReader{})

		_, err := uc.Save(context.Background(), seeker(), 999)
		if !errors.Is(err, ErrListingNotFound) {
			t.Errorf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("listing lookup infrastructure failure is not a client error", func(t *testing.T) {
		storeErr := errors.New("driver: bad connection")
		failing := &mockListingReader{
			FindByIDFunc: func(ctx context.Context, id uint) (*listingentity.Listing, error) {
				return nil, storeErr
			},
		}
		uc := NewSavedJobUsecase(&mockSavedJobRepository{}, failing)

		_, err := uc.Save(context.Background(), seeker(), 3)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected the storage error to propagate, got %v", err)
		}
		if errors.Is(err, ErrListingNotFound) {
			t.Errorf("storage error must not collapse into ErrListingNotFound")
		}
	})

	t.Run("duplicate save", func(t *testing.T) {
		repo := &mockSavedJobRepository{
			ExistsFunc: func(ctx context.Context, listingID, identityID uint) (bool, error) {
				return true, nil
			},
		}
		uc := NewSavedJobUsecase(repo, foundListing)

		_, err := uc.Save(context.Background(), seeker(), 3)
		if !errors.Is(err, ErrAlreadySaved) {
			t.Errorf("expected ErrAlreadySaved, got %v", err)
		}
	})

	t.Run("concurrent duplicate caught by the repository", func(t *testing.T) {
		repo := &mockSavedJobRepository{
			CreateFunc: func(ctx context.Context, s *entity.SavedJob) error {
				return ErrAlreadySaved
			},
		}
		uc := NewSavedJobUsecase(repo, foundListing)

		_, err := uc.Save(context.Background(), seeker(), 3)
		if !errors.Is(err, ErrAlreadySaved) {
			t.Errorf("expected ErrAlreadySaved, got %v", err)
		}
	})

	t.Run("employer cannot save", func(t *testing.T) {
		uc := NewSavedJobUsecase(&mockSavedJobRepository{}, foundListing)

		emp := &identityentity.Identity{ID: 7, Role: identityentity.RoleEmployer}
		_, err := uc.Save(context.Background(), emp, 3)
		if !errors.Is(err, authz.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestSavedJobUsecase_Unsave(t *testing.T) {
	t.Run("removes own bookmark", func(t *testing.T) {
		var gotListing, gotIdentity uint
		repo := &mockSavedJobRepository{
			DeleteFunc: func(ctx context.Context, listingID, identityID uint) error {
				gotListing, gotIdentity = listingID, identityID
				return nil
			},
		}
		uc := NewSavedJobUsecase(repo, &mockListingReader{})

		if err := uc.Unsave(context.Background(), seeker(), 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotListing != 3 || gotIdentity != 8 {
			t.Errorf("deleted wrong pair: listing=%d identity=%d", gotListing, gotIdentity)
		}
	})

	t.Run("not saved", func(t *testing.T) {
		repo := &mockSavedJobRepository{
			DeleteFunc: func(ctx context.Context, listingID, identityID uint) error {
				return ErrNotSaved
			},
		}
		uc := NewSavedJobUsecase(repo, &mockListingReader{})

		if err := uc.Unsave(context.Background(), seeker(), 3); !errors.Is(err, ErrNotSaved) {
			t.Errorf("expected ErrNotSaved, got %v", err)
		}
	})
}

func TestSavedJobUsecase_ListForIdentity(t *testing.T) {
	t.Run("returns own bookmarks", func(t *testing.T) {
		repo := &mockSavedJobRepository{
			FindByIdentityFunc: func(ctx context.Context, identityID uint) ([]entity.SavedJob, error) {
				if identityID != 8 {
					t.Errorf("queried wrong identity: %d", identityID)
				}
				return []entity.SavedJob{{ID: 2}, {ID: 1}}, nil
			},
		}
		uc := NewSavedJobUsecase(repo, &mockListingReader{})

		saved, err := uc.ListForIdentity(context.Background(), seeker())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 2 {
			t.Errorf("expected 2 bookmarks, got %d", len(saved))
		}
	})

	t.Run("anonymous actor is unauthenticated", func(t *testing.T) {
		uc := NewSavedJobUsecase(&mockSavedJobRepository{}, &mockListingReader{})

		_, err := uc.ListForIdentity(context.Background(), nil)
		if !errors.Is(err, authz.ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}
