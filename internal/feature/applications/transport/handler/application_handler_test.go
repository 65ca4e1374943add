package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/usecase"
	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/platform/authz"
	tokenmw "jobboard_backend/internal/platform/token"
)

// mockApplyUsecase is a mock implementation of the ApplyUsecase interface.
type mockApplyUsecase struct {
	ApplyFunc            func(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error)
	ListForApplicantFunc func(ctx context.Context, actor *identityentity.Identity) ([]entity.Application, error)
}

func (m *mockApplyUsecase) Apply(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error) {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, actor, listingID, in)
	}
	return nil, usecase.ErrListingNotFoundOrInactive
}

func (m *mockApplyUsecase) ListForApplicant(ctx context.Context, actor *identityentity.Identity) ([]entity.Application, error) {
	if m.ListForApplicantFunc != nil {
		return m.ListForApplicantFunc(ctx, actor)
	}
	return nil, nil
}

func seekerIdentity() *identityentity.Identity {
	return &identityentity.Identity{
		ID:    8,
		Email: "seeker@example.com",
		Role:  identityentity.RoleJobSeeker,
	}
}

// newRouter wires the handler behind a stub that injects the actor,
// mirroring what the auth middleware does in production.
func newRouter(h *ApplicationHandler, actor *identityentity.Identity) *gin.Engine {
	router := gin.New()
	inject := func(c *gin.Context) {
		if actor != nil {
			c.Set(tokenmw.ContextIdentity, actor)
		}
	}
	router.POST("/jobs/apply/:id", inject, h.Apply)
	router.GET("/jobs/applied", inject, h.ListApplied)
	return router
}

func TestApplicationHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		requestBody    gin.H
		mockFunc       func(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error)
		expectedStatus int
	}{
		{
			name:        "success: application submitted",
			target:      "/jobs/apply/3",
			requestBody: gin.H{"resume": "resume.pdf", "cover_letter": "Dear hiring manager"},
			mockFunc: func(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error) {
				return &entity.Application{
					ID: 1, ListingID: listingID, ApplicantID: actor.ID,
					Resume: in.Resume, CoverLetter: in.CoverLetter,
					Status: entity.StatusPending,
				}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: non-numeric job id",
			target:         "/jobs/apply/abc",
			requestBody:    gin.H{"resume": "resume.pdf"},
			mockFunc:       nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing resume rejected by binding",
			target:         "/jobs/apply/3",
			requestBody:    gin.H{"cover_letter": "no resume attached"},
			mockFunc:       nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: listing missing or closed",
			target:      "/jobs/apply/999",
			requestBody: gin.H{"resume": "resume.pdf"},
			mockFunc: func(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error) {
				return nil, usecase.ErrListingNotFoundOrInactive
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "failure: duplicate application",
			target:      "/jobs/apply/3",
			requestBody: gin.H{"resume": "resume.pdf"},
			mockFunc: func(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error) {
				return nil, usecase.ErrDuplicateApplication
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: employer forbidden",
			target:      "/jobs/apply/3",
			requestBody: gin.H{"resume": "resume.pdf"},
			mockFunc: func(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error) {
				return nil, authz.ErrForbidden
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "failure: notification delivery failed",
			target:      "/jobs/apply/3",
			requestBody: gin.H{"resume": "resume.pdf"},
			mockFunc: func(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error) {
				return nil, errors.New("application created but notification failed: smtp: connection refused")
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewApplicationHandler(&mockApplyUsecase{ApplyFunc: tt.mockFunc})
			router := newRouter(handler, seekerIdentity())

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, tt.target, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
			}
		})
	}
}

func TestApplicationHandler_ListApplied(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns own applications", func(t *testing.T) {
		mockUC := &mockApplyUsecase{
			ListForApplicantFunc: func(ctx context.Context, actor *identityentity.Identity) ([]entity.Application, error) {
				return []entity.Application{
					{ID: 2, ListingID: 4, ApplicantID: actor.ID, Resume: "r", Status: entity.StatusReviewed, ListingTitle: "Data Engineer"},
					{ID: 1, ListingID: 3, ApplicantID: actor.ID, Resume: "r", Status: entity.StatusPending, ListingTitle: "Backend Engineer"},
				}, nil
			},
		}
		router := newRouter(NewApplicationHandler(mockUC), seekerIdentity())

		req, _ := http.NewRequest(http.MethodGet, "/jobs/applied", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var items []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 2)
		assert.Equal(t, "REVIEWED", items[0]["status"])
		assert.Equal(t, "Data Engineer", items[0]["job_title"])
	})

	t.Run("empty result is an empty JSON array", func(t *testing.T) {
		router := newRouter(NewApplicationHandler(&mockApplyUsecase{}), seekerIdentity())

		req, _ := http.NewRequest(http.MethodGet, "/jobs/applied", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
