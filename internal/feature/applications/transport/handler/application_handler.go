// Package handler provides HTTP handlers for the applications feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/transport/http/dto"
	"jobboard_backend/internal/feature/applications/usecase"
	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/platform/authz"
	tokenmw "jobboard_backend/internal/platform/token"
)

// ApplyUsecase defines the application workflow operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ApplyUsecase interface {
	Apply(ctx context.Context, actor *identityentity.Identity, listingID uint, in usecase.ApplyInput) (*entity.Application, error)
	ListForApplicant(ctx context.Context, actor *identityentity.Identity) ([]entity.Application, error)
}

// ApplicationHandler handles HTTP requests for the application workflow.
type ApplicationHandler struct {
	applications ApplyUsecase
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applications ApplyUsecase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Apply handles POST /jobs/apply/:id. Job seekers only.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	listingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
		return
	}

	var req dto.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	a, err := h.applications.Apply(c.Request.Context(), actor, uint(listingID), usecase.ApplyInput{
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, authz.ErrForbidden):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrListingNotFoundOrInactive):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrDuplicateApplication), errors.Is(err, usecase.ErrResumeRequired):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			// Covers notification delivery failures: the application row
			// exists but the workflow did not complete.
			slog.Error("apply failed", "error", err, "listing_id", listingID)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "application could not be completed"})
		}
		return
	}

	slog.Info("application submitted", "application_id", a.ID, "listing_id", a.ListingID, "applicant_id", a.ApplicantID)
	c.JSON(http.StatusCreated, toApplicationItem(a))
}

// ListApplied handles GET /jobs/applied, returning the requester's own
// applications newest first.
func (h *ApplicationHandler) ListApplied(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	applications, err := h.applications.ListForApplicant(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, authz.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("list applications failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]dto.ApplicationItem, 0, len(applications))
	for i := range applications {
		out = append(out, toApplicationItem(&applications[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toApplicationItem(a *entity.Application) dto.ApplicationItem {
	return dto.ApplicationItem{
		ID:          a.ID,
		ListingID:   a.ListingID,
		JobTitle:    a.ListingTitle,
		Resume:      a.Resume,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}
