// Package handler provides HTTP handlers for the savedjobs feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/feature/savedjobs/domain/entity"
	"jobboard_backend/internal/feature/savedjobs/transport/http/dto"
	"jobboard_backend/internal/feature/savedjobs/usecase"
	"jobboard_backend/internal/platform/authz"
	tokenmw "jobboard_backend/internal/platform/token"
)

// SavedJobUsecase defines the saved-job operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SavedJobUsecase interface {
	Save(ctx context.Context, actor *identityentity.Identity, listingID uint) (*entity.SavedJob, error)
	Unsave(ctx context.Context, actor *identityentity.Identity, listingID uint) error
	ListForIdentity(ctx context.Context, actor *identityentity.Identity) ([]entity.SavedJob, error)
}

// SavedJobHandler handles HTTP requests for the saved-job workflow.
type SavedJobHandler struct {
	saved SavedJobUsecase
}

// NewSavedJobHandler creates a new SavedJobHandler.
func NewSavedJobHandler(saved SavedJobUsecase) *SavedJobHandler {
	return &SavedJobHandler{saved: saved}
}

// Save handles POST /jobs/save/:id. Job seekers only.
func (h *SavedJobHandler) Save(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	listingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
		return
	}

	s, err := h.saved.Save(c.Request.Context(), actor, uint(listingID))
	if err != nil {
		writeSavedJobError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSavedJobItem(s))
}

// Unsave handles DELETE /jobs/save/:id, removing the requester's bookmark.
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	listingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job id"})
		return
	}

	if err := h.saved.Unsave(c.Request.Context(), actor, uint(listingID)); err != nil {
		writeSavedJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "job unsaved"})
}

// ListSaved handles GET /jobs/saved, returning the requester's bookmarks
// newest first.
func (h *SavedJobHandler) ListSaved(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	saved, err := h.saved.ListForIdentity(c.Request.Context(), actor)
	if err != nil {
		writeSavedJobError(c, err)
		return
	}

	out := make([]dto.SavedJobItem, 0, len(saved))
	for i := range saved {
		out = append(out, toSavedJobItem(&saved[i]))
	}
	c.JSON(http.StatusOK, out)
}

// writeSavedJobError maps usecase errors to HTTP status codes.
func writeSavedJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrListingNotFound), errors.Is(err, usecase.ErrNotSaved):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrAlreadySaved):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("saved-job operation failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

func toSavedJobItem(s *entity.SavedJob) dto.SavedJobItem {
	return dto.SavedJobItem{
		ID:        s.ID,
		ListingID: s.ListingID,
		SavedAt:   s.SavedAt,
	}
}
