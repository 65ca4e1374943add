// Package handler provides HTTP handlers for the listings feature.
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
	"jobboard_backend/internal/feature/listings/domain/entity"
	"jobboard_backend/internal/feature/listings/transport/http/dto"
	"jobboard_backend/internal/feature/listings/usecase"
	"jobboard_backend/internal/platform/authz"
	tokenmw "jobboard_backend/internal/platform/token"
)

// ListingUsecase defines the listing operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ListingUsecase interface {
	Create(ctx context.Context, actor *identityentity.Identity, in usecase.CreateInput) (*entity.Listing, error)
	Get(ctx context.Context, actor *identityentity.Identity, id uint) (*entity.Listing, error)
	List(ctx context.Context, actor *identityentity.Identity, f usecase.ListFilter) ([]entity.Listing, error)
	Update(ctx context.Context, actor *identityentity.Identity, id uint, in usecase.UpdateInput) (*entity.Listing, error)
	Delete(ctx context.Context, actor *identityentity.Identity, id uint) error
}

// ListingHandler handles HTTP requests for listing operations.
type ListingHandler struct {
	listings ListingUsecase
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listings ListingUsecase) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// Create handles POST /job-listings. Employer only; the company name
// comes from the owner's profile regardless of the payload.
func (h *ListingHandler) Create(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	var req dto.CreateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	l, err := h.listings.Create(c.Request.Context(), actor, usecase.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       req.Salary,
	})
	if err != nil {
		writeListingError(c, err)
		return
	}

	slog.Info("listing created", "listing_id", l.ID, "employer_id", l.EmployerID)
	c.JSON(http.StatusCreated, toListingItem(l))
}

// Get handles GET /job-listings/:id for any authenticated identity.
func (h *ListingHandler) Get(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return
	}

	l, err := h.listings.Get(c.Request.Context(), actor, id)
	if err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListingItem(l))
}

// List handles GET /job-listings with optional location, company_name
// and free-text search query parameters.
func (h *ListingHandler) List(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	f := usecase.ListFilter{
		Location:    c.Query("location"),
		CompanyName: c.Query("company_name"),
		Query:       c.Query("search"),
	}
	listings, err := h.listings.List(c.Request.Context(), actor, f)
	if err != nil {
		writeListingError(c, err)
		return
	}

	out := make([]dto.ListingItem, 0, len(listings))
	for i := range listings {
		out = append(out, toListingItem(&listings[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PUT /job-listings/:id. Owner only.
func (h *ListingHandler) Update(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.UpdateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	l, err := h.listings.Update(c.Request.Context(), actor, id, usecase.UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       req.Salary,
	})
	if err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListingItem(l))
}

// Delete handles DELETE /job-listings/:id. Owner only.
func (h *ListingHandler) Delete(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return
	}

	if err := h.listings.Delete(c.Request.Context(), actor, id); err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "listing deleted"})
}

// writeListingError maps usecase errors to HTTP status codes.
func writeListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrListingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("listing operation failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func toListingItem(l *entity.Listing) dto.ListingItem {
	return dto.ListingItem{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Requirements: l.Requirements,
		Location:     l.Location,
		Salary:       l.Salary,
		CompanyName:  l.CompanyName,
		EmployerID:   l.EmployerID,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
