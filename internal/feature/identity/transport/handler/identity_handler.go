// Package handler はidentityフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/identity/domain/entity"
	"jobboard_backend/internal/feature/identity/transport/http/dto"
	"jobboard_backend/internal/feature/identity/usecase"
	"jobboard_backend/internal/platform/authz"
	tokenmw "jobboard_backend/internal/platform/token"
)

// IdentityUsecase はアイデンティティ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type IdentityUsecase interface {
	// Register は新規アイデンティティを作成し、ベアラートークンを発行します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.Identity, string, error)
	// Authenticate はメールアドレスとパスワードを検証し、成功時にトークンを返します。
	Authenticate(ctx context.Context, email, password string) (*entity.Identity, string, error)
	// Update は自分自身のプロフィールを部分更新します。
	Update(ctx context.Context, actor *entity.Identity, targetID uint, in usecase.UpdateInput) (*entity.Identity, error)
}

// IdentityHandler はアイデンティティ操作のHTTPリクエストを処理します。
type IdentityHandler struct {
	identities IdentityUsecase
}

// NewIdentityHandler はIdentityHandlerの新しいインスタンスを生成します。
func NewIdentityHandler(identities IdentityUsecase) *IdentityHandler {
	return &IdentityHandler{identities: identities}
}

// Register はアイデンティティ登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - ロール固有のバリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時はトークンとアイデンティティ付きで201を返却
func (h *IdentityHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	in := usecase.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		Role:        entity.Role(req.Role),
		PhoneNumber: req.PhoneNumber,
		Skills:      req.Skills,
		Company:     req.Company,
	}
	id, token, err := h.identities.Register(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			slog.Warn("register failed: email taken", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrSkillsRequired),
			errors.Is(err, usecase.ErrCompanyRequired),
			errors.Is(err, usecase.ErrInvalidRole):
			slog.Warn("register failed: validation", "error", err, "email", req.Email)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("register failed", "error", err, "email", req.Email)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		}
		return
	}

	slog.Info("identity registered", "email", id.Email, "role", id.Role, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.AuthResponse{Token: token, Identity: toIdentityResponse(id)})
}

// Login はログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - 認証失敗時は401を返却
// - 認証成功時はトークンとアイデンティティ付きで200を返却
func (h *IdentityHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	id, token, err := h.identities.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際の失敗理由を公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	slog.Info("login successful", "email", id.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{Token: token, Identity: toIdentityResponse(id)})
}

// Update はプロフィール更新APIエンドポイントを処理します。
// 自分自身のプロフィールのみ更新できます。
func (h *IdentityHandler) Update(c *gin.Context) {
	actor := tokenmw.IdentityFromContext(c)

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid identity id"})
		return
	}

	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	in := usecase.UpdateInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Skills:      req.Skills,
		Company:     req.Company,
		Password:    req.Password,
	}
	id, err := h.identities.Update(c.Request.Context(), actor, uint(targetID), in)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, authz.ErrForbidden):
			slog.Warn("profile update forbidden", "actor", actorID(actor), "target", targetID)
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrIdentityNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("profile update failed", "error", err, "target", targetID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, toIdentityResponse(id))
}

// toIdentityResponse はエンティティを公開用レスポンスに変換します。
func toIdentityResponse(id *entity.Identity) api.IdentityResponse {
	return api.IdentityResponse{
		ID:          id.ID,
		FullName:    id.FullName,
		Email:       id.Email,
		Role:        string(id.Role),
		PhoneNumber: id.PhoneNumber,
		Skills:      id.Skills,
		Company:     id.Company,
	}
}

// actorID はログ用にactorのIDを返します。未認証の場合は0です。
func actorID(id *entity.Identity) uint {
	if id == nil {
		return 0
	}
	return id.ID
}
