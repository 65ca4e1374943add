package router

import (
	applicationhandler "jobboard_backend/internal/feature/applications/transport/handler"
	identityhandler "jobboard_backend/internal/feature/identity/transport/handler"
	listinghandler "jobboard_backend/internal/feature/listings/transport/handler"
	savedjobhandler "jobboard_backend/internal/feature/savedjobs/transport/handler"
	"jobboard_backend/internal/platform/http/handler"
	tokenmw "jobboard_backend/internal/platform/token"

	"github.com/gin-gonic/gin"
)

func NewRouter(
	identities *identityhandler.IdentityHandler,
	listings *listinghandler.ListingHandler,
	applications *applicationhandler.ApplicationHandler,
	saved *savedjobhandler.SavedJobHandler,
	tokens tokenmw.Resolver,
	identityReader tokenmw.IdentityReader,
) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規アイデンティティ登録（トークンも発行）
	r.POST("/user-profile", identities.Register)
	// ログイン（ベアラートークン発行）
	r.POST("/login", identities.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// tokenmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにベアラートークンが必要になる
	auth.Use(tokenmw.AuthRequired(tokens, identityReader))
	{
		// プロフィール更新（本人のみ）
		auth.PUT("/user-profile/:id", identities.Update)

		// リスティングCRUD
		auth.GET("/job-listings", listings.List)
		auth.POST("/job-listings", listings.Create)
		auth.GET("/job-listings/:id", listings.Get)
		auth.PUT("/job-listings/:id", listings.Update)
		auth.DELETE("/job-listings/:id", listings.Delete)

		// 応募ワークフロー
		auth.POST("/jobs/apply/:id", applications.Apply)
		auth.GET("/jobs/applied", applications.ListApplied)

		// 保存（ブックマーク）ワークフロー
		auth.POST("/jobs/save/:id", saved.Save)
		auth.DELETE("/jobs/save/:id", saved.Unsave)
		auth.GET("/jobs/saved", saved.ListSaved)
	}

	return r
}
