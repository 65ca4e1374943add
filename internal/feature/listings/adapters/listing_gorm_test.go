package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/listings/domain/entity"
	"jobboard_backend/internal/feature/listings/usecase"
)

// setupTestDB はインメモリSQLiteを使用したテスト用DBをセットアップします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.Listing{}))
	return db
}

func seedListing(t *testing.T, db *gorm.DB, l *entity.Listing) *entity.Listing {
	t.Helper()
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestListingGorm_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingGorm(db)
	ctx := context.Background()

	l := &entity.Listing{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Location:    "Tokyo",
		CompanyName: "Acme",
		EmployerID:  1,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(ctx, l))
	assert.NotZero(t, l.ID)

	got, err := repo.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.True(t, got.IsActive)
}

func TestListingGorm_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingGorm(db)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrListingNotFound)
}

func TestListingGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingGorm(db)
	ctx := context.Background()

	l := seedListing(t, db, &entity.Listing{Title: "t", Description: "d", EmployerID: 1, IsActive: true})

	require.NoError(t, repo.Delete(ctx, l.ID))

	_, err := repo.FindByID(ctx, l.ID)
	assert.ErrorIs(t, err, usecase.ErrListingNotFound)

	// 二重削除はNotFound
	assert.ErrorIs(t, repo.Delete(ctx, l.ID), usecase.ErrListingNotFound)
}

func TestListingGorm_Deactivate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingGorm(db)
	ctx := context.Background()

	l := seedListing(t, db, &entity.Listing{Title: "t", Description: "d", EmployerID: 1, IsActive: true})

	require.NoError(t, repo.Deactivate(ctx, l.ID))

	got, err := repo.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, repo.Deactivate(ctx, 999), usecase.ErrListingNotFound)
}

func TestListingGorm_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingGorm(db)
	ctx := context.Background()

	base := time.Now()
	seedListing(t, db, &entity.Listing{
		Title: "Go Developer", Description: "gRPC services", Location: "Tokyo",
		CompanyName: "Acme", EmployerID: 1, IsActive: true, CreatedAt: base.Add(-2 * time.Hour),
	})
	seedListing(t, db, &entity.Listing{
		Title: "Data Engineer", Description: "Pipelines", Location: "Osaka",
		CompanyName: "Globex", EmployerID: 2, IsActive: true, CreatedAt: base.Add(-1 * time.Hour),
	})
	seedListing(t, db, &entity.Listing{
		Title: "SRE", Description: "Keep Go services running", Location: "Tokyo",
		CompanyName: "Globex", EmployerID: 2, IsActive: false, CreatedAt: base,
	})

	t.Run("no filter returns all newest first", func(t *testing.T) {
		got, err := repo.List(ctx, usecase.ListFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "SRE", got[0].Title)
		assert.Equal(t, "Go Developer", got[2].Title)
	})

	t.Run("location exact match", func(t *testing.T) {
		got, err := repo.List(ctx, usecase.ListFilter{Location: "Tokyo"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("company name exact match", func(t *testing.T) {
		got, err := repo.List(ctx, usecase.ListFilter{CompanyName: "Acme"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Go Developer", got[0].Title)
	})

	t.Run("search matches title and description", func(t *testing.T) {
		got, err := repo.List(ctx, usecase.ListFilter{Query: "Go"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("search ignores case", func(t *testing.T) {
		got, err := repo.List(ctx, usecase.ListFilter{Query: "gO dEvElOpEr"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Go Developer", got[0].Title)
	})

	t.Run("filters combine", func(t *testing.T) {
		got, err := repo.List(ctx, usecase.ListFilter{Location: "Tokyo", CompanyName: "Globex"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SRE", got[0].Title)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		got, err := repo.List(ctx, usecase.ListFilter{Location: "Nagoya"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
