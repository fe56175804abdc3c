package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/domain"
	"article-api/internal/repository"
)

func TestPostgresCategoryRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	categoryRepo := repository.NewPostgresCategoryRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and find by id", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories")

		category := &domain.Category{Name: "Backend", Description: "server side"}
		require.NoError(t, categoryRepo.Create(ctx, category))
		assert.NotZero(t, category.ID)
		assert.False(t, category.CreatedAt.IsZero())

		found, err := categoryRepo.FindByID(ctx, category.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Backend", found.Name)
		assert.Equal(t, "server side", found.Description)
	})

	t.Run("missing id returns nil without error", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories")

		found, err := categoryRepo.FindByID(ctx, 12345)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find all returns categories ordered by id", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories")

		for _, name := range []string{"Backend", "Frontend", "DevOps"} {
			require.NoError(t, categoryRepo.Create(ctx, &domain.Category{Name: name}))
		}

		categories, err := categoryRepo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Backend", categories[0].Name)
		assert.Equal(t, "DevOps", categories[2].Name)
	})

	t.Run("update persists changes", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories")

		category := &domain.Category{Name: "Backend"}
		require.NoError(t, categoryRepo.Create(ctx, category))

		category.Name = "Platform"
		category.Description = "infra and tooling"
		require.NoError(t, categoryRepo.Update(ctx, category))

		found, err := categoryRepo.FindByID(ctx, category.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Platform", found.Name)
		assert.Equal(t, "infra and tooling", found.Description)
	})

	t.Run("exists by id and delete", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories")

		category := &domain.Category{Name: "Backend"}
		require.NoError(t, categoryRepo.Create(ctx, category))

		exists, err := categoryRepo.ExistsByID(ctx, category.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, categoryRepo.DeleteByID(ctx, category.ID))

		exists, err = categoryRepo.ExistsByID(ctx, category.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestPostgresCategoryRepository_ExistsByName(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	categoryRepo := repository.NewPostgresCategoryRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "articles", "categories")
	require.NoError(t, categoryRepo.Create(ctx, &domain.Category{Name: "Backend"}))

	exists, err := categoryRepo.ExistsByName(ctx, "Backend")
	require.NoError(t, err)
	assert.True(t, exists)

	// The match is exact, not case-insensitive.
	exists, err = categoryRepo.ExistsByName(ctx, "backend")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = categoryRepo.ExistsByName(ctx, "Frontend")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostgresCategoryRepository_DeleteLeavesArticleReferences(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	categoryRepo := repository.NewPostgresCategoryRepository(testDB.Pool)
	articleRepo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "articles", "categories")

	category := &domain.Category{Name: "Backend"}
	require.NoError(t, categoryRepo.Create(ctx, category))

	article := &domain.Article{Title: "orphan to be", CategoryID: &category.ID, Status: domain.StatusPublished}
	require.NoError(t, articleRepo.Create(ctx, article))

	require.NoError(t, categoryRepo.DeleteByID(ctx, category.ID))

	// The article keeps its category id; only the joined name disappears.
	found, err := articleRepo.FindByID(ctx, article.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.CategoryID)
	assert.Equal(t, category.ID, *found.CategoryID)
	assert.Nil(t, found.CategoryName)
}
