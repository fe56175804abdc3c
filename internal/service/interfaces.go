package service

import (
	"context"

	"article-api/internal/domain"
)

// ArticleServiceInterface defines the article operations exposed to the API
// layer. Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List returns one page of articles matching the filter.
	List(ctx context.Context, filter domain.ArticleFilter) (domain.PageResult[domain.Article], error)
	// GetByID returns the article and increments its view count.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	// Create stores a new article.
	Create(ctx context.Context, input domain.ArticleInput) (*domain.Article, error)
	// Update replaces the article's mutable fields.
	Update(ctx context.Context, id int64, input domain.ArticleInput) (*domain.Article, error)
	// Delete removes the article.
	Delete(ctx context.Context, id int64) error
}

// CategoryServiceInterface defines the category operations exposed to the API
// layer. Used for dependency injection and mocking in tests.
type CategoryServiceInterface interface {
	// List returns all categories.
	List(ctx context.Context) ([]domain.Category, error)
	// GetByID returns the category.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	// Create stores a new category.
	Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	// Update replaces the category's name and description.
	Update(ctx context.Context, id int64, input domain.CategoryInput) (*domain.Category, error)
	// Delete removes the category.
	Delete(ctx context.Context, id int64) error
}

// InputValidator validates service inputs before any persistence call.
type InputValidator interface {
	ValidateArticleCreate(in *domain.ArticleInput) error
	ValidateArticleUpdate(in *domain.ArticleInput) error
	ValidateCategory(in *domain.CategoryInput) error
}
