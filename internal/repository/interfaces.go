package repository

import (
	"context"

	"article-api/internal/domain"
)

// ArticleQuery carries the store-level predicates and paging for the filtered
// article list. Nil predicate fields add no restriction for that column.
type ArticleQuery struct {
	Status      *string
	CategoryID  *int64
	ArticleType *string
	Sort        domain.SortOrder
	Limit       int
	Offset      int
}

// ArticleRepository defines methods for article data access.
// FindByID and FindFiltered resolve the category name of each article via the
// category relation; lookups that match nothing return (nil, nil).
type ArticleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	FindFiltered(ctx context.Context, q ArticleQuery) ([]domain.Article, int64, error)
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
