package service

import (
	"context"
	"fmt"
	"log/slog"

	"article-api/internal/domain"
	"article-api/internal/logger"
	"article-api/internal/metrics"
	"article-api/internal/repository"
)

// ArticleService implements the article business rules: filtered listing,
// view counting, and the referential-integrity checks against categories.
type ArticleService struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	validator    InputValidator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository, categoryRepo repository.CategoryRepository, validator InputValidator) *ArticleService {
	return &ArticleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

// List returns one page of articles matching the filter. Paging parameters
// are normalized (page >= 0, 1 <= size <= 100) and the HOT tag switches the
// ordering to view count descending; the tag never restricts the result set.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) (domain.PageResult[domain.Article], error) {
	page := filter.NormalizedPage()
	size := filter.NormalizedSize()

	articles, total, err := s.articleRepo.FindFiltered(ctx, repository.ArticleQuery{
		Status:      filter.Status,
		CategoryID:  filter.CategoryID,
		ArticleType: filter.ArticleType,
		Sort:        filter.SortOrder(),
		Limit:       size,
		Offset:      page * size,
	})
	if err != nil {
		return domain.PageResult[domain.Article]{}, fmt.Errorf("list articles: %w", err)
	}

	return domain.NewPageResult(articles, page, size, total), nil
}

// GetByID returns the article with the given id. As a side effect it
// increments the stored view count by one and refreshes the update timestamp;
// repeated reads of the same id change observable state. The increment is a
// read-modify-write without locking, so concurrent reads may lose counts.
func (s *ArticleService) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.NewNotFoundError("article", id)
	}

	article.ViewCount++
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("increment view count: %w", err)
	}
	metrics.ArticleViewsTotal.Inc()

	return article, nil
}

// Create validates the input, resolves the category reference if one is
// given, and stores the article. Status defaults to PUBLISHED and images to
// an empty list.
func (s *ArticleService) Create(ctx context.Context, input domain.ArticleInput) (*domain.Article, error) {
	if err := s.validator.ValidateArticleCreate(&input); err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:       input.Title,
		Content:     input.Content,
		CoverImage:  input.CoverImage,
		Images:      imagesOrEmpty(input.Images),
		Status:      statusOrDefault(input.Status),
		ArticleType: input.ArticleType,
		Tag:         input.Tag,
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("look up category: %w", err)
		}
		if category == nil {
			return nil, domain.NewNotFoundError("category", *input.CategoryID)
		}
		article.CategoryID = &category.ID
		article.CategoryName = &category.Name
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		metrics.ObserveEntityOperation("article", "create", "error")
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.ObserveEntityOperation("article", "create", "success")
	logger.InfoContext(ctx, "Article created",
		slog.Int64("article_id", article.ID))

	return article, nil
}

// Update replaces all mutable fields of the article. A nil category id clears
// the association; a changed id is verified against the category store before
// anything is persisted, so a failed lookup leaves the stored record intact.
func (s *ArticleService) Update(ctx context.Context, id int64, input domain.ArticleInput) (*domain.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.NewNotFoundError("article", id)
	}

	if err := s.validator.ValidateArticleUpdate(&input); err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Content = input.Content
	article.CoverImage = input.CoverImage
	article.Images = imagesOrEmpty(input.Images)
	article.Status = statusOrDefault(input.Status)
	article.ArticleType = input.ArticleType
	article.Tag = input.Tag

	switch {
	case input.CategoryID == nil:
		article.CategoryID = nil
		article.CategoryName = nil
	case article.CategoryID == nil || *article.CategoryID != *input.CategoryID:
		category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("look up category: %w", err)
		}
		if category == nil {
			return nil, domain.NewNotFoundError("category", *input.CategoryID)
		}
		article.CategoryID = &category.ID
		article.CategoryName = &category.Name
	default:
		// Unchanged category id, skip the lookup.
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		metrics.ObserveEntityOperation("article", "update", "error")
		return nil, fmt.Errorf("update article: %w", err)
	}
	metrics.ObserveEntityOperation("article", "update", "success")

	return article, nil
}

// Delete removes the article with the given id. Deleting an unknown id is an
// error, not a no-op.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	exists, err := s.articleRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check article: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("article", id)
	}

	if err := s.articleRepo.DeleteByID(ctx, id); err != nil {
		metrics.ObserveEntityOperation("article", "delete", "error")
		return fmt.Errorf("delete article: %w", err)
	}
	metrics.ObserveEntityOperation("article", "delete", "success")
	logger.InfoContext(ctx, "Article deleted",
		slog.Int64("article_id", id))

	return nil
}

func statusOrDefault(status *string) string {
	if status == nil {
		return domain.DefaultStatus
	}
	return *status
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
