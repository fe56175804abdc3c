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

// CategoryService implements the category business rules, most notably the
// global name-uniqueness check.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	validator    InputValidator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, validator InputValidator) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetByID returns the category with the given id.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category", id)
	}
	return category, nil
}

// Create validates the input, rejects duplicate names up front, and stores
// the category.
func (s *CategoryService) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	if err := s.validator.ValidateCategory(&input); err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return nil, domain.NewValidationError("name", "category name already exists")
	}

	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		metrics.ObserveEntityOperation("category", "create", "error")
		return nil, fmt.Errorf("create category: %w", err)
	}
	metrics.ObserveEntityOperation("category", "create", "success")
	logger.InfoContext(ctx, "Category created",
		slog.Int64("category_id", category.ID),
		slog.String("name", category.Name))

	return category, nil
}

// Update replaces the category's name and description. A rename that collides
// with another category's name is rejected; keeping the current name is not a
// collision.
func (s *CategoryService) Update(ctx context.Context, id int64, input domain.CategoryInput) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category", id)
	}

	if err := s.validator.ValidateCategory(&input); err != nil {
		return nil, err
	}

	if category.Name != input.Name {
		taken, err := s.categoryRepo.ExistsByName(ctx, input.Name)
		if err != nil {
			return nil, fmt.Errorf("check category name: %w", err)
		}
		if taken {
			return nil, domain.NewValidationError("name", "category name already exists")
		}
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		metrics.ObserveEntityOperation("category", "update", "error")
		return nil, fmt.Errorf("update category: %w", err)
	}
	metrics.ObserveEntityOperation("category", "update", "success")

	return category, nil
}

// Delete removes the category with the given id. Deleting an unknown id is an
// error, not a no-op. Articles referencing the category are not touched:
// their reference is weak and is left dangling.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	exists, err := s.categoryRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("category", id)
	}

	if err := s.categoryRepo.DeleteByID(ctx, id); err != nil {
		metrics.ObserveEntityOperation("category", "delete", "error")
		return fmt.Errorf("delete category: %w", err)
	}
	metrics.ObserveEntityOperation("category", "delete", "success")
	logger.InfoContext(ctx, "Category deleted",
		slog.Int64("category_id", id))

	return nil
}
