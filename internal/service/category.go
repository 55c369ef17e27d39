package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/taskdeck/internal/domain"
)

// predefinedCategories are seeded at startup. Tasks reference these rows;
// the API never creates or mutates categories.
var predefinedCategories = []string{
	"Work",
	"Personal",
	"Shopping",
	"Health",
	"Finance",
	"Other",
}

// CategoryService exposes the fixed category catalog.
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// SeedPredefined inserts any predefined categories that do not exist yet.
// Safe to run on every startup.
func (s *CategoryService) SeedPredefined(ctx context.Context) error {
	for _, name := range predefinedCategories {
		_, err := s.categories.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("look up category %q: %w", name, err)
		}
		if err := s.categories.Create(ctx, &domain.Category{Name: name}); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}
