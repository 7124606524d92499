package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Input holds the mutable fields of a category.
type Input struct {
	Name        string
	Description *string
}

// Validate validates the category input.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Get returns a category by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category.Get: %w", err)
	}
	return category, nil
}

// List returns all categories.
func (s *Service) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}
	return categories, nil
}

// SearchByName returns categories whose name contains the given text.
func (s *Service) SearchByName(ctx context.Context, name string) ([]*domain.Category, error) {
	categories, err := s.categories.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("category.SearchByName: %w", err)
	}
	return categories, nil
}

// Create inserts a new category. A taken name is a conflict.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("category.Create: %w", err)
	}

	s.log.InfoContext(ctx, "category created", slog.String("category_id", created.ID.String()))

	return created, nil
}

// Update persists category fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.categories.Update(ctx, &domain.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("category.Update: %w", err)
	}

	s.log.InfoContext(ctx, "category updated", slog.String("category_id", id.String()))

	return updated, nil
}

// Delete removes a category. A category referenced by vacancies cannot be
// removed; the FK violation surfaces as a mapped repository error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}
