package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "todo-api/internal/domain"
	"todo-api/internal/repo"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Operation-scoped reasons. The id-carrying ones are wrapped with
// fmt.Errorf so err.Error() names the identifier while errors.Is still
// matches the sentinel.
var (
	ErrTitleExists = errors.New("note with that title already exists")
	ErrInternal    = errors.New("internal server error")
	ErrNotFound    = errors.New("not found")
	ErrNotUpdated  = errors.New("not updated")
	ErrNotDeleted  = errors.New("not deleted")
)

func notFoundErr(id uuid.UUID) error {
	return fmt.Errorf("note with ID: %s %w", id, ErrNotFound)
}

func notUpdatedErr(id uuid.UUID) error {
	return fmt.Errorf("note with ID: %s %w", id, ErrNotUpdated)
}

func notDeletedErr(id uuid.UUID) error {
	return fmt.Errorf("note with ID: %s %w", id, ErrNotDeleted)
}

// TodoService enforces business rules on top of the repo and maps raw
// persistence failures into caller-facing reasons. Unexpected failures
// are logged here and never reach the client in detail.
type TodoService struct {
	repo repo.TodoRepo
	log  zerolog.Logger
}

// NewTodoService creates a TodoService.
func NewTodoService(r repo.TodoRepo, log zerolog.Logger) *TodoService {
	return &TodoService{repo: r, log: log}
}

// Create inserts a new todo. Title uniqueness is enforced by the store
// constraint; a pre-check here would race, so the constraint violation is
// translated after the fact.
func (s *TodoService) Create(ctx context.Context, title, content, category string) (dom.Todo, error) {
	title = strings.TrimSpace(title)

	t, err := s.repo.Create(ctx, title, content, category)
	if err != nil {
		if errors.Is(err, repo.ErrConstraintViolation) {
			return dom.Todo{}, ErrTitleExists
		}
		s.log.Error().Err(err).Str("op", "create").Msg("todo repo failure")
		return dom.Todo{}, ErrInternal
	}
	return t, nil
}

// List returns the windowed sequence unchanged, including empty.
func (s *TodoService) List(ctx context.Context, limit, offset int) ([]dom.Todo, error) {
	list, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.log.Error().Err(err).Str("op", "list").Msg("todo repo failure")
		return nil, ErrInternal
	}
	return list, nil
}

// GetByID resolves the repo's zero-or-one slice: empty or failed both
// read as not found for the caller.
func (s *TodoService) GetByID(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	list, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.log.Error().Err(err).Str("op", "get").Stringer("id", id).Msg("todo repo failure")
		}
		return dom.Todo{}, notFoundErr(id)
	}
	if len(list) == 0 {
		return dom.Todo{}, notFoundErr(id)
	}
	return list[0], nil
}

// Update applies a partial patch; any failure reads as "not updated" so
// the caller can name the id it could not change.
func (s *TodoService) Update(ctx context.Context, id uuid.UUID, patch dom.TodoPatch) (dom.Todo, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.log.Error().Err(err).Str("op", "update").Stringer("id", id).Msg("todo repo failure")
		}
		return dom.Todo{}, notUpdatedErr(id)
	}
	return t, nil
}

// Delete signals success with a nil error; a false delete (no row
// removed) and a repo failure both read as "not deleted".
func (s *TodoService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("op", "delete").Stringer("id", id).Msg("todo repo failure")
		return notDeletedErr(id)
	}
	if !deleted {
		return notDeletedErr(id)
	}
	return nil
}
