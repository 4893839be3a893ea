package service

import (
	"context"
	"errors"
	"testing"

	dom "todo-api/internal/domain"
	"todo-api/internal/repo"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo implements repo.TodoRepo with overridable functions.
type stubRepo struct {
	createFn func(ctx context.Context, title, content, category string) (dom.Todo, error)
	listFn   func(ctx context.Context, limit, offset int) ([]dom.Todo, error)
	getFn    func(ctx context.Context, id uuid.UUID) ([]dom.Todo, error)
	updateFn func(ctx context.Context, id uuid.UUID, patch dom.TodoPatch) (dom.Todo, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (s *stubRepo) Create(ctx context.Context, title, content, category string) (dom.Todo, error) {
	return s.createFn(ctx, title, content, category)
}

func (s *stubRepo) List(ctx context.Context, limit, offset int) ([]dom.Todo, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) ([]dom.Todo, error) {
	return s.getFn(ctx, id)
}

func (s *stubRepo) Update(ctx context.Context, id uuid.UUID, patch dom.TodoPatch) (dom.Todo, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.deleteFn(ctx, id)
}

func newService(r repo.TodoRepo) *TodoService {
	return NewTodoService(r, zerolog.Nop())
}

func TestTodoService_Create(t *testing.T) {
	t.Run("passes the created todo through", func(t *testing.T) {
		want := dom.Todo{ID: uuid.New(), Title: "a", Content: "b"}
		svc := newService(&stubRepo{
			createFn: func(_ context.Context, title, content, category string) (dom.Todo, error) {
				assert.Equal(t, "a", title)
				return want, nil
			},
		})

		got, err := svc.Create(context.Background(), "a", "b", "")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("trims title whitespace before insert", func(t *testing.T) {
		svc := newService(&stubRepo{
			createFn: func(_ context.Context, title, _, _ string) (dom.Todo, error) {
				assert.Equal(t, "a", title)
				return dom.Todo{Title: title}, nil
			},
		})
		_, err := svc.Create(context.Background(), "  a  ", "b", "")
		require.NoError(t, err)
	})

	t.Run("constraint violation reads as title conflict, never internal", func(t *testing.T) {
		svc := newService(&stubRepo{
			createFn: func(context.Context, string, string, string) (dom.Todo, error) {
				return dom.Todo{}, repo.ErrConstraintViolation
			},
		})
		_, err := svc.Create(context.Background(), "a", "b", "")
		assert.ErrorIs(t, err, ErrTitleExists)
		assert.NotErrorIs(t, err, ErrInternal)
	})

	t.Run("any other failure is a generic internal error", func(t *testing.T) {
		svc := newService(&stubRepo{
			createFn: func(context.Context, string, string, string) (dom.Todo, error) {
				return dom.Todo{}, errors.New("connection refused to 10.0.0.4:5432")
			},
		})
		_, err := svc.Create(context.Background(), "a", "b", "")
		assert.ErrorIs(t, err, ErrInternal)
		// Store detail must not leak into the caller-facing reason.
		assert.NotContains(t, err.Error(), "10.0.0.4")
	})
}

func TestTodoService_List(t *testing.T) {
	t.Run("returns the sequence unchanged, including empty", func(t *testing.T) {
		svc := newService(&stubRepo{
			listFn: func(_ context.Context, limit, offset int) ([]dom.Todo, error) {
				assert.Equal(t, 10, limit)
				assert.Equal(t, 20, offset)
				return []dom.Todo{}, nil
			},
		})
		got, err := svc.List(context.Background(), 10, 20)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("failure is a generic internal error", func(t *testing.T) {
		svc := newService(&stubRepo{
			listFn: func(context.Context, int, int) ([]dom.Todo, error) {
				return nil, repo.ErrStoreUnavailable
			},
		})
		_, err := svc.List(context.Background(), 10, 0)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestTodoService_GetByID(t *testing.T) {
	id := uuid.New()

	t.Run("returns the single matching row", func(t *testing.T) {
		want := dom.Todo{ID: id, Title: "a"}
		svc := newService(&stubRepo{
			getFn: func(context.Context, uuid.UUID) ([]dom.Todo, error) {
				return []dom.Todo{want}, nil
			},
		})
		got, err := svc.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty result reads as not found carrying the id", func(t *testing.T) {
		svc := newService(&stubRepo{
			getFn: func(context.Context, uuid.UUID) ([]dom.Todo, error) {
				return []dom.Todo{}, nil
			},
		})
		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), id.String())
	})

	t.Run("repo failure reads as not found", func(t *testing.T) {
		svc := newService(&stubRepo{
			getFn: func(context.Context, uuid.UUID) ([]dom.Todo, error) {
				return nil, repo.ErrStoreUnavailable
			},
		})
		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTodoService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("passes the updated todo through", func(t *testing.T) {
		want := dom.Todo{ID: id, Title: "new"}
		svc := newService(&stubRepo{
			updateFn: func(_ context.Context, gotID uuid.UUID, _ dom.TodoPatch) (dom.Todo, error) {
				assert.Equal(t, id, gotID)
				return want, nil
			},
		})
		got, err := svc.Update(context.Background(), id, dom.TodoPatch{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("any failure reads as not updated carrying the id", func(t *testing.T) {
		for _, repoErr := range []error{repo.ErrNotFound, repo.ErrStoreUnavailable} {
			svc := newService(&stubRepo{
				updateFn: func(context.Context, uuid.UUID, dom.TodoPatch) (dom.Todo, error) {
					return dom.Todo{}, repoErr
				},
			})
			_, err := svc.Update(context.Background(), id, dom.TodoPatch{})
			assert.ErrorIs(t, err, ErrNotUpdated)
			assert.Contains(t, err.Error(), id.String())
		}
	})
}

func TestTodoService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("success is a nil error", func(t *testing.T) {
		svc := newService(&stubRepo{
			deleteFn: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
		})
		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("no row removed reads as not deleted carrying the id", func(t *testing.T) {
		svc := newService(&stubRepo{
			deleteFn: func(context.Context, uuid.UUID) (bool, error) { return false, nil },
		})
		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotDeleted)
		assert.Contains(t, err.Error(), id.String())
	})

	t.Run("repo failure reads as not deleted", func(t *testing.T) {
		svc := newService(&stubRepo{
			deleteFn: func(context.Context, uuid.UUID) (bool, error) {
				return false, repo.ErrStoreUnavailable
			},
		})
		assert.ErrorIs(t, svc.Delete(context.Background(), id), ErrNotDeleted)
	})
}
