package repo

import (
	"context"
	"errors"
	"fmt"

	dom "todo-api/internal/domain"
	"todo-api/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Tagged failure kinds. The service layer matches on these with errors.Is
// and never inspects raw Postgres error text.
var (
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotFound            = errors.New("row not found")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// DB is the slice of pgxpool.Pool the repo needs. Satisfied by
// *pgxpool.Pool and by pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TodoRepo provides todo persistence.
type TodoRepo interface {
	Create(ctx context.Context, title, content, category string) (dom.Todo, error)
	List(ctx context.Context, limit, offset int) ([]dom.Todo, error)
	GetByID(ctx context.Context, id uuid.UUID) ([]dom.Todo, error)
	Update(ctx context.Context, id uuid.UUID, patch dom.TodoPatch) (dom.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db DB
}

// NewPGTodoRepo returns a new PGTodoRepo.
func NewPGTodoRepo(db DB) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

// Stored NULLs in optional columns surface as zero values, never as scan
// failures.
const todoColumns = `id, title, content, COALESCE(category, ''), COALESCE(published, FALSE), created_at, updated_at`

func (r *PGTodoRepo) Create(ctx context.Context, title, content, category string) (dom.Todo, error) {
	query := `
		INSERT INTO todo (title, content, category)
		VALUES ($1, $2, $3)
		RETURNING ` + todoColumns
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, title, content, category).Scan(
		&t.ID, &t.Title, &t.Content, &t.Category, &t.Published,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Todo{}, fmt.Errorf("%w: duplicate title", ErrConstraintViolation)
		}
		return dom.Todo{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return t, nil
}

// List returns rows ordered by id ascending, windowed by limit and offset.
// Bounds validation is the caller's job; values are passed through.
func (r *PGTodoRepo) List(ctx context.Context, limit, offset int) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todo ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()
	list := []dom.Todo{}
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &t.Category, &t.Published,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return list, nil
}

// GetByID returns zero or one rows as a slice; interpreting an empty
// result is left to the service.
func (r *PGTodoRepo) GetByID(ctx context.Context, id uuid.UUID) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todo WHERE id = $1`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()
	list := []dom.Todo{}
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &t.Category, &t.Published,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return list, nil
}

// Update is two-step: read the current row, then write it back with each
// field replaced by the patch field if set. The write is a single UPDATE
// statement, so a partial application is not possible.
func (r *PGTodoRepo) Update(ctx context.Context, id uuid.UUID, patch dom.TodoPatch) (dom.Todo, error) {
	var cur dom.Todo
	err := r.db.QueryRow(ctx, `SELECT `+todoColumns+` FROM todo WHERE id = $1`, id).Scan(
		&cur.ID, &cur.Title, &cur.Content, &cur.Category, &cur.Published,
		&cur.CreatedAt, &cur.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if patch.Title != nil {
		cur.Title = *patch.Title
	}
	if patch.Content != nil {
		cur.Content = *patch.Content
	}
	if patch.Category != nil {
		cur.Category = *patch.Category
	}
	if patch.Published != nil {
		cur.Published = *patch.Published
	}

	query := `
		UPDATE todo SET title = $2, content = $3, category = $4, published = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + todoColumns
	var t dom.Todo
	err = r.db.QueryRow(ctx, query, id, cur.Title, cur.Content, cur.Category, cur.Published).Scan(
		&t.ID, &t.Title, &t.Content, &t.Category, &t.Published,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Todo{}, fmt.Errorf("%w: duplicate title", ErrConstraintViolation)
		}
		return dom.Todo{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return t, nil
}

// Delete removes the row by id. True only when exactly one row was
// affected; id is the primary key, so anything else means nothing was
// deleted.
func (r *PGTodoRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todo WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return tag.RowsAffected() == 1, nil
}
