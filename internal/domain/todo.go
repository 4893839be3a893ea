package domain

import (
	"time"

	"github.com/google/uuid"
)

// Todo is the persisted note entity. Independent of Gin and Postgres.
// Optional columns (category, published) always carry concrete values
// here; the repo coalesces stored NULLs to zero values on read.
type Todo struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Category  string
	Published bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoPatch is a partial update: nil means keep the stored value.
type TodoPatch struct {
	Title     *string
	Content   *string
	Category  *string
	Published *bool
}
