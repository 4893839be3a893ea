package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTodoRequest is the JSON body for POST /todo.
type CreateTodoRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=120"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"` // optional, empty string when absent
}

// UpdateTodoRequest is the JSON body for PATCH /todo/:id.
// nil = keep the stored value.
type UpdateTodoRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=120"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

// TodoResponse is the JSON shape of a persisted todo.
type TodoResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoData wraps a single todo under the "todo" key (create, get).
type TodoData struct {
	Todo TodoResponse `json:"todo"`
}

// NoteData wraps a single todo under the "note" key (update).
type NoteData struct {
	Note TodoResponse `json:"note"`
}

// TodoEnvelope is the success envelope for create and get.
type TodoEnvelope struct {
	Status string   `json:"status"`
	Data   TodoData `json:"data"`
}

// NoteEnvelope is the success envelope for update.
type NoteEnvelope struct {
	Status string   `json:"status"`
	Data   NoteData `json:"data"`
}

// ListTodosResponse is the success envelope for GET /todos.
type ListTodosResponse struct {
	Status  string         `json:"status"`
	Results int            `json:"results"`
	Todo    []TodoResponse `json:"todo"`
}

// StatusMessage is the fail/error envelope, and the health response.
// Status is "success", "fail" (expected domain condition) or "error"
// (unexpected internal condition).
type StatusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
