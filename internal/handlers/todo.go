package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dom "todo-api/internal/domain"
	"todo-api/internal/dto"
	"todo-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

const (
	defaultLimit = 10
	defaultPage  = 1
)

// TodoHandler binds HTTP semantics to service outcomes. No business
// logic lives here.
type TodoHandler struct {
	svc *service.TodoService
}

// NewTodoHandler returns a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoEnvelope
// @Failure      400   {object}  dto.StatusMessage
// @Failure      409   {object}  dto.StatusMessage
// @Failure      500   {object}  dto.StatusMessage
// @Router       /todo [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusMessage{Status: statusFail, Message: err.Error()})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Content, req.Category)
	if err != nil {
		if errors.Is(err, service.ErrTitleExists) {
			c.JSON(http.StatusConflict, dto.StatusMessage{Status: statusFail, Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StatusMessage{Status: statusError, Message: service.ErrInternal.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.TodoEnvelope{Status: statusSuccess, Data: dto.TodoData{Todo: todoToResponse(t)}})
}

// List godoc
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Param        limit  query     int  false  "Page size"     default(10)
// @Param        page   query     int  false  "Page number"   default(1)
// @Success      200    {object}  dto.ListTodosResponse
// @Failure      500    {object}  dto.StatusMessage
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", defaultLimit)
	page := intQuery(c, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	offset := (page - 1) * limit

	list, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StatusMessage{
			Status:  statusFail,
			Message: "something bad happened while fetching the note items",
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{
		Status:  statusSuccess,
		Results: len(list),
		Todo:    todosToResponses(list),
	})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID (UUID)"
// @Success      200  {object}  dto.TodoEnvelope
// @Failure      400  {object}  dto.StatusMessage
// @Failure      404  {object}  dto.StatusMessage
// @Router       /todo/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.StatusMessage{Status: statusFail, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.TodoEnvelope{Status: statusSuccess, Data: dto.TodoData{Todo: todoToResponse(t)}})
}

// Update godoc
// @Summary      Partially update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Todo ID (UUID)"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200   {object}  dto.NoteEnvelope
// @Failure      400   {object}  dto.StatusMessage
// @Failure      500   {object}  dto.StatusMessage
// @Router       /todo/{id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusMessage{Status: statusFail, Message: err.Error()})
		return
	}
	patch := dom.TodoPatch{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Published: req.Published,
	}
	t, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StatusMessage{Status: statusError, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NoteEnvelope{Status: statusSuccess, Data: dto.NoteData{Note: todoToResponse(t)}})
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Param        id   path  string  true  "Todo ID (UUID)"
// @Success      204
// @Failure      400  {object}  dto.StatusMessage
// @Failure      404  {object}  dto.StatusMessage
// @Router       /todo/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, dto.StatusMessage{Status: statusFail, Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusMessage{Status: statusFail, Message: "invalid note ID"})
		return uuid.Nil, false
	}
	return id, true
}

// intQuery reads a non-negative integer query param, falling back to def
// on absence or garbage.
func intQuery(c *gin.Context, name string, def int) int {
	n, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Category:  t.Category,
		Published: t.Published,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
