package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/todos-railway/models"
	"github.com/jalexanderII/todos-railway/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errUnknownAssignee = errors.New("assigned user not found")

// @Summary Get all todos.
// @Description fetch all todos, supporting filtering and sorting.
// @Tags todos
// @Param user query string false "Filter by owner username"
// @Param assignedTo query string false "Filter todos assigned to specific users (comma-separated)"
// @Param tags query string false "Filter by tags (comma-separated values)"
// @Param priority query string false "Filter by priority" Enums(low, medium, high)
// @Param sortBy query string false "Sort field (default createdAt)"
// @Param order query string false "Sort order" Enums(asc, desc)
// @Produce json
// @Success 200 {object} map[string][]models.Todo
// @Router /api/todos [get]
func GetAllTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return h.listTodos(c, c.Query("user"))
	}
}

// @Summary Get todos owned by a user.
// @Description fetch all todos owned by the given username. Kept for older
// clients; the main list endpoint covers this via the user query param.
// @Tags todos
// @Param user query string true "Owner username"
// @Produce json
// @Success 200 {object} map[string][]models.Todo
// @Router /api/todos/user-todos [get]
func GetUserTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		username := c.Query("user")
		if username == "" {
			return MessageResponse(c, fiber.StatusBadRequest, "user query parameter is required")
		}
		return h.listTodos(c, username)
	}
}

func (h *Handler) listTodos(c *fiber.Ctx, ownerUsername string) error {
	query := store.TodoQuery{
		Tags:       splitCSV(c.Query("tags")),
		Priority:   c.Query("priority"),
		AssignedTo: splitCSV(c.Query("assignedTo")),
		SortBy:     c.Query("sortBy"),
		Order:      c.Query("order"),
	}

	if ownerUsername != "" {
		owner, err := h.Users.ByUsername(c.Context(), ownerUsername)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return MessageResponse(c, fiber.StatusNotFound, "user not found")
			}
			return h.internalError(c, err)
		}
		query.OwnerID = owner.GetID()
	}

	todos, err := h.Todos.Find(c.Context(), query)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"todos": todos})
}

// @Summary Get a single todo.
// @Description fetch a todo by its id.
// @Tags todos
// @Param id path string true "Todo ID"
// @Produce json
// @Success 200 {object} models.Todo
// @Router /api/todos/{id} [get]
func GetTodoByID(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return MessageResponse(c, fiber.StatusNotFound, "todo not found")
		}
		todo, err := h.Todos.ByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return MessageResponse(c, fiber.StatusNotFound, "todo not found")
			}
			return h.internalError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(todo)
	}
}

// @Summary Create a todo.
// @Description create a todo owned by an existing user.
// @Tags todos
// @Accept json
// @Param todo body models.CreateTodoRequest true "Todo to create"
// @Produce json
// @Success 201 {object} models.Todo
// @Router /api/todos [post]
func CreateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(models.CreateTodoRequest)
		if err := c.BodyParser(req); err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "request body malformed")
		}

		if strings.TrimSpace(req.Title) == "" {
			return MessageResponse(c, fiber.StatusBadRequest, "title is required")
		}

		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "invalid user id")
		}
		if _, err = h.Users.ByID(c.Context(), userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return MessageResponse(c, fiber.StatusNotFound, "user not found")
			}
			return h.internalError(c, err)
		}

		priority := req.Priority
		if priority == "" {
			priority = models.PriorityMedium
		}
		if !models.ValidPriority(priority) {
			return MessageResponse(c, fiber.StatusBadRequest, "priority must be one of low, medium, high")
		}

		// All assignees must resolve before anything is persisted.
		assignees, err := h.resolveAssignees(c.Context(), req.AssignedUsers)
		if err != nil {
			if errors.Is(err, errUnknownAssignee) {
				return MessageResponse(c, fiber.StatusBadRequest, err.Error())
			}
			return h.internalError(c, err)
		}

		tags := req.Tags
		if tags == nil {
			tags = make([]string, 0)
		}
		notes := req.Notes
		if notes == nil {
			notes = make([]models.Note, 0)
		}

		now := time.Now()
		todo := &models.Todo{
			Title:         strings.TrimSpace(req.Title),
			Description:   req.Description,
			Priority:      priority,
			Completed:     false,
			Tags:          tags,
			AssignedUsers: assignees,
			Notes:         notes,
			UserID:        userID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err = h.Todos.Insert(c.Context(), todo); err != nil {
			return h.internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(todo)
	}
}

// @Summary Update a todo.
// @Description apply a partial update to a todo; only the owner may update.
// Fields absent from the payload are left unchanged.
// @Tags todos
// @Accept json
// @Param id path string true "Todo ID"
// @Param todo body models.UpdateTodoRequest true "Fields to update"
// @Produce json
// @Success 200 {object} models.Todo
// @Router /api/todos/{id} [put]
func UpdateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "invalid todo id")
		}

		req := new(models.UpdateTodoRequest)
		if err = c.BodyParser(req); err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "request body malformed")
		}

		callerID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "invalid user id")
		}

		todo, err := h.Todos.ByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return MessageResponse(c, fiber.StatusNotFound, "todo not found")
			}
			return h.internalError(c, err)
		}

		if todo.UserID != callerID {
			return MessageResponse(c, fiber.StatusForbidden, "only the owner can update this todo")
		}

		// Presence, not truthiness, decides whether a field overwrites:
		// an explicit "" or false is applied, an absent field is not.
		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return MessageResponse(c, fiber.StatusBadRequest, "title cannot be empty")
			}
			todo.Title = title
		}
		if req.Description != nil {
			todo.Description = *req.Description
		}
		if req.Priority != nil {
			if !models.ValidPriority(*req.Priority) {
				return MessageResponse(c, fiber.StatusBadRequest, "priority must be one of low, medium, high")
			}
			todo.Priority = *req.Priority
		}
		if req.Completed != nil {
			todo.Completed = *req.Completed
		}
		if req.Tags != nil {
			tags := *req.Tags
			if tags == nil {
				tags = make([]string, 0)
			}
			todo.Tags = tags
		}
		if req.AssignedUsers != nil {
			assignees, err := h.resolveAssignees(c.Context(), *req.AssignedUsers)
			if err != nil {
				if errors.Is(err, errUnknownAssignee) {
					return MessageResponse(c, fiber.StatusBadRequest, err.Error())
				}
				return h.internalError(c, err)
			}
			todo.AssignedUsers = assignees
		}
		todo.UpdatedAt = time.Now()

		if err = h.Todos.Replace(c.Context(), todo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return MessageResponse(c, fiber.StatusNotFound, "todo not found")
			}
			return h.internalError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(todo)
	}
}

// @Summary Delete a todo.
// @Description permanently delete a todo; only the owner may delete.
// @Tags todos
// @Accept json
// @Param id path string true "Todo ID"
// @Param body body models.DeleteTodoRequest true "Requesting user"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/todos/{id} [delete]
func DeleteTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "invalid todo id")
		}

		req := new(models.DeleteTodoRequest)
		if err = c.BodyParser(req); err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "request body malformed")
		}

		callerID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "invalid user id")
		}

		todo, err := h.Todos.ByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return MessageResponse(c, fiber.StatusNotFound, "todo not found")
			}
			return h.internalError(c, err)
		}

		if todo.UserID != callerID {
			return MessageResponse(c, fiber.StatusForbidden, "only the owner can delete this todo")
		}

		if err = h.Todos.Delete(c.Context(), id); err != nil {
			return h.internalError(c, err)
		}
		return MessageResponse(c, fiber.StatusOK, "todo deleted successfully")
	}
}

// @Summary Add a note to a todo.
// @Description append a note; notes are append-only and open to any caller.
// @Tags todos
// @Accept json
// @Param id path string true "Todo ID"
// @Param note body models.AddNoteRequest true "Note to append"
// @Produce json
// @Success 201 {object} models.Todo
// @Router /api/todos/{id}/notes [post]
func AddTodoNote(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "invalid todo id")
		}

		req := new(models.AddNoteRequest)
		if err = c.BodyParser(req); err != nil {
			return MessageResponse(c, fiber.StatusBadRequest, "request body malformed")
		}
		if strings.TrimSpace(req.Content) == "" || strings.TrimSpace(req.Date) == "" {
			return MessageResponse(c, fiber.StatusBadRequest, "content and date are required")
		}

		todo, err := h.Todos.ByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return MessageResponse(c, fiber.StatusNotFound, "todo not found")
			}
			return h.internalError(c, err)
		}

		// No ownership check here: any caller may annotate a todo.
		todo.Notes = append(todo.Notes, models.Note{Content: req.Content, Date: req.Date})
		todo.UpdatedAt = time.Now()

		if err = h.Todos.Replace(c.Context(), todo); err != nil {
			return h.internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(todo)
	}
}

// resolveAssignees checks every requested assignee against the user
// collection and returns the canonical "@"-prefixed forms. Any miss fails
// the whole batch.
func (h *Handler) resolveAssignees(ctx context.Context, names []string) ([]string, error) {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		bare := models.BareUsername(strings.TrimSpace(name))
		if bare == "" {
			return nil, fmt.Errorf("%w: %q", errUnknownAssignee, name)
		}
		if _, err := h.Users.ByUsername(ctx, bare); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", errUnknownAssignee, name)
			}
			return nil, err
		}
		resolved = append(resolved, models.NormalizeAssignee(bare))
	}
	return resolved, nil
}
