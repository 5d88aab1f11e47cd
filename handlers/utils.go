package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/todos-railway/database"
	"github.com/jalexanderII/todos-railway/store"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Todos store.TodoStore
	Users store.UserStore
	L     *logrus.Logger
}

// NewHandler wires the Mongo-backed stores. Tests construct a Handler
// directly with the in-memory stores instead.
func NewHandler(todoCollection, userCollection string, l *logrus.Logger) *Handler {
	return &Handler{
		Todos: store.NewMongoTodoStore(database.GetCollection(todoCollection)),
		Users: store.NewMongoUserStore(database.GetCollection(userCollection)),
		L:     l,
	}
}

// MessageResponse writes the `{"message": ...}` body used by every
// non-2xx response.
func MessageResponse(c *fiber.Ctx, httpStatus int, message string) error {
	return c.Status(httpStatus).JSON(fiber.Map{"message": message})
}

func (h *Handler) internalError(c *fiber.Ctx, err error) error {
	h.L.Error("internal error: ", err)
	return MessageResponse(c, fiber.StatusInternalServerError, "internal server error")
}

// splitCSV splits a comma-separated query value, trimming whitespace and
// dropping empty entries.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
