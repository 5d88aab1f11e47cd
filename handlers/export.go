package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/todos-railway/models"
)

// csvHeader is the fixed projection exported per todo.
var csvHeader = []string{"title", "description", "priority", "completed", "tags", "assignedUsers", "createdAt"}

// @Summary Export all todos.
// @Description download the full todo collection as JSON or CSV.
// @Tags todos
// @Param format query string false "Export format (default json)" Enums(json, csv)
// @Produce json
// @Success 200 "file download"
// @Router /api/todos/export [get]
func ExportTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		format := c.Query("format", "json")
		if format != "json" && format != "csv" {
			return MessageResponse(c, fiber.StatusBadRequest, "format must be json or csv")
		}

		todos, err := h.Todos.All(c.Context())
		if err != nil {
			return h.internalError(c, err)
		}

		if format == "csv" {
			data, err := todosToCSV(todos)
			if err != nil {
				return h.internalError(c, err)
			}
			c.Set(fiber.HeaderContentType, "text/csv")
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="todos_export.csv"`)
			return c.Status(fiber.StatusOK).Send(data)
		}

		data, err := json.Marshal(todos)
		if err != nil {
			return h.internalError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="todos_export.json"`)
		return c.Status(fiber.StatusOK).Send(data)
	}
}

// todosToCSV flattens todos into the fixed csvHeader projection. Array
// fields are comma-joined inside a single cell; the csv writer quotes
// cells containing commas. Timestamps are RFC 3339.
func todosToCSV(todos []models.Todo) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range todos {
		row := []string{
			t.Title,
			t.Description,
			t.Priority,
			strconv.FormatBool(t.Completed),
			strings.Join(t.Tags, ","),
			strings.Join(t.AssignedUsers, ","),
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
