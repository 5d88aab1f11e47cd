package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type userSummary struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// @Summary Get all users.
// @Description fetch every user in the collection.
// @Tags users
// @Produce json
// @Success 200 {object} []userSummary
// @Router /api/users [get]
func GetAllUsers(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		users, err := h.Users.All(c.Context())
		if err != nil {
			return h.internalError(c, err)
		}

		out := make([]userSummary, 0, len(users))
		for _, u := range users {
			out = append(out, userSummary{
				ID:       u.ID.Hex(),
				Username: u.Username,
				Email:    u.Email,
			})
		}
		return c.Status(fiber.StatusOK).JSON(out)
	}
}
