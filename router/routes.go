package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/todos-railway/config"
	"github.com/jalexanderII/todos-railway/handlers"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger.
var l = logrus.New()

func SetupRoutes(app *fiber.App) {
	todoHandler := handlers.NewHandler(
		config.GetEnvDefault("TODO_COLLECTION", "todos"),
		config.GetEnvDefault("USER_COLLECTION", "users"),
		l,
	)
	Register(app, todoHandler)
}

// Register attaches all routes to the app. Split from SetupRoutes so
// tests can mount the same surface over in-memory stores.
func Register(app *fiber.App, h *handlers.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome To Todos!")
	})

	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Get("/", handlers.GetAllUsers(h))

	todos := api.Group("/todos")
	todos.Get("/", handlers.GetAllTodos(h))
	todos.Get("/user-todos", handlers.GetUserTodos(h))
	todos.Get("/export", handlers.ExportTodos(h))
	todos.Post("/", handlers.CreateTodo(h))
	// static segments above must register before the :id wildcard
	todos.Get("/:id", handlers.GetTodoByID(h))
	todos.Put("/:id", handlers.UpdateTodo(h))
	todos.Delete("/:id", handlers.DeleteTodo(h))
	todos.Post("/:id/notes", handlers.AddTodoNote(h))
}
