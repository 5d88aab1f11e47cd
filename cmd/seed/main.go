package main

import (
	"time"

	"github.com/jalexanderII/todos-railway/config"
	"github.com/jalexanderII/todos-railway/database"
	"github.com/jalexanderII/todos-railway/models"
	"github.com/jalexanderII/todos-railway/store"
	"github.com/sirupsen/logrus"
)

var l = logrus.New()

// Wipes the users and todos collections and repopulates them with sample
// data for local development.
func main() {
	if err := config.LoadENV(); err != nil {
		l.Fatal("error loading env: ", err)
	}
	if err := database.StartMongoDB(); err != nil {
		l.Fatal("error connecting to mongoDB: ", err)
	}
	defer database.CloseMongoDB()

	users := store.NewMongoUserStore(database.GetCollection(config.GetEnvDefault("USER_COLLECTION", "users")))
	todos := store.NewMongoTodoStore(database.GetCollection(config.GetEnvDefault("TODO_COLLECTION", "todos")))

	ctx, cancel := database.NewDBContext(30 * time.Second)
	defer cancel()

	// Clear existing users and todos from DB
	if err := users.DeleteAll(ctx); err != nil {
		l.Fatal("error clearing users: ", err)
	}
	if err := todos.DeleteAll(ctx); err != nil {
		l.Fatal("error clearing todos: ", err)
	}

	now := time.Now()
	sampleUsers := []models.User{
		{Username: "hruthik", Email: "hruthik@gmail.com", CreatedAt: now, UpdatedAt: now},
		{Username: "colt", Email: "colt@gmail.com", CreatedAt: now, UpdatedAt: now},
		{Username: "mike", Email: "mike@gmail.com", CreatedAt: now, UpdatedAt: now},
		{Username: "alice", Email: "alice@gmail.com", CreatedAt: now, UpdatedAt: now},
		{Username: "charlie", Email: "charlie@gmail.com", CreatedAt: now, UpdatedAt: now},
	}
	for i := range sampleUsers {
		if err := users.Insert(ctx, &sampleUsers[i]); err != nil {
			l.Fatal("error seeding users: ", err)
		}
	}

	sampleTodos := []models.Todo{
		{
			Title:         "Complete building the todos app",
			Description:   "Finish implementing all required features",
			Priority:      models.PriorityHigh,
			Completed:     false,
			Tags:          []string{"work", "coding"},
			AssignedUsers: []string{"@colt", "@mike"},
			Notes:         []models.Note{{Content: "Remember to add error handling", Date: "2025-03-21"}},
			UserID:        sampleUsers[0].ID,
			CreatedAt:     mustTime("2025-03-18T12:00:00Z"),
		},
		{
			Title:         "Test the application",
			Description:   "Test the app with the required tools",
			Priority:      models.PriorityMedium,
			Completed:     false,
			Tags:          []string{"testing", "coding"},
			AssignedUsers: []string{"@alice", "@charlie"},
			Notes:         []models.Note{{Content: "Write Test cases", Date: "2025-03-21"}},
			UserID:        sampleUsers[1].ID,
			CreatedAt:     mustTime("2025-03-19T10:30:00Z"),
		},
		{
			Title:         "Deploy the application",
			Description:   "Deploy the application in AWS EC2 instance",
			Priority:      models.PriorityLow,
			Completed:     true,
			Tags:          []string{"deployment", "coding"},
			AssignedUsers: []string{"@mike"},
			Notes:         []models.Note{{Content: "Create docker image for deployment", Date: "2025-03-22"}},
			UserID:        sampleUsers[2].ID,
			CreatedAt:     mustTime("2025-03-20T08:15:00Z"),
		},
		{
			Title:         "Monitoring the application",
			Description:   "Add GA4 to monitor the application",
			Priority:      models.PriorityHigh,
			Completed:     false,
			Tags:          []string{"monitoring"},
			AssignedUsers: []string{"@charlie"},
			Notes:         []models.Note{{Content: "Implement GA4 for monitoring the application", Date: "2025-03-23"}},
			UserID:        sampleUsers[3].ID,
			CreatedAt:     mustTime("2025-03-21T14:45:00Z"),
		},
		{
			Title:         "SEO",
			Description:   "Implement SEO",
			Priority:      models.PriorityMedium,
			Completed:     false,
			Tags:          []string{"SEO"},
			AssignedUsers: []string{"@hruthik"},
			Notes:         []models.Note{{Content: "Add necessary meta tags and keywords for SEO", Date: "2025-03-24"}},
			UserID:        sampleUsers[4].ID,
			CreatedAt:     mustTime("2025-03-22T16:30:00Z"),
		},
	}
	for i := range sampleTodos {
		sampleTodos[i].UpdatedAt = sampleTodos[i].CreatedAt
		if err := todos.Insert(ctx, &sampleTodos[i]); err != nil {
			l.Fatal("error seeding todos: ", err)
		}
	}

	l.Info("users and todos seeded successfully!")
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
