package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jalexanderII/todos-railway/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserStore and MemoryTodoStore keep everything in process memory.
// They back the handler tests and the same query semantics as the Mongo
// stores via TodoQuery.Matches.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make([]models.User, 0)}
}

func (s *MemoryUserStore) All(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryUserStore) ByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) ByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == primitive.NilObjectID {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryUserStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = s.users[:0]
	return nil
}

type MemoryTodoStore struct {
	mu    sync.RWMutex
	todos []models.Todo
}

func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{todos: make([]models.Todo, 0)}
}

func (s *MemoryTodoStore) Find(_ context.Context, q TodoQuery) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Todo, 0)
	for _, t := range s.todos {
		if q.Matches(t) {
			out = append(out, t)
		}
	}
	sortTodos(out, q)
	return out, nil
}

func (s *MemoryTodoStore) All(ctx context.Context) ([]models.Todo, error) {
	return s.Find(ctx, TodoQuery{})
}

func (s *MemoryTodoStore) ByID(_ context.Context, id primitive.ObjectID) (*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.todos {
		if t.ID == id {
			todo := t
			return &todo, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryTodoStore) Insert(_ context.Context, todo *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if todo.ID == primitive.NilObjectID {
		todo.ID = primitive.NewObjectID()
	}
	s.todos = append(s.todos, *todo)
	return nil
}

func (s *MemoryTodoStore) Replace(_ context.Context, todo *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.todos {
		if t.ID == todo.ID {
			s.todos[i] = *todo
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryTodoStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.todos {
		if t.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryTodoStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = s.todos[:0]
	return nil
}

// sortTodos orders by the named field. Unknown fields leave insertion
// order untouched, mirroring Mongo's behavior of sorting on a field no
// document has.
func sortTodos(todos []models.Todo, q TodoQuery) {
	less := lessFunc(q.SortField())
	if less == nil {
		return
	}
	sort.SliceStable(todos, func(i, j int) bool {
		if q.Descending() {
			return less(todos[j], todos[i])
		}
		return less(todos[i], todos[j])
	})
}

func lessFunc(field string) func(a, b models.Todo) bool {
	switch field {
	case "createdAt":
		return func(a, b models.Todo) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updatedAt":
		return func(a, b models.Todo) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "title":
		return func(a, b models.Todo) bool { return a.Title < b.Title }
	case "priority":
		return func(a, b models.Todo) bool { return a.Priority < b.Priority }
	case "completed":
		return func(a, b models.Todo) bool { return !a.Completed && b.Completed }
	default:
		return nil
	}
}
