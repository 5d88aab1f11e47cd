package store

import (
	"context"
	"errors"

	"github.com/jalexanderII/todos-railway/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by lookups when no document matches.
var ErrNotFound = errors.New("document not found")

// TodoQuery is the recognized filter configuration for listing todos.
// Dimensions compose with AND; Tags and AssignedTo match on set
// intersection (OR within the dimension).
type TodoQuery struct {
	Tags       []string
	Priority   string
	AssignedTo []string
	OwnerID    *primitive.ObjectID
	SortBy     string
	Order      string
}

// Matches applies the query's predicate to a single todo. This is the
// reference semantics; the Mongo store compiles the same predicate to a
// bson filter.
func (q TodoQuery) Matches(t models.Todo) bool {
	if len(q.Tags) > 0 && !intersects(t.Tags, q.Tags) {
		return false
	}
	if q.Priority != "" && t.Priority != q.Priority {
		return false
	}
	if len(q.AssignedTo) > 0 && !intersects(t.AssignedUsers, assigneeVariants(q.AssignedTo)) {
		return false
	}
	if q.OwnerID != nil && t.UserID != *q.OwnerID {
		return false
	}
	return true
}

// Descending reports the sort direction; everything but "asc" sorts
// newest-first, matching the list endpoint's default.
func (q TodoQuery) Descending() bool {
	return q.Order != "asc"
}

// SortField defaults to createdAt. Unrecognized field names are passed
// through to the store unvalidated.
func (q TodoQuery) SortField() string {
	if q.SortBy == "" {
		return "createdAt"
	}
	return q.SortBy
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// assigneeVariants widens each requested assignee to both its bare and
// "@"-prefixed spelling, so callers may filter with either form.
func assigneeVariants(names []string) []string {
	out := make([]string, 0, len(names)*2)
	for _, n := range names {
		bare := models.BareUsername(n)
		out = append(out, bare, "@"+bare)
	}
	return out
}

type UserStore interface {
	All(ctx context.Context) ([]models.User, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	DeleteAll(ctx context.Context) error
}

type TodoStore interface {
	Find(ctx context.Context, q TodoQuery) ([]models.Todo, error)
	All(ctx context.Context) ([]models.Todo, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	Insert(ctx context.Context, todo *models.Todo) error
	// Replace overwrites the stored document wholesale. The surrounding
	// read-modify-write is not atomic; concurrent updates are last write
	// wins.
	Replace(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}
