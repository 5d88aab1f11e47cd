package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Note is an append-only annotation on a Todo. Date is kept as the
// caller-supplied string, not parsed server-side.
type Note struct {
	Content string `json:"content" bson:"content"`
	Date    string `json:"date" bson:"date"`
}

type Todo struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Priority      string             `json:"priority" bson:"priority"`
	Completed     bool               `json:"completed" bson:"completed"`
	Tags          []string           `json:"tags" bson:"tags"`
	AssignedUsers []string           `json:"assignedUsers" bson:"assignedUsers"`
	Notes         []Note             `json:"notes" bson:"notes"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// ValidPriority reports whether p is one of the three recognized levels.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// NormalizeAssignee returns the canonical stored form of an assigned
// username: always "@" + bare username, whatever the caller sent.
func NormalizeAssignee(username string) string {
	return "@" + strings.TrimPrefix(username, "@")
}

// BareUsername strips the "@" display prefix, if present.
func BareUsername(assignee string) string {
	return strings.TrimPrefix(assignee, "@")
}

type CreateTodoRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	Tags          []string `json:"tags"`
	AssignedUsers []string `json:"assignedUsers"`
	Notes         []Note   `json:"notes"`
	UserID        string   `json:"userId"`
}

// UpdateTodoRequest uses pointer fields so the handler can tell "absent from
// the payload" apart from "explicitly set to the zero value". Only present
// fields overwrite the stored todo.
type UpdateTodoRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Priority      *string   `json:"priority"`
	Completed     *bool     `json:"completed"`
	Tags          *[]string `json:"tags"`
	AssignedUsers *[]string `json:"assignedUsers"`
	UserID        string    `json:"userId"`
}

type DeleteTodoRequest struct {
	UserID string `json:"userId"`
}

type AddNoteRequest struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}
