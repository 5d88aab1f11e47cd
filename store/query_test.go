package store

import (
	"testing"

	"github.com/jalexanderII/todos-railway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleTodo() models.Todo {
	return models.Todo{
		Title:         "write report",
		Priority:      models.PriorityHigh,
		Tags:          []string{"work", "writing"},
		AssignedUsers: []string{"@colt", "@mike"},
		UserID:        primitive.NewObjectID(),
	}
}

func TestTodoQueryMatchesTagsAsUnion(t *testing.T) {
	todo := sampleTodo()

	assert.True(t, TodoQuery{Tags: []string{"work", "urgent"}}.Matches(todo))
	assert.True(t, TodoQuery{Tags: []string{"writing"}}.Matches(todo))
	assert.False(t, TodoQuery{Tags: []string{"urgent", "home"}}.Matches(todo))
}

func TestTodoQueryDimensionsCompose(t *testing.T) {
	todo := sampleTodo()

	// tags match but priority does not: AND across dimensions
	q := TodoQuery{Tags: []string{"work"}, Priority: models.PriorityLow}
	assert.False(t, q.Matches(todo))

	q.Priority = models.PriorityHigh
	assert.True(t, q.Matches(todo))
}

func TestTodoQueryMatchesAssigneesEitherSpelling(t *testing.T) {
	todo := sampleTodo()

	assert.True(t, TodoQuery{AssignedTo: []string{"colt"}}.Matches(todo))
	assert.True(t, TodoQuery{AssignedTo: []string{"@colt"}}.Matches(todo))
	assert.False(t, TodoQuery{AssignedTo: []string{"alice"}}.Matches(todo))
}

func TestTodoQueryMatchesOwner(t *testing.T) {
	todo := sampleTodo()
	other := primitive.NewObjectID()

	assert.True(t, TodoQuery{OwnerID: &todo.UserID}.Matches(todo))
	assert.False(t, TodoQuery{OwnerID: &other}.Matches(todo))
}

func TestTodoQuerySortDefaults(t *testing.T) {
	q := TodoQuery{}
	assert.Equal(t, "createdAt", q.SortField())
	assert.True(t, q.Descending())

	q = TodoQuery{SortBy: "title", Order: "asc"}
	assert.Equal(t, "title", q.SortField())
	assert.False(t, q.Descending())

	// anything but asc sorts descending
	assert.True(t, TodoQuery{Order: "bogus"}.Descending())
}

func TestBuildTodoFilter(t *testing.T) {
	owner := primitive.NewObjectID()
	q := TodoQuery{
		Tags:       []string{"work", "urgent"},
		Priority:   models.PriorityHigh,
		AssignedTo: []string{"colt"},
		OwnerID:    &owner,
	}

	filter := buildTodoFilter(q)
	require.Len(t, filter, 4)
	assert.Equal(t, bson.M{"$in": []string{"work", "urgent"}}, filter["tags"])
	assert.Equal(t, models.PriorityHigh, filter["priority"])
	assert.Equal(t, bson.M{"$in": []string{"colt", "@colt"}}, filter["assignedUsers"])
	assert.Equal(t, owner, filter["userId"])
}

func TestBuildTodoFilterEmptyQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, buildTodoFilter(TodoQuery{}))
}

func TestBuildTodoSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, buildTodoSort(TodoQuery{}))
	assert.Equal(t, bson.D{{Key: "priority", Value: 1}}, buildTodoSort(TodoQuery{SortBy: "priority", Order: "asc"}))
}
