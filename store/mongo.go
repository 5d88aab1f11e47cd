package store

import (
	"context"

	"github.com/jalexanderII/todos-railway/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserStore struct {
	Col *mongo.Collection
}

func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{Col: col}
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	cursor, err := s.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.Col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID == primitive.NilObjectID {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.Col.InsertOne(ctx, user)
	return err
}

func (s *MongoUserStore) DeleteAll(ctx context.Context) error {
	_, err := s.Col.DeleteMany(ctx, bson.M{})
	return err
}

type MongoTodoStore struct {
	Col *mongo.Collection
}

func NewMongoTodoStore(col *mongo.Collection) *MongoTodoStore {
	return &MongoTodoStore{Col: col}
}

// buildTodoFilter compiles a TodoQuery into the bson filter document.
// Semantics mirror TodoQuery.Matches.
func buildTodoFilter(q TodoQuery) bson.M {
	filter := bson.M{}
	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$in": q.Tags}
	}
	if q.Priority != "" {
		filter["priority"] = q.Priority
	}
	if len(q.AssignedTo) > 0 {
		filter["assignedUsers"] = bson.M{"$in": assigneeVariants(q.AssignedTo)}
	}
	if q.OwnerID != nil {
		filter["userId"] = *q.OwnerID
	}
	return filter
}

func buildTodoSort(q TodoQuery) bson.D {
	direction := -1
	if !q.Descending() {
		direction = 1
	}
	return bson.D{{Key: q.SortField(), Value: direction}}
}

func (s *MongoTodoStore) Find(ctx context.Context, q TodoQuery) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	opts := options.Find().SetSort(buildTodoSort(q))
	cursor, err := s.Col.Find(ctx, buildTodoFilter(q), opts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *MongoTodoStore) All(ctx context.Context) ([]models.Todo, error) {
	return s.Find(ctx, TodoQuery{})
}

func (s *MongoTodoStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	var todo models.Todo
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *MongoTodoStore) Insert(ctx context.Context, todo *models.Todo) error {
	if todo.ID == primitive.NilObjectID {
		todo.ID = primitive.NewObjectID()
	}
	_, err := s.Col.InsertOne(ctx, todo)
	return err
}

func (s *MongoTodoStore) Replace(ctx context.Context, todo *models.Todo) error {
	res, err := s.Col.ReplaceOne(ctx, bson.M{"_id": todo.ID}, todo)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoTodoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoTodoStore) DeleteAll(ctx context.Context) error {
	_, err := s.Col.DeleteMany(ctx, bson.M{})
	return err
}
