package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/the-todo-app/todo-backend/internal/todos"
)

// Todo is the document-store shape of an item. The id serializes as the hex
// object id string.
type Todo struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
	Done  bool               `bson:"done" json:"done"`
	Owner string             `bson:"owner,omitempty" json:"owner,omitempty"`
}

// Store runs todo operations against a single mongo collection. An empty
// owner on a call leaves the filter unscoped (single-tenant mode); a non-empty
// owner is part of every filter, so items are never visible or mutable across
// tenants.
type Store struct {
	col *mongo.Collection
}

func NewStore(col *mongo.Collection) *Store {
	return &Store{col: col}
}

func (s *Store) List(ctx context.Context, owner string) ([]Todo, error) {
	cur, err := s.col.Find(ctx, s.filter(owner))
	if err != nil {
		return nil, fmt.Errorf("find todos: %w", err)
	}

	out := make([]Todo, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return out, nil
}

// Create inserts the item with done forced to false regardless of the caller
// supplied value, matching the document-store creation contract.
func (s *Store) Create(ctx context.Context, owner, title string, _ bool) (*Todo, error) {
	t := Todo{Title: title, Done: false, Owner: owner}

	res, err := s.col.InsertOne(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert todo: unexpected inserted id type %T", res.InsertedID)
	}

	t.ID = oid
	return &t, nil
}

func (s *Store) SetDone(ctx context.Context, owner, id string, done bool) (*Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, todos.ErrInvalidID
	}

	filter := s.filter(owner)
	filter["_id"] = oid

	res, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"done": done}})
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount != 1 {
		return nil, todos.ErrNotFound
	}
	return nil, nil
}

func (s *Store) Delete(ctx context.Context, owner, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, todos.ErrInvalidID
	}

	filter := s.filter(owner)
	filter["_id"] = oid

	res, err := s.col.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount != 1 {
		return false, todos.ErrNotFound
	}
	return true, nil
}

func (s *Store) filter(owner string) bson.M {
	f := bson.M{}
	if owner != "" {
		f["owner"] = owner
	}
	return f
}
