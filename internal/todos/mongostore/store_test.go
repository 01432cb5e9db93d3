package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/the-todo-app/todo-backend/internal/todos"
)

func TestInvalidIDShortCircuits(t *testing.T) {
	// A nil collection proves the id is rejected before any storage call.
	s := NewStore(nil)

	_, err := s.SetDone(context.Background(), "", "not-an-object-id", true)
	assert.ErrorIs(t, err, todos.ErrInvalidID)

	_, err = s.Delete(context.Background(), "", "not-an-object-id")
	assert.ErrorIs(t, err, todos.ErrInvalidID)
}

// setupTestCollection connects to a running MongoDB instance.
// Skips the test if TEST_MONGO_URI is not set.
func setupTestCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping MongoDB integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	col := client.Database("the_todo_app_test").Collection("todos")
	require.NoError(t, col.Drop(ctx))
	return col
}

func TestStoreCRUD(t *testing.T) {
	col := setupTestCollection(t)
	s := NewStore(col)
	ctx := context.Background()

	created, err := s.Create(ctx, "", "buy milk", true)
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "buy milk", created.Title)
	// done is forced false at creation regardless of the argument.
	assert.False(t, created.Done)

	items, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)

	_, err = s.SetDone(ctx, "", created.ID.Hex(), true)
	require.NoError(t, err)

	items, err = s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Done)

	removed, err := s.Delete(ctx, "", created.ID.Hex())
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.Delete(ctx, "", created.ID.Hex())
	assert.ErrorIs(t, err, todos.ErrNotFound)

	items, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreNotFound(t *testing.T) {
	col := setupTestCollection(t)
	s := NewStore(col)
	ctx := context.Background()

	missing := "64b0c0ffee0ddba11ca7e57a"

	_, err := s.SetDone(ctx, "", missing, true)
	assert.ErrorIs(t, err, todos.ErrNotFound)

	_, err = s.Delete(ctx, "", missing)
	assert.ErrorIs(t, err, todos.ErrNotFound)
}

func TestStoreOwnerScoping(t *testing.T) {
	col := setupTestCollection(t)
	s := NewStore(col)
	ctx := context.Background()

	mine, err := s.Create(ctx, "alice", "alice's", false)
	require.NoError(t, err)
	assert.Equal(t, "alice", mine.Owner)

	_, err = s.Create(ctx, "bob", "bob's", false)
	require.NoError(t, err)

	items, err := s.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alice's", items[0].Title)

	// Another owner can neither update nor delete, and the item is untouched.
	_, err = s.SetDone(ctx, "bob", mine.ID.Hex(), true)
	assert.ErrorIs(t, err, todos.ErrNotFound)

	_, err = s.Delete(ctx, "bob", mine.ID.Hex())
	assert.ErrorIs(t, err, todos.ErrNotFound)

	items, err = s.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Done)

	// Unscoped list sees both tenants (single-tenant deployments pass "").
	items, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
