package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/the-todo-app/todo-backend/internal/todos"
)

// Todo is the relational shape of an item. The id is the serial primary key
// and serializes as a bare integer.
type Todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Store runs todo operations against the todos table. The table is expected
// to exist already (id bigserial primary key, title text not null, done
// boolean not null); no migration is performed here.
//
// The relational backend is single-tenant: the owner argument is part of the
// shared store contract and is ignored.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context, _ string) ([]Todo, error) {
	const q = `
select id, title, done
from todos
order by id asc;
`
	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	out := make([]Todo, 0, 16)
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Done); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return out, nil
}

// Create inserts the item with the caller supplied done flag and reads the
// stored row back through RETURNING.
func (s *Store) Create(ctx context.Context, _ string, title string, done bool) (*Todo, error) {
	const q = `
insert into todos (title, done)
values ($1, $2)
returning id, title, done;
`
	var t Todo
	if err := s.db.QueryRow(ctx, q, title, done).Scan(&t.ID, &t.Title, &t.Done); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &t, nil
}

// SetDone updates the matching row and returns the updated item.
func (s *Store) SetDone(ctx context.Context, _ string, id string, done bool) (*Todo, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	const q = `
update todos
set done = $2
where id = $1
returning id, title, done;
`
	var t Todo
	if err := s.db.QueryRow(ctx, q, key, done).Scan(&t.ID, &t.Title, &t.Done); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, todos.ErrNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return &t, nil
}

func (s *Store) Delete(ctx context.Context, _ string, id string) (bool, error) {
	key, err := parseID(id)
	if err != nil {
		return false, err
	}

	const q = `
delete from todos
where id = $1;
`
	ct, err := s.db.Exec(ctx, q, key)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	if ct.RowsAffected() != 1 {
		return false, todos.ErrNotFound
	}
	return true, nil
}

func parseID(id string) (int64, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, todos.ErrInvalidID
	}
	return key, nil
}
