// Package recipestore persists sentinel reconstruction recipes in a SQLite
// database. It's the "external collaborator" on the sentinel serialization
// boundary: the registry guarantees identity within a process, and this
// store carries the (name, display, truthy, namespace) recipes a fresh
// process needs to rebuild equivalent sentinels.
//
// The store deliberately mirrors the registry's first-write-wins rule: a
// recipe saved for an already stored (namespace, name) is a no-op, so the
// database can never disagree with the registry about a sentinel's
// attributes.
package recipestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sentinelmark/sentinel"
)

// ErrNotFound is returned by Load when no recipe is stored for a key.
var ErrNotFound = errors.New("recipe not found")

const schema = `
CREATE TABLE IF NOT EXISTS sentinel_recipe (
    namespace TEXT NOT NULL,
    name      TEXT NOT NULL,
    display   TEXT NOT NULL,
    truthy    INTEGER NOT NULL,
    PRIMARY KEY (namespace, name)
);`

// Store persists recipes in a single SQLite table. Safe for concurrent use
// to the extent the underlying *sql.DB is.
type Store struct {
	db *sql.DB
}

// Open opens a store backed by the SQLite database at dsn, creating the
// database file if necessary. Use ":memory:" for an ephemeral store; note
// that in-memory SQLite databases are per-connection, so the pool is capped
// at a single connection to keep every query on the same database.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Migrate creates the backing table if it doesn't exist. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrating recipe store: %w", err)
	}
	return nil
}

// Save stores a recipe. If a recipe already exists for the same
// (namespace, name), the existing row wins and Save is a no-op.
func (s *Store) Save(ctx context.Context, recipe sentinel.Recipe) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sentinel_recipe (namespace, name, display, truthy)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, name) DO NOTHING`,
		recipe.Namespace, recipe.Name, recipe.Display, recipe.Truthy)
	if err != nil {
		return fmt.Errorf("saving recipe %q/%q: %w", recipe.Namespace, recipe.Name, err)
	}
	return nil
}

// Load fetches the recipe stored for (namespace, name). Returns ErrNotFound
// when no such recipe exists.
func (s *Store) Load(ctx context.Context, namespace, name string) (sentinel.Recipe, error) {
	var recipe sentinel.Recipe
	err := s.db.QueryRowContext(ctx, `
		SELECT namespace, name, display, truthy
		FROM sentinel_recipe
		WHERE namespace = ? AND name = ?`,
		namespace, name,
	).Scan(&recipe.Namespace, &recipe.Name, &recipe.Display, &recipe.Truthy)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return sentinel.Recipe{}, ErrNotFound
	case err != nil:
		return sentinel.Recipe{}, fmt.Errorf("loading recipe %q/%q: %w", namespace, name, err)
	}
	return recipe, nil
}

// All returns every stored recipe ordered by (namespace, name).
func (s *Store) All(ctx context.Context) ([]sentinel.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT namespace, name, display, truthy
		FROM sentinel_recipe
		ORDER BY namespace, name`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []sentinel.Recipe
	for rows.Next() {
		var recipe sentinel.Recipe
		if err := rows.Scan(&recipe.Namespace, &recipe.Name, &recipe.Display, &recipe.Truthy); err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

// Restore obtains a sentinel in registry for every stored recipe, returning
// the number of recipes processed. By the registry's idempotency guarantee
// this is safe to run against a registry that already has some or all of the
// sentinels: existing entries are returned untouched.
func (s *Store) Restore(ctx context.Context, registry *sentinel.Registry) (int, error) {
	recipes, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	for _, recipe := range recipes {
		if _, err := registry.FromRecipe(recipe); err != nil {
			return 0, fmt.Errorf("restoring recipe %q/%q: %w", recipe.Namespace, recipe.Name, err)
		}
	}
	return len(recipes), nil
}
