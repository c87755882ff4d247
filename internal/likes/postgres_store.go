package likes

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL-backed like store
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// EnsureSchema creates the artworks table if it does not exist.
func (s *PostgresStore) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS artworks (
			id TEXT PRIMARY KEY,
			likes INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := s.db.Exec(query)
	return err
}

// List returns all records ordered by id.
func (s *PostgresStore) List() ([]Record, error) {
	records := make([]Record, 0) // Initialize to empty array, not nil

	rows, err := s.db.Query("SELECT id, likes FROM artworks ORDER BY id")
	if err != nil {
		log.Printf("Error querying artworks: %v", err)
		return records, err
	}
	defer rows.Close()

	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Likes); err != nil {
			continue
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *PostgresStore) Get(id string) (*Record, error) {
	var r Record
	err := s.db.QueryRow("SELECT id, likes FROM artworks WHERE id = $1", id).Scan(&r.ID, &r.Likes)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create registers an artwork with zero likes.
func (s *PostgresStore) Create(id string) (*Record, error) {
	query := `
		INSERT INTO artworks (id, likes)
		VALUES ($1, 0)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, likes
	`

	var r Record
	err := s.db.QueryRow(query, id).Scan(&r.ID, &r.Likes)
	if err == sql.ErrNoRows {
		return nil, ErrExists
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Increment adds one like in a single atomic read-modify-write.
func (s *PostgresStore) Increment(id string) (*Record, error) {
	query := `
		UPDATE artworks
		SET likes = likes + 1
		WHERE id = $1
		RETURNING id, likes
	`

	var r Record
	err := s.db.QueryRow(query, id).Scan(&r.ID, &r.Likes)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Decrement removes one like, flooring at zero server-side.
func (s *PostgresStore) Decrement(id string) (*Record, error) {
	query := `
		UPDATE artworks
		SET likes = GREATEST(likes - 1, 0)
		WHERE id = $1
		RETURNING id, likes
	`

	var r Record
	err := s.db.QueryRow(query, id).Scan(&r.ID, &r.Likes)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Count returns the total number of registered artworks
func (s *PostgresStore) Count() int {
	var count int
	s.db.QueryRow("SELECT COUNT(*) FROM artworks").Scan(&count)
	return count
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
