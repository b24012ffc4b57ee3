package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

const createUsersTableSQL = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL,
		password TEXT NOT NULL,
		avatar TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite user repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(createUsersTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating users table: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// GetByEmail retrieves a user by email address
func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx,
		`SELECT id, email, username, password, COALESCE(avatar, ''), created_at FROM users WHERE email = ?`,
		strings.ToLower(email))
}

// GetByID retrieves a user by ID
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return r.getOne(ctx,
		`SELECT id, email, username, password, COALESCE(avatar, ''), created_at FROM users WHERE id = ?`,
		id)
}

// Save creates a new user
func (r *SQLiteRepository) Save(ctx context.Context, u *entities.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, username, password, avatar, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, strings.ToLower(u.Email), u.Username, u.Password, u.Avatar,
		u.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUserExists
		}
		return fmt.Errorf("error saving user: %w", err)
	}
	return nil
}

// Update overwrites an existing user's record
func (r *SQLiteRepository) Update(ctx context.Context, u *entities.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET email = ?, username = ?, password = ?, avatar = ? WHERE id = ?`,
		strings.ToLower(u.Email), u.Username, u.Password, u.Avatar, u.ID)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking update result: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) getOne(ctx context.Context, query string, arg string) (*entities.User, error) {
	var u entities.User
	var createdAt string

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.Password,
		&u.Avatar,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	// SQLite stores timestamps in a few formats depending on how the
	// row was written.
	for _, format := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05Z"} {
		if t, parseErr := time.Parse(format, createdAt); parseErr == nil {
			u.CreatedAt = t
			break
		}
	}

	return &u, nil
}
