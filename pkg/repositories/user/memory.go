package user

import (
	"context"
	"strings"
	"sync"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

// MemoryRepository implements Repository using in-memory storage
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

// NewMemoryRepository creates a new in-memory user repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*entities.User),
		byID:    make(map[string]*entities.User),
	}
}

// GetByEmail retrieves a user by email address
func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, ErrUserNotFound
	}

	// Return a copy to prevent concurrent modification
	userCopy := *u
	return &userCopy, nil
}

// GetByID retrieves a user by ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.byID[id]
	if !exists {
		return nil, ErrUserNotFound
	}

	userCopy := *u
	return &userCopy, nil
}

// Save creates a new user
func (r *MemoryRepository) Save(ctx context.Context, u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrUserExists
	}

	userCopy := *u
	r.byEmail[key] = &userCopy
	r.byID[u.ID] = &userCopy
	return nil
}

// Update overwrites an existing user's record
func (r *MemoryRepository) Update(ctx context.Context, u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; !exists {
		return ErrUserNotFound
	}

	userCopy := *u
	r.byEmail[strings.ToLower(u.Email)] = &userCopy
	r.byID[u.ID] = &userCopy
	return nil
}
