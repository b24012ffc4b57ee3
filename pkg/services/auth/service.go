package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goldchip/pocketcasino/pkg/entities"
	user "github.com/goldchip/pocketcasino/pkg/repositories/user"
	"github.com/goldchip/pocketcasino/pkg/storage"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

const (
	tokenKey    = "auth_token"
	tokenPrefix = "mock_token_"
)

// WalletResetter lets signup hand a fresh account a fresh wallet.
type WalletResetter interface {
	ResetWallet(ctx context.Context) error
}

// Service implements device-local mock authentication. There is no
// server: credentials live in the user repository and the session
// token in local storage. Passwords are compared as-is.
type Service struct {
	users   user.Repository
	store   storage.Store
	wallets WalletResetter
	logger  zerolog.Logger
}

// NewService creates an auth service.
func NewService(users user.Repository, store storage.Store, wallets WalletResetter, logger zerolog.Logger) *Service {
	return &Service{
		users:   users,
		store:   store,
		wallets: wallets,
		logger:  logger.With().Str("component", "auth").Logger(),
	}
}

// SignUp registers a new account, opens a session for it and resets
// the wallet to the starting balance.
func (s *Service) SignUp(ctx context.Context, email, username, password string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	u := &entities.User{
		ID:        uuid.New().String(),
		Email:     email,
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	}

	if err := s.users.Save(ctx, u); err != nil {
		if errors.Is(err, user.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	if err := s.openSession(ctx, u.ID); err != nil {
		return nil, err
	}

	// A fresh account starts from the default wallet. A storage
	// failure here must not undo the signup.
	if err := s.wallets.ResetWallet(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset wallet for new account")
	}

	s.logger.Info().Str("user_id", u.ID).Msg("account created")
	return u, nil
}

// Login verifies the credentials and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (*entities.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if u.Password != password {
		return nil, ErrInvalidCredentials
	}

	if err := s.openSession(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout discards the stored session token.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, tokenKey)
}

// CurrentUser resolves the stored session token to its account.
func (s *Service) CurrentUser(ctx context.Context) (*entities.User, error) {
	token, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	id := strings.TrimPrefix(token, tokenPrefix)
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return u, nil
}

// ForgotPassword pretends to send a reset email. Mock auth: it always
// reports success so no account presence leaks.
func (s *Service) ForgotPassword(ctx context.Context, email string) bool {
	return true
}

// ChangePassword updates the signed-in user's password after checking
// the current one.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if u.Password != currentPassword {
		return ErrInvalidCredentials
	}

	u.Password = newPassword
	return s.users.Update(ctx, u)
}

func (s *Service) openSession(ctx context.Context, userID string) error {
	return s.store.Set(ctx, tokenKey, tokenPrefix+userID)
}
