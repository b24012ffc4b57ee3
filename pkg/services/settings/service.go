package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/goldchip/pocketcasino/pkg/storage"
)

const storageKey = "app_settings"

// Settings is the closed set of persisted preference flags.
type Settings struct {
	HapticEnabled     bool   `json:"hapticEnabled"`
	SoundEnabled      bool   `json:"soundEnabled"`
	AnimationsEnabled bool   `json:"animationsEnabled"`
	Theme             string `json:"theme"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		HapticEnabled:     true,
		SoundEnabled:      true,
		AnimationsEnabled: true,
		Theme:             "dark",
	}
}

// Service persists the settings record in local storage.
type Service struct {
	store  storage.Store
	logger zerolog.Logger
}

// NewService creates a settings service.
func NewService(store storage.Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "settings").Logger(),
	}
}

// Load returns the persisted settings, falling back to defaults on
// missing or corrupt data.
func (s *Service) Load(ctx context.Context) Settings {
	raw, err := s.store.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Msg("failed to load settings, using defaults")
		}
		return Default()
	}

	settings := Default()
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn().Err(err).Msg("stored settings are corrupt, using defaults")
		return Default()
	}
	return settings
}

// Save persists the full settings record.
func (s *Service) Save(ctx context.Context, settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storageKey, string(data))
}
