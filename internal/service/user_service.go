package service

import (
	"sync"

	"github.com/gaon-hs/gaon-portal-api/internal/models"
)

// GuestKey scopes callers that present no device identity.
const GuestKey = "guest"

// UserConfigService holds portal preferences per caller identity. Updates
// are last-writer-wins within a key; the store lives only for the process
// lifetime.
type UserConfigService struct {
	mu      sync.RWMutex
	records map[string]models.UserConfig
}

func NewUserConfigService() *UserConfigService {
	return &UserConfigService{records: make(map[string]models.UserConfig)}
}

// Get returns the caller's record, or the default record if none was written.
func (s *UserConfigService) Get(key string) models.UserConfig {
	if key == "" {
		key = GuestKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cfg, ok := s.records[key]; ok {
		return cfg
	}
	return models.DefaultUserConfig()
}

// Update merges non-nil fields of patch into the caller's record and returns
// the result.
func (s *UserConfigService) Update(key string, patch models.UserConfigPatch) models.UserConfig {
	if key == "" {
		key = GuestKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.records[key]
	if !ok {
		cfg = models.DefaultUserConfig()
	}
	if patch.Nickname != nil {
		cfg.Nickname = *patch.Nickname
	}
	if patch.Gender != nil {
		cfg.Gender = patch.Gender
	}
	if patch.Language != nil {
		cfg.Language = *patch.Language
	}
	if patch.Instructions != nil {
		cfg.Instructions = patch.Instructions
	}

	s.records[key] = cfg
	return cfg
}
