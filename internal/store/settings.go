package store

import (
	"encoding/json"
	"fmt"

	"github.com/surfscope/surfscope/internal/models"
)

const settingsKey = "settings"

// LoadSettings reads the persisted settings, merged over defaults so
// fields added after an upgrade pick up their default value. A missing or
// unreadable record yields the defaults.
func (s *Store) LoadSettings() (models.Settings, error) {
	set := models.DefaultSettings()

	raw, ok, err := s.getMeta(settingsKey)
	if err != nil {
		return set, err
	}
	if ok {
		// Unmarshal over the defaults; absent fields keep them.
		if err := json.Unmarshal([]byte(raw), &set); err != nil {
			return models.DefaultSettings(), nil
		}
	}
	set.Clamp()
	return set, nil
}

// SaveSettings persists the settings record.
func (s *Store) SaveSettings(set models.Settings) error {
	set.Clamp()
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return s.setMeta(settingsKey, string(raw))
}
