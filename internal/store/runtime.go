package store

import (
	"database/sql"
	"fmt"
	"strconv"
)

const lastCheckKey = "last_check_ms"

// LastFired returns when an alert last fired, milliseconds since epoch.
// ok is false when the alert has never fired.
func (s *Store) LastFired(alertID string) (int64, bool, error) {
	var ms int64
	err := s.db.QueryRow("SELECT last_fired_ms FROM alert_runtime WHERE alert_id = ?", alertID).Scan(&ms)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading last-fired time: %w", err)
	}
	return ms, true, nil
}

// MarkFired records an alert fire time.
func (s *Store) MarkFired(alertID string, atMillis int64) error {
	_, err := s.db.Exec(`
		INSERT INTO alert_runtime (alert_id, last_fired_ms) VALUES (?, ?)
		ON CONFLICT(alert_id) DO UPDATE SET last_fired_ms = excluded.last_fired_ms
	`, alertID, atMillis)
	if err != nil {
		return fmt.Errorf("recording fire time: %w", err)
	}
	return nil
}

// LastCheck returns when the last full alert pass ran, zero if never.
func (s *Store) LastCheck() (int64, error) {
	raw, ok, err := s.getMeta(lastCheckKey)
	if err != nil || !ok {
		return 0, err
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil
	}
	return ms, nil
}

// SetLastCheck records the time of a full alert pass.
func (s *Store) SetLastCheck(atMillis int64) error {
	return s.setMeta(lastCheckKey, strconv.FormatInt(atMillis, 10))
}
