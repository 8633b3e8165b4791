package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/surfscope/surfscope/internal/models"
)

// SaveSnapshot stores the most recently viewed spot and its merged
// forecast so the dashboard can restore on startup and the alert
// checker has data to fall back on.
func (s *Store) SaveSnapshot(spot models.Spot, data *models.MergedForecast) error {
	spotJSON, err := json.Marshal(spot)
	if err != nil {
		return fmt.Errorf("encoding snapshot spot: %w", err)
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding snapshot forecast: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO last_snapshot (id, spot_json, data_json, fetched_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			spot_json = excluded.spot_json,
			data_json = excluded.data_json,
			fetched_at = excluded.fetched_at
	`, string(spotJSON), string(dataJSON), data.FetchedAt.Unix())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// LastSnapshot returns the stored snapshot, or (nil, nil, nil) when
// none exists or the stored JSON no longer decodes.
func (s *Store) LastSnapshot() (*models.Spot, *models.MergedForecast, error) {
	var spotJSON, dataJSON string
	err := s.db.QueryRow("SELECT spot_json, data_json FROM last_snapshot WHERE id = 1").Scan(&spotJSON, &dataJSON)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var spot models.Spot
	if err := json.Unmarshal([]byte(spotJSON), &spot); err != nil {
		return nil, nil, nil
	}
	var data models.MergedForecast
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return nil, nil, nil
	}
	return &spot, &data, nil
}
