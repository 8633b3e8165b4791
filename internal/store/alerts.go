package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/surfscope/surfscope/internal/models"
)

const maxAlerts = 250

// SaveAlert inserts or updates an alert.
func (s *Store) SaveAlert(a *models.Alert) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.Name == "" {
		a.Name = "Surf alert"
	}

	spotIDs, err := json.Marshal(a.SpotIDs)
	if err != nil {
		return fmt.Errorf("encoding spot ids: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO alerts (id, name, enabled, spot_ids, min_hs_m, min_swell_h_m, min_swell_p_s,
			min_index, max_wind_kmh, wind_dir_center, wind_dir_tol, look_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			enabled = excluded.enabled,
			spot_ids = excluded.spot_ids,
			min_hs_m = excluded.min_hs_m,
			min_swell_h_m = excluded.min_swell_h_m,
			min_swell_p_s = excluded.min_swell_p_s,
			min_index = excluded.min_index,
			max_wind_kmh = excluded.max_wind_kmh,
			wind_dir_center = excluded.wind_dir_center,
			wind_dir_tol = excluded.wind_dir_tol,
			look_hours = excluded.look_hours
	`, a.ID, a.Name, a.Enabled, string(spotIDs),
		nullable(a.MinHs), nullable(a.MinSwellH), nullable(a.MinSwellP),
		nullable(a.MinIndex), nullable(a.MaxWind), nullable(a.WindDirCenter),
		a.Tolerance(), a.Look(), a.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving alert: %w", err)
	}

	_, err = s.db.Exec(`
		DELETE FROM alerts WHERE id IN (
			SELECT id FROM alerts ORDER BY rowid DESC LIMIT -1 OFFSET ?
		)
	`, maxAlerts)
	if err != nil {
		return fmt.Errorf("trimming alerts: %w", err)
	}
	return nil
}

// ListAlerts returns all alerts, newest first.
func (s *Store) ListAlerts() ([]models.Alert, error) {
	rows, err := s.db.Query(`
		SELECT id, name, enabled, spot_ids, min_hs_m, min_swell_h_m, min_swell_p_s,
			min_index, max_wind_kmh, wind_dir_center, wind_dir_tol, look_hours, created_at
		FROM alerts ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		var spotIDs string
		var minHs, minSwellH, minSwellP, minIdx, maxWind, windCenter sql.NullFloat64

		if err := rows.Scan(&a.ID, &a.Name, &a.Enabled, &spotIDs, &minHs, &minSwellH, &minSwellP,
			&minIdx, &maxWind, &windCenter, &a.WindDirTol, &a.LookHours, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}

		if err := json.Unmarshal([]byte(spotIDs), &a.SpotIDs); err != nil {
			return nil, fmt.Errorf("decoding spot ids: %w", err)
		}
		a.MinHs = ptr(minHs)
		a.MinSwellH = ptr(minSwellH)
		a.MinSwellP = ptr(minSwellP)
		a.MinIndex = ptr(minIdx)
		a.MaxWind = ptr(maxWind)
		a.WindDirCenter = ptr(windCenter)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// SetAlertEnabled flips an alert's enabled flag.
func (s *Store) SetAlertEnabled(id string, enabled bool) error {
	if _, err := s.db.Exec("UPDATE alerts SET enabled = ? WHERE id = ?", enabled, id); err != nil {
		return fmt.Errorf("toggling alert: %w", err)
	}
	return nil
}

// DeleteAlert removes an alert and its runtime record.
func (s *Store) DeleteAlert(id string) error {
	if _, err := s.db.Exec("DELETE FROM alerts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting alert: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM alert_runtime WHERE alert_id = ?", id); err != nil {
		return fmt.Errorf("deleting alert runtime: %w", err)
	}
	return nil
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
