package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/surfscope/surfscope/internal/models"
)

// Favorites are capped; the oldest beyond the cap are dropped on save.
const maxFavorites = 120

// SaveFavorite inserts or updates a favorite keyed by spot id.
func (s *Store) SaveFavorite(f *models.Favorite) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	var face sql.NullFloat64
	if f.FaceDeg != nil {
		face = sql.NullFloat64{Float64: *f.FaceDeg, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO favorites (id, name, admin1, country, latitude, longitude, face_deg, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			admin1 = excluded.admin1,
			country = excluded.country,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			face_deg = excluded.face_deg
	`, f.ID, f.Name, f.Admin1, f.Country, f.Lat, f.Lon, face, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving favorite: %w", err)
	}

	_, err = s.db.Exec(`
		DELETE FROM favorites WHERE id IN (
			SELECT id FROM favorites ORDER BY rowid DESC LIMIT -1 OFFSET ?
		)
	`, maxFavorites)
	if err != nil {
		return fmt.Errorf("trimming favorites: %w", err)
	}
	return nil
}

// ListFavorites returns all favorites, newest first.
func (s *Store) ListFavorites() ([]models.Favorite, error) {
	rows, err := s.db.Query(`
		SELECT id, name, admin1, country, latitude, longitude, face_deg, created_at
		FROM favorites ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	var favs []models.Favorite
	for rows.Next() {
		var f models.Favorite
		var admin1, country sql.NullString
		var face sql.NullFloat64

		if err := rows.Scan(&f.ID, &f.Name, &admin1, &country, &f.Lat, &f.Lon, &face, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		f.Admin1 = admin1.String
		f.Country = country.String
		if face.Valid {
			v := face.Float64
			f.FaceDeg = &v
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

// GetFavorite looks up one favorite by spot id.
func (s *Store) GetFavorite(id string) (*models.Favorite, bool, error) {
	var f models.Favorite
	var admin1, country sql.NullString
	var face sql.NullFloat64

	err := s.db.QueryRow(`
		SELECT id, name, admin1, country, latitude, longitude, face_deg, created_at
		FROM favorites WHERE id = ?
	`, id).Scan(&f.ID, &f.Name, &admin1, &country, &f.Lat, &f.Lon, &face, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying favorite: %w", err)
	}

	f.Admin1 = admin1.String
	f.Country = country.String
	if face.Valid {
		v := face.Float64
		f.FaceDeg = &v
	}
	return &f, true, nil
}

// DeleteFavorite removes a favorite by spot id.
func (s *Store) DeleteFavorite(id string) error {
	if _, err := s.db.Exec("DELETE FROM favorites WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	return nil
}

// SetFaceDeg attaches or clears a favorite's shore-facing direction. The
// value is normalized into [0, 360).
func (s *Store) SetFaceDeg(id string, deg *float64) error {
	var face sql.NullFloat64
	if deg != nil {
		face = sql.NullFloat64{Float64: models.NormalizeDeg(*deg), Valid: true}
	}
	if _, err := s.db.Exec("UPDATE favorites SET face_deg = ? WHERE id = ?", face, id); err != nil {
		return fmt.Errorf("updating face direction: %w", err)
	}
	return nil
}
