// Package settings stores the small bits of per-artist state which are not
// part of the library proper: remembered cover image URLs and the manual
// artist overrides.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when the requested row is not in the store.
var ErrNotFound = errors.New("no such row in the settings store")

// ArtistImageKey returns the image row key for an artist's cover. Image
// keys are namespaced by entity type so an artist and a release group with
// the same MBID cannot collide. Everything which touches an image row,
// including the override invalidation, must build its keys here.
func ArtistImageKey(mbid string) string {
	return "artist/" + mbid
}

// ReleaseGroupImageKey returns the image row key for a release group cover.
func ReleaseGroupImageKey(mbid string) string {
	return "releasegroup/" + mbid
}

// ImageRow is one remembered cover image. An empty URL means the image was
// searched for and confirmed to be missing upstream.
type ImageRow struct {
	// URL of the image or empty when its absence was confirmed.
	URL string

	// UpdatedAt is the time the row was last written.
	UpdatedAt time.Time
}

// Override is a manual correction for one artist: an alternate canonical
// MusicBrainz ID and/or a pinned Discogs artist ID for its image.
type Override struct {
	// MBID of the artist the override applies to.
	MBID string `json:"mbid"`

	// Name is a manually corrected display name for the artist.
	Name string `json:"name,omitempty"`

	// AlternateMBID replaces MBID for all upstream lookups when set.
	AlternateMBID string `json:"alternateMbid,omitempty"`

	// ImageProviderID pins the Discogs artist whose image to use.
	ImageProviderID string `json:"imageProviderId,omitempty"`
}

// Store persists cover rows and overrides in the server database.
type Store struct {
	db *sql.DB
}

// NewStore returns a store bound to this database. The database schema must
// already be in place.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetImage returns the remembered image for this key or ErrNotFound.
func (s *Store) GetImage(ctx context.Context, key string) (ImageRow, error) {
	var (
		row       ImageRow
		updatedAt int64
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT
			url, updated_at
		FROM
			cover_images
		WHERE
			key = ?
	`, key).Scan(&row.URL, &updatedAt)
	if err == sql.ErrNoRows {
		return ImageRow{}, ErrNotFound
	} else if err != nil {
		return ImageRow{}, fmt.Errorf("query cover_images: %w", err)
	}

	row.UpdatedAt = time.Unix(updatedAt, 0)
	return row, nil
}

// GetImages returns the remembered images for all of the keys which have
// one. Keys with no row are simply absent from the returned map.
func (s *Store) GetImages(
	ctx context.Context,
	keys []string,
) (map[string]ImageRow, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	args := make([]any, 0, len(keys))
	for _, key := range keys {
		args = append(args, key)
	}
	placeholders := strings.TrimSuffix(
		strings.Repeat("?,", len(keys)), ",",
	)

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT
			key, url, updated_at
		FROM
			cover_images
		WHERE
			key IN (%s)
	`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("query cover_images: %w", err)
	}
	defer rows.Close()

	found := make(map[string]ImageRow)
	for rows.Next() {
		var (
			key       string
			row       ImageRow
			updatedAt int64
		)
		if err := rows.Scan(&key, &row.URL, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning cover_images row: %w", err)
		}
		row.UpdatedAt = time.Unix(updatedAt, 0)
		found[key] = row
	}

	return found, rows.Err()
}

// SetImage remembers an image URL for this key. An empty url records that
// the image is confirmed missing upstream.
func (s *Store) SetImage(ctx context.Context, key, url string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO
			cover_images (key, url, updated_at)
		VALUES
			(?, ?, ?)
	`, key, url, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("storing cover image row: %w", err)
	}
	return nil
}

// RemoveImage forgets the remembered image for this key if there is one.
func (s *Store) RemoveImage(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM cover_images WHERE key = ?
	`, key)
	return err
}

// GetArtistOverride returns the override for this artist or ErrNotFound.
func (s *Store) GetArtistOverride(
	ctx context.Context,
	mbid string,
) (Override, error) {
	over := Override{MBID: mbid}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			name, alternate_mbid, image_provider_id
		FROM
			artist_overrides
		WHERE
			mbid = ?
	`, mbid).Scan(&over.Name, &over.AlternateMBID, &over.ImageProviderID)
	if err == sql.ErrNoRows {
		return Override{}, ErrNotFound
	} else if err != nil {
		return Override{}, fmt.Errorf("query artist_overrides: %w", err)
	}

	return over, nil
}

// SetArtistOverride stores an override. The previously remembered cover of
// the artist is forgotten so that its next lookup uses the new override.
func (s *Store) SetArtistOverride(ctx context.Context, over Override) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO
			artist_overrides (mbid, name, alternate_mbid, image_provider_id)
		VALUES
			(?, ?, ?, ?)
	`, over.MBID, over.Name, over.AlternateMBID, over.ImageProviderID)
	if err != nil {
		return fmt.Errorf("storing artist override: %w", err)
	}

	return s.RemoveImage(ctx, ArtistImageKey(over.MBID))
}

// RemoveArtistOverride removes the override for this artist along with its
// remembered cover.
func (s *Store) RemoveArtistOverride(ctx context.Context, mbid string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM artist_overrides WHERE mbid = ?
	`, mbid)
	if err != nil {
		return fmt.Errorf("removing artist override: %w", err)
	}

	return s.RemoveImage(ctx, ArtistImageKey(mbid))
}
