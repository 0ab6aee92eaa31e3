// Package library deals with the catalog of artists which are already under
// management. It is the authoritative source for their identity and their
// albums. The aggregation engine consults it first and falls back to the
// upstream metadata providers only for artists missing from it.
package library

import (
	"context"
	"errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ErrArtistNotFound is returned when an artist is not part of the library.
var ErrArtistNotFound = errors.New("artist not found in library")

// Artist is a single artist under management.
type Artist struct {
	// ID is the numeric identifier of the artist inside the library.
	ID int64

	// MBID is the canonical MusicBrainz ID of the artist.
	MBID string

	// Name is the display name of the artist.
	Name string

	// Monitored tells whether new releases of this artist are tracked.
	Monitored bool

	// MonitorNewItems is the monitoring option for newly found releases.
	MonitorNewItems string

	// Statistics of what the library holds for this artist.
	Statistics Statistics
}

// Statistics of the library contents for one artist.
type Statistics struct {
	AlbumCount int64 `json:"albumCount"`
	TrackCount int64 `json:"trackCount"`
}

// Album is a single album of a managed artist.
type Album struct {
	// ID is the numeric identifier of the album inside the library.
	ID int64

	// MBID is the MusicBrainz release group ID of the album.
	MBID string

	// Title of the album.
	Title string

	// PrimaryType of the album's release group if known.
	PrimaryType string

	// ReleaseDate of the album if known, in YYYY-MM-DD format.
	ReleaseDate string
}

//counterfeiter:generate . Library

// Library is the part of the catalog the aggregation engine needs.
type Library interface {
	// GetArtistByMBID returns the managed artist with this MusicBrainz ID
	// or ErrArtistNotFound.
	GetArtistByMBID(ctx context.Context, mbid string) (Artist, error)

	// GetAlbums returns the albums of a managed artist in the order they
	// are stored.
	GetAlbums(ctx context.Context, artistID int64) ([]Album, error)
}
