// Package aggregate assembles one enriched artist record out of the
// library, the manual overrides and the upstream metadata providers.
package aggregate

import (
	"errors"

	"github.com/fungalore/aurral/src/library"
)

// ErrNoIdentity is returned when no source could supply even a display
// name for the requested artist. It is the only fatal build outcome, every
// other sub-failure leaves the corresponding field absent.
var ErrNoIdentity = errors.New("no provider could resolve an artist identity")

// Artist is the assembled aggregate for one artist. It is built once and
// not mutated afterwards.
type Artist struct {
	// ID is the requested MusicBrainz ID of the artist.
	ID string `json:"id"`

	// Name is the display name of the artist.
	Name string `json:"name"`

	// SortName of the artist if known.
	SortName string `json:"sortName,omitempty"`

	// Disambiguation is the short comment telling same-named artists apart.
	Disambiguation string `json:"disambiguation,omitempty"`

	// Type of the artist such as "Group" or "Person".
	Type string `json:"type,omitempty"`

	// Country of the artist if known.
	Country string `json:"country,omitempty"`

	// LifeSpan of the artist if known.
	LifeSpan LifeSpan `json:"lifeSpan"`

	// Tags of the artist in the order the metadata provider returns them.
	Tags []Tag `json:"tags,omitempty"`

	// ReleaseGroups of the artist in the order the source returns them.
	ReleaseGroups []ReleaseGroup `json:"releaseGroups"`

	// Biography of the artist. Absent when no provider could supply one.
	Biography string `json:"biography,omitempty"`

	// Library is set when the artist is already under management.
	Library *LibraryInfo `json:"library,omitempty"`
}

// LifeSpan is the begin/end information of an artist.
type LifeSpan struct {
	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
	Ended bool   `json:"ended"`
}

// Tag is one folksonomy tag with its vote count.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReleaseGroup is one release group of the artist.
type ReleaseGroup struct {
	// ID is the MusicBrainz release group ID.
	ID string `json:"id"`

	// Title of the release group.
	Title string `json:"title"`

	// FirstReleaseDate if known.
	FirstReleaseDate string `json:"firstReleaseDate,omitempty"`

	// PrimaryType such as "Album", "EP" or "Single".
	PrimaryType string `json:"primaryType,omitempty"`

	// SecondaryTypes such as "Live" or "Compilation".
	SecondaryTypes []string `json:"secondaryTypes,omitempty"`

	// CoverURL is set when some provider already returned a cover inline.
	CoverURL string `json:"coverUrl,omitempty"`
}

// LibraryInfo is the library linkage of an artist under management.
type LibraryInfo struct {
	// Monitored tells whether new releases of the artist are tracked.
	Monitored bool `json:"monitored"`

	// MonitorNewItems is the monitoring option for newly found releases.
	MonitorNewItems string `json:"monitorNewItems,omitempty"`

	// Statistics of what the library holds for the artist.
	Statistics library.Statistics `json:"statistics"`
}
