package meta

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Source

// Source defines a type which is capable of resolving artist metadata, cover
// art and artist relations from the upstream providers. Every method is an
// independently failing call with its own timeout. Methods return ErrNotFound
// when the provider has confirmed absence and any other error for transient
// provider failures. No method retries on its own.
type Source interface {
	// LookupArtist returns the identity, life-span and tags for the artist
	// with this MusicBrainz ID.
	LookupArtist(ctx context.Context, mbid string) (ArtistInfo, error)

	// BrowseReleaseGroups returns the release groups of the artist with this
	// MusicBrainz ID in the order the provider returns them.
	BrowseReleaseGroups(ctx context.Context, mbid string) ([]ReleaseGroupInfo, error)

	// ArtistBio returns a biography text for the artist. Returns
	// ErrNoLastFMAuth when no Last.fm API key is configured.
	ArtistBio(ctx context.Context, mbid string) (string, error)

	// SimilarArtists returns artists related to the one with this
	// MusicBrainz ID. Returns ErrNoLastFMAuth when no Last.fm API key is
	// configured.
	SimilarArtists(ctx context.Context, mbid string) ([]SimilarArtist, error)

	// ArtistImage returns the URL of an image representing the artist with
	// this name. Returns ErrNoDiscogsAuth when no Discogs token is
	// configured.
	ArtistImage(ctx context.Context, name string) (string, error)

	// ArtistImageByID returns the URL of an image for the artist with this
	// Discogs ID. Used when the artist has a pinned image provider ID.
	ArtistImageByID(ctx context.Context, discogsID string) (string, error)

	// ReleaseImageIndex returns a mapping from lowercased release title to
	// a cover image URL for releases by the artist with this name.
	ReleaseImageIndex(ctx context.Context, name string) (map[string]string, error)

	// ReleaseGroupCover returns the URL of the front cover for the release
	// group with this MusicBrainz ID from the Cover Art Archive.
	ReleaseGroupCover(ctx context.Context, rgMBID string) (string, error)
}

// ArtistInfo is the identity part of an artist as returned by the canonical
// metadata provider.
type ArtistInfo struct {
	ID             string
	Name           string
	SortName       string
	Disambiguation string
	Type           string
	Country        string
	LifeSpan       LifeSpan
	Tags           []Tag
}

// LifeSpan represents the active period of an artist.
type LifeSpan struct {
	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
	Ended bool   `json:"ended"`
}

// Tag is a single folksonomy tag with the number of users which voted
// for it.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReleaseGroupInfo is a single release group as returned by the canonical
// metadata provider. CoverURL is set only when some provider returned an
// image for the group inline, without a dedicated cover art call.
type ReleaseGroupInfo struct {
	ID               string
	Title            string
	FirstReleaseDate string
	PrimaryType      string
	SecondaryTypes   []string
	CoverURL         string
}

// SimilarArtist is one entry of the similar artists relation.
type SimilarArtist struct {
	Name     string  `json:"name"`
	MBID     string  `json:"mbid,omitempty"`
	Match    float64 `json:"match,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
}
