package meta

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

const (
	musicBrainzArtistEndpoint = "%s/ws/2/artist/%s?fmt=json&inc=tags"
)

// LookupArtist implements Source using the MusicBrainz JSON web service. It
// returns the identity, life-span and tags for the artist with this
// MusicBrainz ID.
func (c *Client) LookupArtist(ctx context.Context, mbid string) (ArtistInfo, error) {
	done := c.mbThrottle()
	defer done()

	endpointURL := fmt.Sprintf(
		musicBrainzArtistEndpoint,
		c.musicBrainzAPIHost,
		url.PathEscape(mbid),
	)

	var root mbArtist
	if err := c.getJSON(ctx, "musicbrainz", endpointURL, nil, &root); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ArtistInfo{}, ErrNotFound
		}
		return ArtistInfo{}, fmt.Errorf("artist lookup (MusicBrainz): %w", err)
	}

	info := ArtistInfo{
		ID:             root.ID,
		Name:           root.Name,
		SortName:       root.SortName,
		Disambiguation: root.Disambiguation,
		Type:           root.Type,
		Country:        root.Country,
		LifeSpan: LifeSpan{
			Begin: root.LifeSpan.Begin,
			End:   root.LifeSpan.End,
			Ended: root.LifeSpan.Ended,
		},
	}

	for _, tag := range root.Tags {
		info.Tags = append(info.Tags, Tag(tag))
	}

	return info, nil
}

// The following are structures only used to decode the JSON responses from
// the MusicBrainz API. Only the stuff we are interested in and nothing more.
type mbArtist struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SortName       string     `json:"sort-name"`
	Disambiguation string     `json:"disambiguation"`
	Type           string     `json:"type"`
	Country        string     `json:"country"`
	LifeSpan       mbLifeSpan `json:"life-span"`
	Tags           []mbTag    `json:"tags"`
}

type mbLifeSpan struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
	Ended bool   `json:"ended"`
}

type mbTag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
