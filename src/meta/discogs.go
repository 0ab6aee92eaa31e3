package meta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	discogsSearchEndpoint = "%s/database/search?%s"
	discogsArtistEndpoint = "%s/artists/%s"
)

// ArtistImage implements Source using the Discogs database. It first
// searches for the artist by name to get a Discogs ID and then fetches the
// primary image of that artist.
func (c *Client) ArtistImage(ctx context.Context, name string) (string, error) {
	if c.discogsAuthToken == "" {
		return "", ErrNoDiscogsAuth
	}

	query := url.Values{}
	query.Set("q", name)
	query.Set("type", "artist")
	query.Set("per_page", "5")

	endpointURL := fmt.Sprintf(discogsSearchEndpoint, c.discogsAPIHost, query.Encode())

	var root discogsSearchResults
	if err := c.getJSON(ctx, "discogs", endpointURL, c.discogsHeaders(), &root); err != nil {
		return "", fmt.Errorf("artist search (Discogs): %w", err)
	}

	if len(root.Results) < 1 {
		return "", ErrNotFound
	}

	return c.ArtistImageByID(ctx, root.Results[0].ID.String())
}

// ArtistImageByID implements Source using the Discogs database. It returns
// the URL of the primary image of the artist with this Discogs ID.
func (c *Client) ArtistImageByID(
	ctx context.Context,
	discogsID string,
) (string, error) {
	if c.discogsAuthToken == "" {
		return "", ErrNoDiscogsAuth
	}

	endpointURL := fmt.Sprintf(
		discogsArtistEndpoint,
		c.discogsAPIHost,
		url.PathEscape(discogsID),
	)

	var root discogsArtist
	err := c.getJSON(ctx, "discogs", endpointURL, c.discogsHeaders(), &root)
	if errors.Is(err, ErrNotFound) {
		return "", ErrNotFound
	} else if err != nil {
		return "", fmt.Errorf("artist image (Discogs): %w", err)
	}

	var fallback string
	for _, img := range root.Images {
		if img.URI == "" {
			continue
		}
		if img.Type == "primary" {
			return img.URI, nil
		}
		if fallback == "" {
			fallback = img.URI
		}
	}

	if fallback == "" {
		return "", ErrNotFound
	}

	return fallback, nil
}

// ReleaseImageIndex implements Source using the Discogs database search. It
// returns a mapping from lowercased release title to a cover image URL for
// releases by the artist with this name. Absence of images is not an error,
// the index is simply smaller or empty.
func (c *Client) ReleaseImageIndex(
	ctx context.Context,
	name string,
) (map[string]string, error) {
	if c.discogsAuthToken == "" {
		return nil, ErrNoDiscogsAuth
	}

	query := url.Values{}
	query.Set("artist", name)
	query.Set("type", "release")
	query.Set("per_page", "100")

	endpointURL := fmt.Sprintf(discogsSearchEndpoint, c.discogsAPIHost, query.Encode())

	var root discogsSearchResults
	if err := c.getJSON(ctx, "discogs", endpointURL, c.discogsHeaders(), &root); err != nil {
		return nil, fmt.Errorf("release search (Discogs): %w", err)
	}

	index := make(map[string]string)
	for _, res := range root.Results {
		if res.CoverImage == "" {
			continue
		}

		// Discogs search result titles are "Artist - Title".
		title := res.Title
		if ind := strings.Index(title, " - "); ind != -1 {
			title = title[ind+3:]
		}

		title = strings.ToLower(strings.TrimSpace(title))
		if _, ok := index[title]; !ok && title != "" {
			index[title] = res.CoverImage
		}
	}

	return index, nil
}

func (c *Client) discogsHeaders() map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Discogs token=%s", c.discogsAuthToken),
	}
}

// The following are structures only used to decode the JSON responses from
// the Discogs API.
type discogsSearchResults struct {
	Results []discogsSearchResult `json:"results"`
}

type discogsSearchResult struct {
	ID         json.Number `json:"id"`
	Title      string      `json:"title"`
	CoverImage string      `json:"cover_image"`
}

type discogsArtist struct {
	Images []discogsImage `json:"images"`
}

type discogsImage struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}
