package meta

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const lastFMEndpoint = "%s/2.0/?%s"

// ArtistBio implements Source using the Last.fm artist.getInfo call. Only
// the biography summary is returned, stripped from the trailing Last.fm
// link all summaries carry.
func (c *Client) ArtistBio(ctx context.Context, mbid string) (string, error) {
	if c.lastFMAPIKey == "" {
		return "", ErrNoLastFMAuth
	}

	query := url.Values{}
	query.Set("method", "artist.getInfo")
	query.Set("mbid", mbid)
	query.Set("api_key", c.lastFMAPIKey)
	query.Set("format", "json")

	endpointURL := fmt.Sprintf(lastFMEndpoint, c.lastFMAPIHost, query.Encode())

	var root lastFMArtistInfo
	if err := c.getJSON(ctx, "lastfm", endpointURL, nil, &root); err != nil {
		return "", fmt.Errorf("artist bio (Last.fm): %w", err)
	}

	bio := root.Artist.Bio.Summary
	if ind := strings.Index(bio, `<a href="https://www.last.fm`); ind != -1 {
		bio = strings.TrimSpace(bio[:ind])
	}

	if bio == "" {
		return "", ErrNotFound
	}

	return bio, nil
}

// SimilarArtists implements Source using the Last.fm artist.getSimilar call.
func (c *Client) SimilarArtists(
	ctx context.Context,
	mbid string,
) ([]SimilarArtist, error) {
	if c.lastFMAPIKey == "" {
		return nil, ErrNoLastFMAuth
	}

	query := url.Values{}
	query.Set("method", "artist.getSimilar")
	query.Set("mbid", mbid)
	query.Set("api_key", c.lastFMAPIKey)
	query.Set("format", "json")

	endpointURL := fmt.Sprintf(lastFMEndpoint, c.lastFMAPIHost, query.Encode())

	var root lastFMSimilar
	if err := c.getJSON(ctx, "lastfm", endpointURL, nil, &root); err != nil {
		return nil, fmt.Errorf("similar artists (Last.fm): %w", err)
	}

	similar := make([]SimilarArtist, 0, len(root.SimilarArtists.Artists))
	for _, artist := range root.SimilarArtists.Artists {
		match, _ := strconv.ParseFloat(artist.Match, 64)

		sim := SimilarArtist{
			Name:  artist.Name,
			MBID:  artist.MBID,
			Match: match,
		}

		// Last.fm returns a list of the same image in different sizes.
		// Any of them will do, prefer the last one which is the largest.
		for _, img := range artist.Images {
			if img.URL != "" {
				sim.ImageURL = img.URL
			}
		}

		similar = append(similar, sim)
	}

	return similar, nil
}

// The following are structures only used to decode the JSON responses from
// the Last.fm API.
type lastFMArtistInfo struct {
	Artist struct {
		Bio struct {
			Summary string `json:"summary"`
		} `json:"bio"`
	} `json:"artist"`
}

type lastFMSimilar struct {
	SimilarArtists struct {
		Artists []lastFMSimilarArtist `json:"artist"`
	} `json:"similarartists"`
}

type lastFMSimilarArtist struct {
	Name   string        `json:"name"`
	MBID   string        `json:"mbid"`
	Match  string        `json:"match"`
	Images []lastFMImage `json:"image"`
}

type lastFMImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}
