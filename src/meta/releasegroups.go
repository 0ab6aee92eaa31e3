package meta

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

const (
	musicBrainzReleaseGroupsEndpoint = "%s/ws/2/release-group?fmt=json" +
		"&artist=%s&limit=%d"

	// releaseGroupsLimit is the maximum number of release groups requested
	// from MusicBrainz in one browse call.
	releaseGroupsLimit = 100
)

// BrowseReleaseGroups implements Source using the MusicBrainz JSON web
// service. Release groups are returned in the order the provider lists them,
// no re-sorting is done here.
func (c *Client) BrowseReleaseGroups(
	ctx context.Context,
	mbid string,
) ([]ReleaseGroupInfo, error) {
	done := c.mbThrottle()
	defer done()

	endpointURL := fmt.Sprintf(
		musicBrainzReleaseGroupsEndpoint,
		c.musicBrainzAPIHost,
		url.QueryEscape(mbid),
		releaseGroupsLimit,
	)

	var root mbReleaseGroupBrowse
	if err := c.getJSON(ctx, "musicbrainz", endpointURL, nil, &root); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("release group browse (MusicBrainz): %w", err)
	}

	groups := make([]ReleaseGroupInfo, 0, len(root.ReleaseGroups))
	for _, rg := range root.ReleaseGroups {
		groups = append(groups, ReleaseGroupInfo{
			ID:               rg.ID,
			Title:            rg.Title,
			FirstReleaseDate: rg.FirstReleaseDate,
			PrimaryType:      rg.PrimaryType,
			SecondaryTypes:   rg.SecondaryTypes,
		})
	}

	return groups, nil
}

type mbReleaseGroupBrowse struct {
	ReleaseGroups []mbReleaseGroup `json:"release-groups"`
}

type mbReleaseGroup struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	FirstReleaseDate string   `json:"first-release-date"`
	PrimaryType      string   `json:"primary-type"`
	SecondaryTypes   []string `json:"secondary-types"`
}
