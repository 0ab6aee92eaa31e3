package aggregate

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/fungalore/aurral/src/library"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/settings"
)

// Overrides is the part of the settings store the builder needs.
type Overrides interface {
	GetArtistOverride(ctx context.Context, mbid string) (settings.Override, error)
}

// Hints are optional caller-supplied inputs to a build.
type Hints struct {
	// Name is a display name the caller already knows. It ranks above
	// the provider-resolved name, only an override beats it.
	Name string
}

// Builder assembles artist aggregates. The library record wins for
// identity, the metadata providers fill in everything else and every
// enrichment failure degrades to an absent field.
type Builder struct {
	lib       library.Library
	overrides Overrides
	src       meta.Source
}

// NewBuilder returns a builder over these collaborators.
func NewBuilder(lib library.Library, overrides Overrides, src meta.Source) *Builder {
	return &Builder{
		lib:       lib,
		overrides: overrides,
		src:       src,
	}
}

// Build assembles the aggregate for one artist. It fails only with
// ErrNoIdentity when neither the library, the override, the hints nor the
// metadata provider can supply a display name.
func (b *Builder) Build(ctx context.Context, mbid string, hints Hints) (Artist, error) {
	over, err := b.overrides.GetArtistOverride(ctx, mbid)
	if err != nil && !errors.Is(err, settings.ErrNotFound) {
		log.Printf("Error reading override for artist %s: %s", mbid, err)
	}

	// The override may redirect all upstream lookups to a different
	// canonical artist.
	lookupMBID := mbid
	if over.AlternateMBID != "" {
		lookupMBID = over.AlternateMBID
	}

	artist := Artist{ID: mbid}

	rec, err := b.lib.GetArtistByMBID(ctx, mbid)
	if err != nil && !errors.Is(err, library.ErrArtistNotFound) {
		log.Printf("Error reading library record for artist %s: %s", mbid, err)
		err = library.ErrArtistNotFound
	}

	if err == nil {
		b.buildFromLibrary(ctx, &artist, rec, lookupMBID)
	} else if err := b.buildFromProviders(ctx, &artist, over, hints, lookupMBID); err != nil {
		return Artist{}, err
	}

	if bio, err := b.src.ArtistBio(ctx, lookupMBID); err == nil {
		artist.Biography = bio
	} else if !errors.Is(err, meta.ErrNoLastFMAuth) && !errors.Is(err, meta.ErrNotFound) {
		log.Printf("Error getting biography for artist %s: %s", mbid, err)
	}

	return artist, nil
}

// buildFromLibrary fills the aggregate for an artist which is already under
// management. The library record is authoritative for identity.
func (b *Builder) buildFromLibrary(
	ctx context.Context,
	artist *Artist,
	rec library.Artist,
	lookupMBID string,
) {
	artist.Name = rec.Name
	artist.Library = &LibraryInfo{
		Monitored:       rec.Monitored,
		MonitorNewItems: rec.MonitorNewItems,
		Statistics:      rec.Statistics,
	}

	if info, err := b.src.LookupArtist(ctx, lookupMBID); err == nil {
		fillFromInfo(artist, info)
	} else {
		log.Printf("Error looking up managed artist %s: %s", lookupMBID, err)
	}

	albums, err := b.lib.GetAlbums(ctx, rec.ID)
	if err != nil {
		log.Printf("Error getting library albums for artist %s: %s", rec.MBID, err)
	}

	groups := make([]ReleaseGroup, 0, len(albums))
	for _, album := range albums {
		groups = append(groups, ReleaseGroup{
			ID:               album.MBID,
			Title:            album.Title,
			PrimaryType:      album.PrimaryType,
			FirstReleaseDate: album.ReleaseDate,
		})
	}

	// Typing information of the library's own lists is often incomplete.
	// Enrich it from the canonical provider when it is reachable.
	if canonical, err := b.src.BrowseReleaseGroups(ctx, lookupMBID); err == nil {
		byID := make(map[string]meta.ReleaseGroupInfo, len(canonical))
		for _, group := range canonical {
			byID[group.ID] = group
		}
		for i := range groups {
			info, ok := byID[groups[i].ID]
			if !ok {
				continue
			}
			groups[i].PrimaryType = info.PrimaryType
			groups[i].SecondaryTypes = info.SecondaryTypes
			if groups[i].FirstReleaseDate == "" {
				groups[i].FirstReleaseDate = info.FirstReleaseDate
			}
		}
	} else {
		log.Printf("Error browsing release groups for %s: %s", lookupMBID, err)
	}

	artist.ReleaseGroups = groups
}

// buildFromProviders fills the aggregate for an artist the library does not
// know about. The metadata provider is the source of truth here.
func (b *Builder) buildFromProviders(
	ctx context.Context,
	artist *Artist,
	over settings.Override,
	hints Hints,
	lookupMBID string,
) error {
	info, infoErr := b.src.LookupArtist(ctx, lookupMBID)
	if infoErr == nil {
		fillFromInfo(artist, info)
	}

	switch {
	case over.Name != "":
		artist.Name = over.Name
	case hints.Name != "":
		artist.Name = hints.Name
	case infoErr == nil && info.Name != "":
		artist.Name = info.Name
	default:
		return ErrNoIdentity
	}

	groups, err := b.src.BrowseReleaseGroups(ctx, lookupMBID)
	if err != nil {
		log.Printf("Error browsing release groups for %s: %s", lookupMBID, err)
	}

	artist.ReleaseGroups = make([]ReleaseGroup, 0, len(groups))
	for _, group := range groups {
		artist.ReleaseGroups = append(artist.ReleaseGroups, ReleaseGroup{
			ID:               group.ID,
			Title:            group.Title,
			FirstReleaseDate: group.FirstReleaseDate,
			PrimaryType:      group.PrimaryType,
			SecondaryTypes:   group.SecondaryTypes,
			CoverURL:         group.CoverURL,
		})
	}

	b.enrichGroupCovers(ctx, artist)
	return nil
}

// enrichGroupCovers matches the artist's release groups against the image
// provider's release index by title so some of them carry a cover inline.
func (b *Builder) enrichGroupCovers(ctx context.Context, artist *Artist) {
	if len(artist.ReleaseGroups) == 0 {
		return
	}

	index, err := b.src.ReleaseImageIndex(ctx, artist.Name)
	if err != nil {
		if !errors.Is(err, meta.ErrNoDiscogsAuth) && !errors.Is(err, meta.ErrNotFound) {
			log.Printf("Error getting release image index for %s: %s", artist.Name, err)
		}
		return
	}

	for i := range artist.ReleaseGroups {
		if artist.ReleaseGroups[i].CoverURL != "" {
			continue
		}
		title := strings.ToLower(artist.ReleaseGroups[i].Title)
		if url, ok := index[title]; ok {
			artist.ReleaseGroups[i].CoverURL = url
		}
	}
}

func fillFromInfo(artist *Artist, info meta.ArtistInfo) {
	artist.SortName = info.SortName
	artist.Disambiguation = info.Disambiguation
	artist.Type = info.Type
	artist.Country = info.Country
	artist.LifeSpan = LifeSpan{
		Begin: info.LifeSpan.Begin,
		End:   info.LifeSpan.End,
		Ended: info.LifeSpan.Ended,
	}

	artist.Tags = make([]Tag, 0, len(info.Tags))
	for _, tag := range info.Tags {
		artist.Tags = append(artist.Tags, Tag{Name: tag.Name, Count: tag.Count})
	}
}
