package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fungalore/aurral/src/aggregate"
	"github.com/fungalore/aurral/src/assert"
	"github.com/fungalore/aurral/src/library"
	"github.com/fungalore/aurral/src/library/libraryfakes"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/meta/metafakes"
	"github.com/fungalore/aurral/src/settings"
)

const testMBID = "8bfac288-ccc5-448d-9573-c33ea2aa5c30"

// stubOverrides is an Overrides which always returns the same record.
type stubOverrides struct {
	over settings.Override
	err  error
}

func (s stubOverrides) GetArtistOverride(
	_ context.Context,
	_ string,
) (settings.Override, error) {
	return s.over, s.err
}

func noOverrides() stubOverrides {
	return stubOverrides{err: settings.ErrNotFound}
}

func emptyLibrary() *libraryfakes.FakeLibrary {
	lib := &libraryfakes.FakeLibrary{}
	lib.GetArtistByMBIDReturns(library.Artist{}, library.ErrArtistNotFound)
	return lib
}

// TestBuildFromProviders builds an artist unknown to the library entirely
// from the metadata providers, including the title-keyed image index.
func TestBuildFromProviders(t *testing.T) {
	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{
		ID:       testMBID,
		Name:     "Queens of the Stone Age",
		SortName: "Queens of the Stone Age",
		Type:     "Group",
		Country:  "US",
		LifeSpan: meta.LifeSpan{Begin: "1996"},
		Tags:     []meta.Tag{{Name: "rock", Count: 12}},
	}, nil)
	src.BrowseReleaseGroupsReturns([]meta.ReleaseGroupInfo{
		{ID: "rg-one", Title: "Songs for the Deaf", PrimaryType: "Album"},
		{ID: "rg-two", Title: "Like Clockwork", PrimaryType: "Album"},
	}, nil)
	src.ReleaseImageIndexReturns(map[string]string{
		"songs for the deaf": "https://images.example.com/sftd.jpg",
	}, nil)
	src.ArtistBioReturns("Formed in Palm Desert.", nil)

	builder := aggregate.NewBuilder(emptyLibrary(), noOverrides(), src)
	artist, err := builder.Build(context.Background(), testMBID, aggregate.Hints{})
	assert.NilErr(t, err, "building aggregate")

	assert.Equal(t, testMBID, artist.ID)
	assert.Equal(t, "Queens of the Stone Age", artist.Name)
	assert.Equal(t, "Group", artist.Type)
	assert.Equal(t, "1996", artist.LifeSpan.Begin)
	assert.Equal(t, 1, len(artist.Tags))
	assert.Equal(t, "Formed in Palm Desert.", artist.Biography)
	if artist.Library != nil {
		t.Errorf("expected no library linkage for an unmanaged artist")
	}

	assert.Equal(t, 2, len(artist.ReleaseGroups))
	assert.Equal(t, "https://images.example.com/sftd.jpg", artist.ReleaseGroups[0].CoverURL)
	assert.Equal(t, "", artist.ReleaseGroups[1].CoverURL)
}

// TestBuildLibraryFirst makes sure a managed artist's identity comes from
// the library while the provider only enriches release group typing.
func TestBuildLibraryFirst(t *testing.T) {
	lib := &libraryfakes.FakeLibrary{}
	lib.GetArtistByMBIDReturns(library.Artist{
		ID:              42,
		MBID:            testMBID,
		Name:            "The Library Name",
		Monitored:       true,
		MonitorNewItems: "all",
		Statistics:      library.Statistics{AlbumCount: 2, TrackCount: 20},
	}, nil)
	lib.GetAlbumsReturns([]library.Album{
		{MBID: "rg-one", Title: "First"},
		{MBID: "rg-two", Title: "Second", PrimaryType: "EP"},
	}, nil)

	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{
		Name:     "The Provider Name",
		SortName: "Library Name, The",
	}, nil)
	src.BrowseReleaseGroupsReturns([]meta.ReleaseGroupInfo{
		{ID: "rg-one", Title: "First", PrimaryType: "Album", FirstReleaseDate: "2001-01-01"},
	}, nil)
	src.ArtistBioReturns("", meta.ErrNoLastFMAuth)

	builder := aggregate.NewBuilder(lib, noOverrides(), src)
	artist, err := builder.Build(context.Background(), testMBID, aggregate.Hints{})
	assert.NilErr(t, err, "building aggregate")

	assert.Equal(t, "The Library Name", artist.Name)
	assert.Equal(t, "Library Name, The", artist.SortName)
	if artist.Library == nil {
		t.Fatalf("expected library linkage for a managed artist")
	}
	assert.Equal(t, true, artist.Library.Monitored)
	assert.Equal(t, int64(2), artist.Library.Statistics.AlbumCount)

	assert.Equal(t, 2, len(artist.ReleaseGroups))
	assert.Equal(t, "Album", artist.ReleaseGroups[0].PrimaryType)
	assert.Equal(t, "2001-01-01", artist.ReleaseGroups[0].FirstReleaseDate)
	assert.Equal(t, "EP", artist.ReleaseGroups[1].PrimaryType)
	assert.Equal(t, "", artist.Biography)
}

// TestBuildLibraryProviderDown makes sure a managed artist still builds
// from the library's own lists when every provider call fails.
func TestBuildLibraryProviderDown(t *testing.T) {
	lib := &libraryfakes.FakeLibrary{}
	lib.GetArtistByMBIDReturns(library.Artist{
		ID:   42,
		MBID: testMBID,
		Name: "The Library Name",
	}, nil)
	lib.GetAlbumsReturns([]library.Album{
		{MBID: "rg-one", Title: "Only Album"},
	}, nil)

	builder := aggregate.NewBuilder(lib, noOverrides(), downSource())
	artist, err := builder.Build(context.Background(), testMBID, aggregate.Hints{})
	assert.NilErr(t, err, "building aggregate")

	assert.Equal(t, "The Library Name", artist.Name)
	assert.Equal(t, 1, len(artist.ReleaseGroups))
	assert.Equal(t, "Only Album", artist.ReleaseGroups[0].Title)
}

// TestBuildHintName makes sure a caller-supplied name keeps the build alive
// when the providers are down and nothing else knows the artist.
func TestBuildHintName(t *testing.T) {
	builder := aggregate.NewBuilder(emptyLibrary(), noOverrides(), downSource())

	artist, err := builder.Build(
		context.Background(),
		testMBID,
		aggregate.Hints{Name: "Hinted Name"},
	)
	assert.NilErr(t, err, "building aggregate")
	assert.Equal(t, "Hinted Name", artist.Name)
	assert.Equal(t, 0, len(artist.ReleaseGroups))
}

// TestBuildHintBeatsProviderName makes sure a caller-supplied name outranks
// the name the provider resolves. Only an override stands above it.
func TestBuildHintBeatsProviderName(t *testing.T) {
	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{
		Name:     "Provider Name",
		SortName: "Name, Provider",
	}, nil)
	src.BrowseReleaseGroupsReturns(nil, nil)
	src.ArtistBioReturns("", meta.ErrNotFound)
	src.ReleaseImageIndexReturns(nil, meta.ErrNoDiscogsAuth)

	builder := aggregate.NewBuilder(emptyLibrary(), noOverrides(), src)
	artist, err := builder.Build(
		context.Background(),
		testMBID,
		aggregate.Hints{Name: "Hinted Name"},
	)
	assert.NilErr(t, err, "building aggregate")

	assert.Equal(t, "Hinted Name", artist.Name)
	// Everything besides the name still comes from the provider lookup.
	assert.Equal(t, "Name, Provider", artist.SortName)
}

// TestBuildNoIdentity makes sure the build fails with the typed error when
// no source can supply a name.
func TestBuildNoIdentity(t *testing.T) {
	builder := aggregate.NewBuilder(emptyLibrary(), noOverrides(), downSource())

	_, err := builder.Build(context.Background(), testMBID, aggregate.Hints{})
	if !errors.Is(err, aggregate.ErrNoIdentity) {
		t.Errorf("expected ErrNoIdentity but got %+v", err)
	}
}

// TestBuildOverride makes sure an override redirects all provider lookups
// to the alternate MBID and that its name outranks everything else.
func TestBuildOverride(t *testing.T) {
	const alternate = "5c2b4f55-ab66-4e92-8fe8-ec3d2a759e08"

	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{Name: "Provider Name"}, nil)
	src.BrowseReleaseGroupsReturns(nil, nil)
	src.ArtistBioReturns("", meta.ErrNotFound)
	src.ReleaseImageIndexReturns(nil, meta.ErrNoDiscogsAuth)

	overrides := stubOverrides{over: settings.Override{
		MBID:          testMBID,
		Name:          "Overridden Name",
		AlternateMBID: alternate,
	}}

	builder := aggregate.NewBuilder(emptyLibrary(), overrides, src)
	artist, err := builder.Build(context.Background(), testMBID, aggregate.Hints{})
	assert.NilErr(t, err, "building aggregate")

	assert.Equal(t, "Overridden Name", artist.Name)
	assert.Equal(t, testMBID, artist.ID)

	_, lookedUp := src.LookupArtistArgsForCall(0)
	assert.Equal(t, alternate, lookedUp)
	_, browsed := src.BrowseReleaseGroupsArgsForCall(0)
	assert.Equal(t, alternate, browsed)
	_, bioFor := src.ArtistBioArgsForCall(0)
	assert.Equal(t, alternate, bioFor)
}

// downSource returns a Source for which every call fails.
func downSource() *metafakes.FakeSource {
	down := errors.New("connection refused")
	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{}, down)
	src.BrowseReleaseGroupsReturns(nil, down)
	src.ArtistBioReturns("", down)
	src.SimilarArtistsReturns(nil, down)
	src.ArtistImageReturns("", down)
	src.ArtistImageByIDReturns("", down)
	src.ReleaseImageIndexReturns(nil, down)
	src.ReleaseGroupCoverReturns("", down)
	return src
}
