package webserver_test

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fungalore/aurral/src/aggregate"
	"github.com/fungalore/aurral/src/assert"
	"github.com/fungalore/aurral/src/covers"
	"github.com/fungalore/aurral/src/flight"
	"github.com/fungalore/aurral/src/library"
	"github.com/fungalore/aurral/src/library/libraryfakes"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/meta/metafakes"
	"github.com/fungalore/aurral/src/settings"
	"github.com/fungalore/aurral/src/webserver"
)

const streamTestMBID = "11111111-1111-1111-1111-111111111111"

func streamURL(mbid string) string {
	return fmt.Sprintf("/v1/artist/%s/stream", mbid)
}

// newStreamRouter wires a stream handler with these collaborators the same
// way the server does.
func newStreamRouter(
	store *memStore,
	src meta.Source,
	lib library.Library,
) http.Handler {
	ctx := context.Background()
	return routeHandler(
		webserver.APIv1EndpointArtistStream,
		webserver.NewArtistStreamHandler(
			ctx,
			flight.NewRegistry[aggregate.Artist](),
			aggregate.NewBuilder(lib, store, src),
			covers.NewCache(ctx, store),
			store,
			src,
		),
	)
}

func unknownArtistLibrary() *libraryfakes.FakeLibrary {
	lib := &libraryfakes.FakeLibrary{}
	lib.GetArtistByMBIDReturns(library.Artist{}, library.ErrArtistNotFound)
	return lib
}

// TestStreamEventSequence runs a whole session for an artist unknown to the
// library, with a reachable metadata provider and unreachable image and
// relation providers, and checks the pushed event sequence.
func TestStreamEventSequence(t *testing.T) {
	imageProviderDown := errors.New("image provider unreachable")

	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{
		ID:   streamTestMBID,
		Name: "Testband",
		Type: "Group",
	}, nil)
	src.BrowseReleaseGroupsReturns([]meta.ReleaseGroupInfo{
		{ID: "22222222-2222-2222-2222-222222222222", Title: "First", PrimaryType: "Album"},
		{ID: "33333333-3333-3333-3333-333333333333", Title: "Second", PrimaryType: "EP"},
	}, nil)
	src.ArtistBioReturns("", meta.ErrNoLastFMAuth)
	src.SimilarArtistsReturns(nil, meta.ErrNoLastFMAuth)
	src.ReleaseImageIndexReturns(nil, meta.ErrNoDiscogsAuth)
	src.ArtistImageReturns("", imageProviderDown)
	src.ReleaseGroupCoverReturns("", imageProviderDown)

	router := newStreamRouter(newMemStore(), src, unknownArtistLibrary())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, streamURL(streamTestMBID), nil))

	assert.Equal(t, "text/event-stream", rec.Result().Header.Get("Content-Type"))

	events := parseSSE(t, rec.Body.String())
	names := eventNames(events)

	assert.Equal(t, "connected", names[0])
	assert.Equal(t, "artist", names[1])

	var artist aggregate.Artist
	events[1].decode(t, &artist)
	assert.Equal(t, "Testband", artist.Name)
	assert.Equal(t, 2, len(artist.ReleaseGroups))

	// The critical tasks always precede the terminal event.
	completeAt := indexOfEvent(t, events, "complete")
	assert.True(t, indexOfEvent(t, events, "cover") < completeAt,
		"cover event after complete: %v", names)
	assert.True(t, indexOfEvent(t, events, "similar") < completeAt,
		"similar event after complete: %v", names)

	var cover struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	}
	events[indexOfEvent(t, events, "cover")].decode(t, &cover)
	assert.Equal(t, 0, len(cover.Images))

	assert.Equal(t, 2, countEvents(events, "releaseGroupCover"))
	assert.Equal(t, 1, countEvents(events, "complete"))
	assert.Equal(t, 0, countEvents(events, "error"))
}

// TestStreamBatchSizing gives a session nine release groups with no cached
// or inline cover and checks that the image archive is called in strictly
// sequential batches of four.
func TestStreamBatchSizing(t *testing.T) {
	var (
		mu        sync.Mutex
		active    int
		completed int

		// completedAtStart[i] is how many archive calls had fully
		// settled when the i-th call started.
		completedAtStart []int
	)

	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{Name: "Testband"}, nil)

	var groups []meta.ReleaseGroupInfo
	for i := 0; i < 9; i++ {
		groups = append(groups, meta.ReleaseGroupInfo{
			ID:          fmt.Sprintf("00000000-0000-0000-0000-%012d", i),
			Title:       fmt.Sprintf("Record %d", i),
			PrimaryType: "Album",
		})
	}
	src.BrowseReleaseGroupsReturns(groups, nil)
	src.ArtistBioReturns("", meta.ErrNoLastFMAuth)
	src.SimilarArtistsReturns(nil, meta.ErrNoLastFMAuth)
	src.ReleaseImageIndexReturns(nil, meta.ErrNoDiscogsAuth)
	src.ArtistImageReturns("", meta.ErrNotFound)
	src.ReleaseGroupCoverCalls(func(_ context.Context, rgMBID string) (string, error) {
		mu.Lock()
		active++
		if active > 4 {
			t.Errorf("more than 4 concurrent image archive calls")
		}
		completedAtStart = append(completedAtStart, completed)
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		active--
		completed++
		mu.Unlock()

		return "", meta.ErrNotFound
	})

	store := newMemStore()
	router := newStreamRouter(store, src, unknownArtistLibrary())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, streamURL(streamTestMBID), nil))

	assert.Equal(t, 9, src.ReleaseGroupCoverCallCount())

	// Batches of 4, 4 and 1: calls 0-3 start before anything settled,
	// calls 4-7 only after the whole first batch, the last one after 8.
	expected := []int{0, 0, 0, 0, 4, 4, 4, 4, 8}
	for i, at := range completedAtStart {
		assert.Equal(t, expected[i], at, "call %d started too early or too late", i)
	}

	events := parseSSE(t, rec.Body.String())
	assert.Equal(t, 9, countEvents(events, "releaseGroupCover"))

	// Every confirmed absence was remembered.
	for _, group := range groups {
		row := store.imageRow(t, settings.ReleaseGroupImageKey(group.ID))
		assert.Equal(t, "", row.URL)
	}
}

// TestStreamDisconnect closes the client connection while the first image
// archive batch is in flight. The batch must still finish and reach the
// cache but no new batch may start.
func TestStreamDisconnect(t *testing.T) {
	started := make(chan struct{}, 8)
	release := make(chan struct{})

	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{Name: "Testband"}, nil)

	var groups []meta.ReleaseGroupInfo
	for i := 0; i < 6; i++ {
		groups = append(groups, meta.ReleaseGroupInfo{
			ID:          fmt.Sprintf("00000000-0000-0000-0000-%012d", i),
			Title:       fmt.Sprintf("Record %d", i),
			PrimaryType: "Album",
		})
	}
	src.BrowseReleaseGroupsReturns(groups, nil)
	src.ArtistBioReturns("", meta.ErrNoLastFMAuth)
	src.SimilarArtistsReturns(nil, meta.ErrNoLastFMAuth)
	src.ReleaseImageIndexReturns(nil, meta.ErrNoDiscogsAuth)
	src.ArtistImageReturns("https://images.example.com/artist.jpg", nil)
	src.ReleaseGroupCoverCalls(func(_ context.Context, rgMBID string) (string, error) {
		started <- struct{}{}
		<-release
		return "https://images.example.com/" + rgMBID + ".jpg", nil
	})

	store := newMemStore()
	router := newStreamRouter(store, src, unknownArtistLibrary())

	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + streamURL(streamTestMBID))
	if err != nil {
		t.Fatalf("starting stream request: %s", err)
	}

	// Read until the terminal event so the critical tasks are done and
	// the first cover batch is underway.
	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("reading event stream: %s", err)
		}
		if strings.TrimSpace(line) == "event: complete" {
			break
		}
	}

	// The first batch has started all four of its calls.
	for i := 0; i < 4; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatalf("image archive call %d never started", i)
		}
	}

	// Disconnect, then let the in-flight batch finish.
	resp.Body.Close()
	time.Sleep(20 * time.Millisecond)
	close(release)

	// The batch outcomes still reach the cache even though nobody is
	// listening anymore.
	deadline := time.Now().Add(time.Second)
	for !store.hasImageRow(settings.ReleaseGroupImageKey(groups[3].ID)) {
		if time.Now().After(deadline) {
			t.Fatalf("first batch outcomes never reached the cache")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// No new batch starts after the disconnect.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 4, src.ReleaseGroupCoverCallCount())
}

// TestStreamMalformedID makes sure a session for a malformed artist ID
// fails fast with a terminal error event and no provider calls.
func TestStreamMalformedID(t *testing.T) {
	src := &metafakes.FakeSource{}
	router := newStreamRouter(newMemStore(), src, unknownArtistLibrary())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/v1/artist/not-an-uuid/stream", nil,
	))

	events := parseSSE(t, rec.Body.String())
	assert.Equal(t, 2, len(events))
	assert.Equal(t, "connected", events[0].name)
	assert.Equal(t, "error", events[1].name)

	assert.Equal(t, 0, src.LookupArtistCallCount())
}

// TestStreamNoIdentity makes sure a session ends with a single error event
// when no source can resolve the artist at all.
func TestStreamNoIdentity(t *testing.T) {
	down := errors.New("connection refused")
	src := &metafakes.FakeSource{}
	src.LookupArtistReturns(meta.ArtistInfo{}, down)
	src.BrowseReleaseGroupsReturns(nil, down)
	src.ArtistBioReturns("", down)

	router := newStreamRouter(newMemStore(), src, unknownArtistLibrary())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, streamURL(streamTestMBID), nil))

	events := parseSSE(t, rec.Body.String())
	assert.Equal(t, 1, countEvents(events, "error"))
	assert.Equal(t, 0, countEvents(events, "complete"))
	assert.Equal(t, "error", events[len(events)-1].name)
}
