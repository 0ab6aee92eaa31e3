package webserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fungalore/aurral/src/assert"
	"github.com/fungalore/aurral/src/covers"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/meta/metafakes"
	"github.com/fungalore/aurral/src/settings"
	"github.com/fungalore/aurral/src/webserver"
)

const coverTestMBID = "8bfac288-ccc5-448d-9573-c33ea2aa5c30"

func newCoverRouter(store *memStore, src meta.Source) http.Handler {
	ctx := context.Background()
	return routeHandler(
		webserver.APIv1EndpointArtistCover,
		webserver.NewArtistCoverHandler(ctx, covers.NewCache(ctx, store), store, src),
	)
}

func getCoverImages(t *testing.T, router http.Handler, url string) []string {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding cover response: %s", err)
	}

	var urls []string
	for _, img := range resp.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// TestArtistCoverCacheAside makes sure the first request resolves upstream
// and stores the result while later ones are served from the cache.
func TestArtistCoverCacheAside(t *testing.T) {
	src := &metafakes.FakeSource{}
	src.ArtistImageReturns("https://images.example.com/band.jpg", nil)

	store := newMemStore()
	router := newCoverRouter(store, src)

	coverURL := "/v1/artist/" + coverTestMBID + "/cover?name=Testband"

	images := getCoverImages(t, router, coverURL)
	assert.Equal(t, 1, len(images))
	assert.Equal(t, "https://images.example.com/band.jpg", images[0])
	assert.Equal(t, 1, src.ArtistImageCallCount())

	row := store.imageRow(t, settings.ArtistImageKey(coverTestMBID))
	assert.Equal(t, "https://images.example.com/band.jpg", row.URL)

	// Cache hit. No new provider call.
	images = getCoverImages(t, router, coverURL)
	assert.Equal(t, 1, len(images))
	assert.Equal(t, 1, src.ArtistImageCallCount())
}

// TestArtistCoverNotFound makes sure a confirmed absence is remembered
// with the sentinel and that the sentinel suppresses later provider calls.
func TestArtistCoverNotFound(t *testing.T) {
	src := &metafakes.FakeSource{}
	src.ArtistImageReturns("", meta.ErrNotFound)

	store := newMemStore()
	router := newCoverRouter(store, src)

	coverURL := "/v1/artist/" + coverTestMBID + "/cover?name=Testband"

	images := getCoverImages(t, router, coverURL)
	assert.Equal(t, 0, len(images))
	assert.Equal(t, 1, src.ArtistImageCallCount())

	row := store.imageRow(t, settings.ArtistImageKey(coverTestMBID))
	assert.Equal(t, "", row.URL)

	images = getCoverImages(t, router, coverURL)
	assert.Equal(t, 0, len(images))
	assert.Equal(t, 1, src.ArtistImageCallCount())
}

// TestArtistCoverPinnedProvider makes sure a pinned image provider ID from
// the override is used instead of searching by name.
func TestArtistCoverPinnedProvider(t *testing.T) {
	src := &metafakes.FakeSource{}
	src.ArtistImageByIDReturns("https://images.example.com/pinned.jpg", nil)

	store := newMemStore()
	store.setOverride(settings.Override{
		MBID:            coverTestMBID,
		ImageProviderID: "93976",
	})
	router := newCoverRouter(store, src)

	images := getCoverImages(t, router, "/v1/artist/"+coverTestMBID+"/cover")
	assert.Equal(t, 1, len(images))
	assert.Equal(t, "https://images.example.com/pinned.jpg", images[0])

	assert.Equal(t, 0, src.ArtistImageCallCount())
	assert.Equal(t, 1, src.ArtistImageByIDCallCount())
	_, pinnedID := src.ArtistImageByIDArgsForCall(0)
	assert.Equal(t, "93976", pinnedID)
}

// TestArtistCoverMalformedID makes sure a malformed ID is rejected without
// any provider call.
func TestArtistCoverMalformedID(t *testing.T) {
	src := &metafakes.FakeSource{}
	router := newCoverRouter(newMemStore(), src)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet, "/v1/artist/not-an-uuid/cover", nil,
	))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, src.ArtistImageCallCount())
	assert.Equal(t, 0, src.LookupArtistCallCount())
}
