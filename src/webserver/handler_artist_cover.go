package webserver

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fungalore/aurral/src/aggregate"
	"github.com/fungalore/aurral/src/covers"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/settings"
)

// imageList is the JSON shape in which cover results are served. An empty
// list means no cover is available.
type imageList struct {
	Images []imageInfo `json:"images"`
}

type imageInfo struct {
	URL string `json:"url"`
}

func singleImage(url string) imageList {
	if url == "" {
		return imageList{Images: []imageInfo{}}
	}
	return imageList{Images: []imageInfo{{URL: url}}}
}

// artistCoverHandler serves the cover of a single artist as JSON. It reads
// through the cover cache and resolves on a miss.
type artistCoverHandler struct {
	appCtx    context.Context
	covers    *covers.Cache
	overrides aggregate.Overrides
	src       meta.Source
}

// NewArtistCoverHandler returns a handler which serves artist covers. The
// appCtx is used for cache writes so they are not cut short when the
// client goes away mid-request.
func NewArtistCoverHandler(
	appCtx context.Context,
	cache *covers.Cache,
	overrides aggregate.Overrides,
	src meta.Source,
) http.Handler {
	return &artistCoverHandler{
		appCtx:    appCtx,
		covers:    cache,
		overrides: overrides,
		src:       src,
	}
}

func (h *artistCoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	vars := mux.Vars(r)
	mbid := vars["artistID"]
	if !validMBID(mbid) {
		respondWithJSONError(w, http.StatusBadRequest, "malformed artist ID")
		return
	}

	url, err := resolveArtistCoverCached(
		r.Context(), h.appCtx, h.covers, h.overrides, h.src,
		mbid, r.URL.Query().Get("name"),
	)
	if err != nil {
		log.Printf("Error resolving cover for artist %s: %s", mbid, err)
	}

	enc := json.NewEncoder(w)
	_ = enc.Encode(singleImage(url))
}

// resolveArtistCoverCached is the cache-aside read used by the cover
// handler and the stream session. A hit is served at once with a possible
// background revalidation. A miss resolves upstream and remembers the
// outcome using storeCtx so the write survives the request.
func resolveArtistCoverCached(
	ctx context.Context,
	storeCtx context.Context,
	cache *covers.Cache,
	overrides aggregate.Overrides,
	src meta.Source,
	mbid string,
	name string,
) (string, error) {
	key := settings.ArtistImageKey(mbid)

	if entry, ok := cache.Lookup(ctx, key); ok {
		cache.RevalidateIfStale(key, entry, func(ctx context.Context) (string, error) {
			return resolveArtistImage(ctx, overrides, src, mbid, name)
		})
		return entry.URL, nil
	}

	url, err := resolveArtistImage(ctx, overrides, src, mbid, name)
	if err == nil {
		if storeErr := cache.Store(storeCtx, key, url); storeErr != nil {
			log.Printf("Error storing cover for artist %s: %s", mbid, storeErr)
		}
	}

	return url, err
}

// resolveArtistImage performs one upstream artist image resolution. A
// pinned image provider ID from the override wins over searching by name.
// Confirmed absence is returned as an empty URL with a nil error.
func resolveArtistImage(
	ctx context.Context,
	overrides aggregate.Overrides,
	src meta.Source,
	mbid string,
	name string,
) (string, error) {
	over, err := overrides.GetArtistOverride(ctx, mbid)
	if err != nil && !errors.Is(err, settings.ErrNotFound) {
		log.Printf("Error reading override for artist %s: %s", mbid, err)
	}

	if over.ImageProviderID != "" {
		return absentOnNotFound(src.ArtistImageByID(ctx, over.ImageProviderID))
	}

	if over.Name != "" {
		name = over.Name
	}
	if name == "" {
		lookupMBID := mbid
		if over.AlternateMBID != "" {
			lookupMBID = over.AlternateMBID
		}
		info, err := src.LookupArtist(ctx, lookupMBID)
		if err != nil {
			return "", err
		}
		name = info.Name
	}

	return absentOnNotFound(src.ArtistImage(ctx, name))
}

// absentOnNotFound turns a provider's "confirmed missing" answer into the
// empty URL so it can be remembered with the not-found sentinel.
func absentOnNotFound(url string, err error) (string, error) {
	if errors.Is(err, meta.ErrNotFound) {
		return "", nil
	}
	return url, err
}
