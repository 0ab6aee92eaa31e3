package webserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/fungalore/aurral/src/aggregate"
	"github.com/fungalore/aurral/src/covers"
	"github.com/fungalore/aurral/src/flight"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/metrics"
	"github.com/fungalore/aurral/src/settings"
)

const (
	// rgCoverBatchSize is how many uncached release group covers are
	// fetched from the image archive at the same time. A new batch starts
	// only after the previous one has fully settled.
	rgCoverBatchSize = 4

	// maxRGCoverCount caps how many release groups get their cover
	// resolved within one stream session.
	maxRGCoverCount = 20
)

// Stream event names.
const (
	eventConnected         = "connected"
	eventArtist            = "artist"
	eventCover             = "cover"
	eventSimilar           = "similar"
	eventReleaseGroupCover = "releaseGroupCover"
	eventComplete          = "complete"
	eventError             = "error"
)

// streamedPrimaryTypes are the release group primary types whose covers are
// resolved during a stream session.
var streamedPrimaryTypes = map[string]struct{}{
	"Album":  {},
	"EP":     {},
	"Single": {},
}

// artistStreamHandler drives one incremental delivery session per request.
// It pushes the artist aggregate and its enrichments as server-sent events
// the moment each one is ready.
type artistStreamHandler struct {
	appCtx    context.Context
	registry  *flight.Registry[aggregate.Artist]
	builder   *aggregate.Builder
	covers    *covers.Cache
	overrides aggregate.Overrides
	src       meta.Source
}

// NewArtistStreamHandler returns the handler for the artist stream
// endpoint. appCtx bounds the lifetime of provider calls and cache writes
// so that a client disconnect does not cut them short.
func NewArtistStreamHandler(
	appCtx context.Context,
	registry *flight.Registry[aggregate.Artist],
	builder *aggregate.Builder,
	cache *covers.Cache,
	overrides aggregate.Overrides,
	src meta.Source,
) http.Handler {
	return &artistStreamHandler{
		appCtx:    appCtx,
		registry:  registry,
		builder:   builder,
		covers:    cache,
		overrides: overrides,
		src:       src,
	}
}

func (h *artistStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithJSONError(
			w,
			http.StatusInternalServerError,
			"streaming is not supported by this connection",
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	session := &streamSession{
		ctx:     r.Context(),
		w:       w,
		flusher: flusher,
	}
	metrics.StreamSessions.Inc()

	vars := mux.Vars(r)
	mbid := vars["artistID"]

	session.push(eventConnected, struct {
		ArtistID string `json:"artistId"`
	}{
		ArtistID: mbid,
	})

	if !validMBID(mbid) {
		session.push(eventError, streamError{Message: "malformed artist ID"})
		return
	}

	hints := aggregate.Hints{Name: r.URL.Query().Get("name")}

	// The build runs on the application context. Several sessions may be
	// sharing it and a single client's disconnect must not fail the rest.
	res := <-h.registry.Obtain(mbid, func() (aggregate.Artist, error) {
		return h.builder.Build(h.appCtx, mbid, hints)
	})
	if res.Err != nil {
		if !errors.Is(res.Err, aggregate.ErrNoIdentity) {
			log.Printf("Error building aggregate for %s: %s", mbid, res.Err)
		}
		session.push(eventError, streamError{Message: res.Err.Error()})
		return
	}

	artist := res.Val
	session.push(eventArtist, artist)

	h.enrich(session, mbid, artist)
}

// enrich runs the post-aggregate enrichment tasks. The cover and the
// similar artists are the critical ones, the `complete` event waits for
// them alone. The per-release-group covers keep trickling in afterwards
// and the session closes once they are done too.
func (h *artistStreamHandler) enrich(
	session *streamSession,
	mbid string,
	artist aggregate.Artist,
) {
	var critical, all sync.WaitGroup

	critical.Add(2)
	all.Add(3)

	go func() {
		defer critical.Done()
		defer all.Done()
		h.pushArtistCover(session, mbid, artist.Name)
	}()

	go func() {
		defer critical.Done()
		defer all.Done()
		session.push(eventSimilar, struct {
			Artists []meta.SimilarArtist `json:"artists"`
		}{
			Artists: similarOrEmpty(h.appCtx, h.src, h.lookupMBID(mbid)),
		})
	}()

	go func() {
		defer all.Done()
		h.pushReleaseGroupCovers(session, artist.ReleaseGroups)
	}()

	critical.Wait()
	session.push(eventComplete, struct{}{})

	all.Wait()
}

// lookupMBID applies the artist's override redirection for provider calls.
func (h *artistStreamHandler) lookupMBID(mbid string) string {
	over, err := h.overrides.GetArtistOverride(h.appCtx, mbid)
	if err != nil && !errors.Is(err, settings.ErrNotFound) {
		log.Printf("Error reading override for artist %s: %s", mbid, err)
	}
	if over.AlternateMBID != "" {
		return over.AlternateMBID
	}
	return mbid
}

func (h *artistStreamHandler) pushArtistCover(
	session *streamSession,
	mbid string,
	name string,
) {
	url, err := resolveArtistCoverCached(
		h.appCtx, h.appCtx, h.covers, h.overrides, h.src, mbid, name,
	)
	if err != nil {
		log.Printf("Error resolving cover for artist %s: %s", mbid, err)
	}
	session.push(eventCover, singleImage(url))
}

// pushReleaseGroupCovers resolves covers for the session's release groups.
// Covers already cached or known inline are pushed at once. The rest are
// fetched from the image archive in fixed-size batches, every outcome is
// remembered in the cache before it is pushed.
func (h *artistStreamHandler) pushReleaseGroupCovers(
	session *streamSession,
	groups []aggregate.ReleaseGroup,
) {
	selected := selectRGsForCovers(groups)

	keys := make([]string, 0, len(selected))
	for _, group := range selected {
		keys = append(keys, settings.ReleaseGroupImageKey(group.ID))
	}
	cached := h.covers.LookupMany(h.appCtx, keys)

	var pending []aggregate.ReleaseGroup
	for _, group := range selected {
		key := settings.ReleaseGroupImageKey(group.ID)

		if entry, ok := cached[key]; ok {
			session.push(eventReleaseGroupCover, rgCover(group.ID, entry.URL))
			h.covers.RevalidateIfStale(key, entry, h.rgResolver(group.ID))
			continue
		}
		if group.CoverURL != "" {
			session.push(eventReleaseGroupCover, rgCover(group.ID, group.CoverURL))
			continue
		}

		pending = append(pending, group)
	}

	for len(pending) > 0 {
		// Cancellation is checked at batch boundaries only. A batch
		// which has already started runs to the end so its outcomes
		// reach the cache.
		if session.cancelled() {
			return
		}

		batch := pending
		if len(batch) > rgCoverBatchSize {
			batch = batch[:rgCoverBatchSize]
		}
		pending = pending[len(batch):]

		var wg sync.WaitGroup
		for _, group := range batch {
			wg.Add(1)
			go func(group aggregate.ReleaseGroup) {
				defer wg.Done()
				h.resolveAndPushRGCover(session, group.ID)
			}(group)
		}
		wg.Wait()
	}
}

func (h *artistStreamHandler) resolveAndPushRGCover(
	session *streamSession,
	rgMBID string,
) {
	url, err := h.src.ReleaseGroupCover(h.appCtx, rgMBID)

	key := settings.ReleaseGroupImageKey(rgMBID)
	switch {
	case err == nil:
		if storeErr := h.covers.Store(h.appCtx, key, url); storeErr != nil {
			log.Printf("Error storing cover for release group %s: %s", rgMBID, storeErr)
		}
	case errors.Is(err, meta.ErrNotFound):
		if storeErr := h.covers.StoreNotFound(h.appCtx, key); storeErr != nil {
			log.Printf("Error storing cover for release group %s: %s", rgMBID, storeErr)
		}
	default:
		// A transient failure is not remembered, the next session will
		// try again.
		log.Printf("Error getting cover for release group %s: %s", rgMBID, err)
	}

	session.push(eventReleaseGroupCover, rgCover(rgMBID, url))
}

func (h *artistStreamHandler) rgResolver(rgMBID string) covers.ResolveFunc {
	return func(ctx context.Context) (string, error) {
		return absentOnNotFound(h.src.ReleaseGroupCover(ctx, rgMBID))
	}
}

// selectRGsForCovers picks the release groups whose covers a session
// resolves: only the streamed primary types, up to the session cap.
func selectRGsForCovers(groups []aggregate.ReleaseGroup) []aggregate.ReleaseGroup {
	var selected []aggregate.ReleaseGroup
	for _, group := range groups {
		if _, ok := streamedPrimaryTypes[group.PrimaryType]; !ok {
			continue
		}
		selected = append(selected, group)
		if len(selected) == maxRGCoverCount {
			break
		}
	}
	return selected
}

type streamError struct {
	Message string `json:"message"`
}

// rgCoverPayload is the payload of one releaseGroupCover event.
type rgCoverPayload struct {
	ReleaseGroupID string      `json:"releaseGroupId"`
	Images         []imageInfo `json:"images"`
}

func rgCover(rgMBID, url string) rgCoverPayload {
	return rgCoverPayload{
		ReleaseGroupID: rgMBID,
		Images:         singleImage(url).Images,
	}
}

// streamSession is the per-request delivery state. Pushes are serialized
// with a mutex since the enrichment tasks finish in any order, and they are
// silently dropped once the client has disconnected.
type streamSession struct {
	ctx     context.Context
	w       io.Writer
	flusher http.Flusher
	mu      sync.Mutex
}

// cancelled reports whether the transport has gone away.
func (s *streamSession) cancelled() bool {
	return s.ctx.Err() != nil
}

// push writes one named event with a JSON payload and flushes it to the
// client.
func (s *streamSession) push(event string, payload any) {
	if s.cancelled() {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error encoding %s event payload: %s", event, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled() {
		return
	}

	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data)
	s.flusher.Flush()
	metrics.StreamEvents.WithLabelValues(event).Inc()
}
