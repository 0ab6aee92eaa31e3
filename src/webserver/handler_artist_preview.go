package webserver

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fungalore/aurral/src/aggregate"
	"github.com/fungalore/aurral/src/covers"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/scaler"
)

// smallPreviewWidth is the pixel width of `?size=small` previews.
const smallPreviewWidth = 250

// artistPreviewHandler serves the actual image bytes of an artist's cover,
// optionally scaled down to a thumbnail.
type artistPreviewHandler struct {
	appCtx    context.Context
	covers    *covers.Cache
	overrides aggregate.Overrides
	src       meta.Source
	scaler    *scaler.Pool
}

// NewArtistPreviewHandler returns a handler which downloads the resolved
// cover of an artist and serves it, scaled through the pool when a small
// size is requested.
func NewArtistPreviewHandler(
	appCtx context.Context,
	cache *covers.Cache,
	overrides aggregate.Overrides,
	src meta.Source,
	pool *scaler.Pool,
) http.Handler {
	return &artistPreviewHandler{
		appCtx:    appCtx,
		covers:    cache,
		overrides: overrides,
		src:       src,
		scaler:    pool,
	}
}

func (h *artistPreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mbid := vars["artistID"]
	if !validMBID(mbid) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintln(w, "malformed artist ID")
		return
	}

	url, err := resolveArtistCoverCached(
		r.Context(), h.appCtx, h.covers, h.overrides, h.src,
		mbid, r.URL.Query().Get("name"),
	)
	if err != nil {
		log.Printf("Error resolving preview for artist %s: %s", mbid, err)
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	if url == "" {
		http.NotFoundHandler().ServeHTTP(w, r)
		return
	}

	img, err := h.download(r.Context(), url)
	if err != nil {
		log.Printf("Error downloading cover %s: %s", url, err)
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	defer img.Close()

	w.Header().Set("Cache-Control", "max-age=604800")

	if r.URL.Query().Get("size") != "small" {
		if _, err := io.Copy(w, img); err != nil {
			log.Printf("Error sending preview for artist %s: %s", mbid, err)
		}
		return
	}

	thumb, err := h.scaler.Thumbnail(r.Context(), img, smallPreviewWidth)
	if err != nil {
		log.Printf("Error scaling preview for artist %s: %s", mbid, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := w.Write(thumb); err != nil {
		log.Printf("Error sending thumbnail for artist %s: %s", mbid, err)
	}
}

func (h *artistPreviewHandler) download(
	ctx context.Context,
	url string,
) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("image host returned HTTP %d", resp.StatusCode)
	}

	return &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelReadCloser releases the download context together with the body.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	c.cancel()
	return c.ReadCloser.Close()
}
