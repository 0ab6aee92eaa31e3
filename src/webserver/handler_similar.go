package webserver

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fungalore/aurral/src/meta"
)

// similarArtistsHandler serves the similar artists of one artist as JSON.
type similarArtistsHandler struct {
	src meta.Source
}

// NewSimilarArtistsHandler returns a handler which serves similar artists
// from the relation provider.
func NewSimilarArtistsHandler(src meta.Source) http.Handler {
	return &similarArtistsHandler{src: src}
}

func (h *similarArtistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	vars := mux.Vars(r)
	mbid := vars["artistID"]
	if !validMBID(mbid) {
		respondWithJSONError(w, http.StatusBadRequest, "malformed artist ID")
		return
	}

	enc := json.NewEncoder(w)
	_ = enc.Encode(struct {
		Artists []meta.SimilarArtist `json:"artists"`
	}{
		Artists: similarOrEmpty(r.Context(), h.src, mbid),
	})
}

// similarOrEmpty degrades every relation provider failure, including the
// provider not being configured at all, to an empty result.
func similarOrEmpty(
	ctx context.Context,
	src meta.Source,
	mbid string,
) []meta.SimilarArtist {
	similar, err := src.SimilarArtists(ctx, mbid)
	if err == nil {
		return similar
	}

	if !errors.Is(err, meta.ErrNoLastFMAuth) && !errors.Is(err, meta.ErrNotFound) {
		log.Printf("Error getting similar artists for %s: %s", mbid, err)
	}
	return []meta.SimilarArtist{}
}
