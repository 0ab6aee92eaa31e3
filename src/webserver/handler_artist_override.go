package webserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fungalore/aurral/src/settings"
)

// artistOverrideHandler manages the manual override of one artist. Storing
// or removing an override also forgets the artist's remembered cover so
// that its next resolution honors the change.
type artistOverrideHandler struct {
	store *settings.Store
}

// NewArtistOverrideHandler returns a handler for the artist override
// endpoint.
func NewArtistOverrideHandler(store *settings.Store) http.Handler {
	return &artistOverrideHandler{store: store}
}

func (h *artistOverrideHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	vars := mux.Vars(r)
	mbid := vars["artistID"]
	if !validMBID(mbid) {
		respondWithJSONError(w, http.StatusBadRequest, "malformed artist ID")
		return
	}

	if r.Method == http.MethodDelete {
		if err := h.store.RemoveArtistOverride(r.Context(), mbid); err != nil {
			respondWithJSONError(
				w,
				http.StatusInternalServerError,
				"Error removing override: %s.",
				err,
			)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var over settings.Override
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&over); err != nil {
		respondWithJSONError(
			w,
			http.StatusBadRequest,
			"Error parsing JSON request: %s.",
			err,
		)
		return
	}

	over.MBID = mbid
	if over.AlternateMBID != "" && !validMBID(over.AlternateMBID) {
		respondWithJSONError(w, http.StatusBadRequest, "malformed alternate MBID")
		return
	}

	if err := h.store.SetArtistOverride(r.Context(), over); err != nil {
		respondWithJSONError(
			w,
			http.StatusInternalServerError,
			"Error storing override: %s.",
			err,
		)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
