package webserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pborman/uuid"

	"github.com/fungalore/aurral/src/config"
)

const (
	// sessionCookieName is the cookie in which a browser session carries
	// its JWT.
	sessionCookieName = "session"

	// tokenDuration is the validity of the JWTs issued by the login
	// token endpoint.
	tokenDuration = 365 * 24 * time.Hour
)

// validMBID tells whether a request path artist ID is an UUID-shaped
// MusicBrainz identifier.
func validMBID(mbid string) bool {
	return uuid.Parse(mbid) != nil
}

// checkLoginCreds compares the credentials supplied by a login attempt with
// the configured ones.
func checkLoginCreds(user, pass string, auth config.Auth) bool {
	return user == auth.User && pass == auth.Password
}

// respondWithJSONError writes an `error` JSON object with this code.
func respondWithJSONError(
	w http.ResponseWriter,
	code int,
	msgf string,
	args ...interface{},
) {
	resp := struct {
		Error string `json:"error"`
	}{
		Error: fmt.Sprintf(msgf, args...),
	}

	enc := json.NewEncoder(w)

	w.WriteHeader(code)
	_ = enc.Encode(resp)
}
