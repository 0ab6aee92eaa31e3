package webserver

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gbrlsnchs/jwt/v3"
)

const authRequiredJSON = `{"error": "authentication required"}`

// AuthHandler is a handler wrapper used for authentication. Its only job is
// to do the authentication and then pass the work to the handler it wraps
// around. Possible methods for authentication:
//
//   - Basic Auth with the username and password
//   - Authorization Bearer JWT token
//   - JWT token in a session cookie
//   - JWT token as the `token` query string parameter
//
// The query parameter is there for the stream endpoint. EventSource clients
// cannot set request headers so they carry the token in the URL.
type AuthHandler struct {
	wrapped    http.Handler // The actual handler that does the APP logic job.
	username   string       // Username to be used for basic authentication.
	password   string       // Password to be used for basic authentication.
	secret     string       // Secret used to craft and decode tokens.
	exceptions []string     // Paths which will be exempt from authentication.
}

// NewAuthHandler returns an authentication wrapper around `wrapped`. The
// paths in exceptions are passed through without any check.
func NewAuthHandler(
	wrapped http.Handler,
	username string,
	password string,
	secret string,
	exceptions []string,
) *AuthHandler {
	return &AuthHandler{
		wrapped:    wrapped,
		username:   username,
		password:   password,
		secret:     secret,
		exceptions: exceptions,
	}
}

// ServeHTTP implements the http.Handler interface and does the actual
// authentication check for every request.
func (hl *AuthHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if !hl.authenticated(req) {
		hl.challengeAuthentication(writer)
		return
	}

	hl.wrapped.ServeHTTP(writer, req)
}

// challengeAuthentication sends 401 with an authentication challenge.
func (hl *AuthHandler) challengeAuthentication(writer http.ResponseWriter) {
	writer.Header().Set("WWW-Authenticate", `Basic realm="Aurral"`)
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(http.StatusUnauthorized)
	_, _ = writer.Write([]byte(authRequiredJSON))
}

// authenticated checks all supported authentication channels and returns
// true when any of them passes.
func (hl *AuthHandler) authenticated(r *http.Request) bool {
	for _, path := range hl.exceptions {
		if strings.HasPrefix(r.URL.Path, path) {
			return true
		}
	}

	authHeader := r.Header.Get("Authorization")

	if strings.HasPrefix(authHeader, "Bearer ") {
		return hl.withJWT(strings.TrimPrefix(authHeader, "Bearer "))
	}

	if strings.HasPrefix(authHeader, "Basic ") {
		return hl.withBasicAuth(strings.TrimPrefix(authHeader, "Basic "))
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return hl.withJWT(cookie.Value)
	}

	if queryToken := r.URL.Query().Get("token"); queryToken != "" {
		return hl.withJWT(queryToken)
	}

	return false
}

func (hl *AuthHandler) withBasicAuth(encoded string) bool {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return false
	}

	pair := strings.SplitN(string(b), ":", 2)
	if len(pair) != 2 {
		return false
	}

	return pair[0] == hl.username && pair[1] == hl.password
}

func (hl *AuthHandler) withJWT(token string) bool {
	if len(hl.secret) == 0 {
		return false
	}

	var pl jwt.Payload
	verifier := jwt.NewHS256([]byte(hl.secret))
	expValidator := jwt.ValidatePayload(&pl, jwt.ExpirationTimeValidator(time.Now()))

	_, err := jwt.Verify([]byte(token), verifier, &pl, expValidator)
	return err == nil
}
