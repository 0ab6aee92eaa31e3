package webserver_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gbrlsnchs/jwt/v3"

	"github.com/fungalore/aurral/src/assert"
	"github.com/fungalore/aurral/src/webserver"
)

const testAuthSecret = "test-secret-do-not-use"

func signedTestToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	pl := jwt.Payload{
		IssuedAt:       jwt.NumericDate(now),
		ExpirationTime: jwt.NumericDate(now.Add(expiresIn)),
	}

	token, err := jwt.Sign(pl, jwt.NewHS256([]byte(secret)))
	if err != nil {
		t.Fatalf("signing test token: %s", err)
	}

	return string(token)
}

func authTestServer() http.Handler {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	})

	return webserver.NewAuthHandler(
		okHandler,
		"testuser",
		"testpass",
		testAuthSecret,
		[]string{webserver.APIv1EndpointLoginToken},
	)
}

// TestAuthHandlerChannels goes through every supported way of presenting
// credentials and one from each way of getting them wrong.
func TestAuthHandlerChannels(t *testing.T) {
	handler := authTestServer()
	goodToken := signedTestToken(t, testAuthSecret, time.Hour)

	tests := []struct {
		desc     string
		prepare  func(r *http.Request)
		expected int
	}{
		{
			desc:     "no credentials",
			prepare:  func(*http.Request) {},
			expected: http.StatusUnauthorized,
		},
		{
			desc: "bearer token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+goodToken)
			},
			expected: http.StatusOK,
		},
		{
			desc: "token signed with a different secret",
			prepare: func(r *http.Request) {
				r.Header.Set(
					"Authorization",
					"Bearer "+signedTestToken(t, "other-secret", time.Hour),
				)
			},
			expected: http.StatusUnauthorized,
		},
		{
			desc: "expired token",
			prepare: func(r *http.Request) {
				r.Header.Set(
					"Authorization",
					"Bearer "+signedTestToken(t, testAuthSecret, -time.Hour),
				)
			},
			expected: http.StatusUnauthorized,
		},
		{
			desc: "basic auth",
			prepare: func(r *http.Request) {
				creds := base64.StdEncoding.EncodeToString([]byte("testuser:testpass"))
				r.Header.Set("Authorization", "Basic "+creds)
			},
			expected: http.StatusOK,
		},
		{
			desc: "basic auth with a wrong password",
			prepare: func(r *http.Request) {
				creds := base64.StdEncoding.EncodeToString([]byte("testuser:wrong"))
				r.Header.Set("Authorization", "Basic "+creds)
			},
			expected: http.StatusUnauthorized,
		},
		{
			desc: "session cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session", Value: goodToken})
			},
			expected: http.StatusOK,
		},
		{
			desc: "token query parameter",
			prepare: func(r *http.Request) {
				query := r.URL.Query()
				query.Set("token", goodToken)
				r.URL.RawQuery = query.Encode()
			},
			expected: http.StatusOK,
		},
		{
			desc: "garbage token query parameter",
			prepare: func(r *http.Request) {
				query := r.URL.Query()
				query.Set("token", "garbage")
				r.URL.RawQuery = query.Encode()
			},
			expected: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/artist/some/stream", nil)
			test.prepare(req)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, test.expected, rec.Code)
		})
	}
}

// TestAuthHandlerExceptions makes sure the excepted paths pass without any
// credentials. Otherwise nobody would be able to log in.
func TestAuthHandlerExceptions(t *testing.T) {
	handler := authTestServer()

	req := httptest.NewRequest(
		http.MethodPost,
		webserver.APIv1EndpointLoginToken,
		nil,
	)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
