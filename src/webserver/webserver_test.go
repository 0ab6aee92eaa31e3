package webserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/fungalore/aurral/src/settings"
)

// memStore is an in-memory stand-in for the settings store parts the
// handlers use: cover rows and artist overrides.
type memStore struct {
	mu    sync.Mutex
	rows  map[string]settings.ImageRow
	overs map[string]settings.Override
}

func newMemStore() *memStore {
	return &memStore{
		rows:  map[string]settings.ImageRow{},
		overs: map[string]settings.Override{},
	}
}

func (m *memStore) GetImage(_ context.Context, key string) (settings.ImageRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[key]
	if !ok {
		return settings.ImageRow{}, settings.ErrNotFound
	}
	return row, nil
}

func (m *memStore) GetImages(
	_ context.Context,
	keys []string,
) (map[string]settings.ImageRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := map[string]settings.ImageRow{}
	for _, key := range keys {
		if row, ok := m.rows[key]; ok {
			found[key] = row
		}
	}
	return found, nil
}

func (m *memStore) SetImage(_ context.Context, key, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[key] = settings.ImageRow{URL: url, UpdatedAt: time.Now()}
	return nil
}

func (m *memStore) GetArtistOverride(
	_ context.Context,
	mbid string,
) (settings.Override, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	over, ok := m.overs[mbid]
	if !ok {
		return settings.Override{}, settings.ErrNotFound
	}
	return over, nil
}

func (m *memStore) setOverride(over settings.Override) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overs[over.MBID] = over
}

func (m *memStore) imageRow(t *testing.T, key string) settings.ImageRow {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[key]
	if !ok {
		t.Fatalf("expected a stored cover row for %s", key)
	}
	return row
}

func (m *memStore) hasImageRow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[key]
	return ok
}

// routeHandler attaches a handler on its endpoint so that mux populates the
// request variables the same way the real server does.
func routeHandler(endpoint string, handler http.Handler) http.Handler {
	router := mux.NewRouter()
	router.Handle(endpoint, handler)
	return router
}

// sseEvent is one parsed server-sent event.
type sseEvent struct {
	name string
	data string
}

func (e sseEvent) decode(t *testing.T, into any) {
	t.Helper()
	if err := json.Unmarshal([]byte(e.data), into); err != nil {
		t.Fatalf("decoding %s event payload %q: %s", e.name, e.data, err)
	}
}

// parseSSE splits a recorded event stream body into its events.
func parseSSE(t *testing.T, body string) []sseEvent {
	t.Helper()

	var events []sseEvent
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		var event sseEvent
		for _, line := range strings.Split(chunk, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				event.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				event.data = strings.TrimPrefix(line, "data: ")
			default:
				t.Fatalf("unexpected line in event stream: %q", line)
			}
		}
		if event.name == "" {
			t.Fatalf("event with no name in stream chunk %q", chunk)
		}
		events = append(events, event)
	}

	return events
}

// eventNames extracts the event names in the order they were pushed.
func eventNames(events []sseEvent) []string {
	names := make([]string, 0, len(events))
	for _, event := range events {
		names = append(names, event.name)
	}
	return names
}

func countEvents(events []sseEvent, name string) int {
	var count int
	for _, event := range events {
		if event.name == name {
			count++
		}
	}
	return count
}

func indexOfEvent(t *testing.T, events []sseEvent, name string) int {
	t.Helper()
	for i, event := range events {
		if event.name == name {
			return i
		}
	}
	t.Fatalf("no %s event in the stream: %v", name, eventNames(events))
	return -1
}
