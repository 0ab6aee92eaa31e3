package meta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	cca "gopkg.in/mineo/gocaa.v1"

	"github.com/fungalore/aurral/src/metrics"
)

// Client implements Source on top of the real upstream providers. It
// automatically throttles its MusicBrainz requests so that it does not make
// too many of them at once. It is safe for concurrent use.
type Client struct {
	sync.Mutex

	delay     time.Duration
	delayer   *time.Timer
	useragent string

	lastFMAPIKey     string
	discogsAuthToken string
	caaClient        CAAClient

	musicBrainzAPIHost string
	lastFMAPIHost      string
	discogsAPIHost     string
}

// NewClient returns fully configured Client.
//
// The kind people at MusicBrainz provide their API at no cost for everyone
// to use. For that reason they have kindly asked for all applications to
// throttle their usage as much as possible and do not exceed one request
// per second. So we are a good citizen and throttle ourselves. The user
// agent is used for representing the application when contacting the
// MusicBrainz API. No more than one request per `delay` will be made.
//
// The Last.fm and Discogs APIs have taken a different path to achieve the
// same. They require a per-application API key or token which one generates
// with a personal account. When either is the empty string the corresponding
// calls return their no-auth error immediately.
func NewClient(
	useragent string,
	delay time.Duration,
	lastFMAPIKey string,
	discogsToken string,
) *Client {
	return &Client{
		useragent:          useragent,
		delay:              delay,
		delayer:            time.NewTimer(delay),
		lastFMAPIKey:       lastFMAPIKey,
		discogsAuthToken:   discogsToken,
		caaClient:          cca.NewCAAClient(useragent),
		musicBrainzAPIHost: "https://musicbrainz.org",
		lastFMAPIHost:      "https://ws.audioscrobbler.com",
		discogsAPIHost:     "https://api.discogs.com",
	}
}

// SetMusicBrainzAPIURL changes the MusicBrainz API base URL. Useful for
// pointing the client at a mirror.
func (c *Client) SetMusicBrainzAPIURL(apiURL string) {
	c.musicBrainzAPIHost = apiURL
}

// SetLastFMAPIURL changes the Last.fm API base URL.
func (c *Client) SetLastFMAPIURL(apiURL string) {
	c.lastFMAPIHost = apiURL
}

// SetDiscogsAPIURL changes the Discogs API base URL.
func (c *Client) SetDiscogsAPIURL(apiURL string) {
	c.discogsAPIHost = apiURL
}

// getJSON makes an HTTP GET request to endpointURL with the client's user
// agent and a timeout and decodes the JSON response in `into`. A non-200
// response which is not 404 is returned as an error. 404 is ErrNotFound.
// Every call is counted under the provider's name.
func (c *Client) getJSON(
	ctx context.Context,
	provider string,
	endpointURL string,
	headers map[string]string,
	into any,
) (retErr error) {
	defer func() {
		metrics.CountProviderCall(provider, retErr, errors.Is(retErr, ErrNotFound))
	}()

	req, err := http.NewRequest(http.MethodGet, endpointURL, nil)
	if err != nil {
		return fmt.Errorf("error creating provider request: %w", err)
	}

	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")
	for key, val := range headers {
		req.Header.Set(key, val)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned HTTP %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("decoding provider JSON response: %w", err)
	}

	return nil
}

// mbThrottle blocks until the MusicBrainz delayer allows a new request and
// re-arms it. The returned function must be called once the request is done.
func (c *Client) mbThrottle() func() {
	c.Lock()
	<-c.delayer.C

	return func() {
		c.delayer.Reset(c.delay)
		c.Unlock()
	}
}
