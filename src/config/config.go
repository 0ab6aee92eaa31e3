// Package config is responsible for finding and parsing the Aurral user
// configuration and merging it on top of the defaults.
//
// Linux/BSD configurations live in $HOME/.aurral/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ConfigName is the name of the configuration file inside the user path.
const ConfigName = "config.json"

// Config represents everything which could be in the config.json file.
type Config struct {
	Listen         string `json:"listen"`
	SSL            bool   `json:"ssl"`
	SSLCertificate Cert   `json:"ssl_certificate"`
	Auth           bool   `json:"authentication_required"`
	Authenticate   Auth   `json:"authentication"`
	LogFile        string `json:"log_file"`
	SqliteDatabase string `json:"sqlite_database"`
	Gzip           bool   `json:"gzip"`
	ReadTimeout    int    `json:"read_timeout"`
	WriteTimeout   int    `json:"write_timeout"`
	MaxHeadersSize int    `json:"max_header_bytes"`

	Providers Providers `json:"providers"`
}

// Cert represents a pair of TLS certificate and its key on the file system.
type Cert struct {
	Crt string `json:"crt"`
	Key string `json:"key"`
}

// Auth contains the server credentials and the secret used for its tokens.
type Auth struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Secret   string `json:"secret"`
}

// Providers contains everything needed for contacting the upstream metadata
// and image providers.
type Providers struct {
	// UserAgent is used for representing the server when contacting the
	// MusicBrainz and Cover Art Archive APIs. They require a meaningful
	// user agent for their client throttling.
	UserAgent string `json:"user_agent"`

	// MusicBrainzHost is the base URL of the MusicBrainz web service.
	MusicBrainzHost string `json:"musicbrainz_api"`

	// MusicBrainzDelayMs is the minimal time between two requests to the
	// MusicBrainz API in milliseconds. The kind people at MusicBrainz
	// provide their API at no cost and ask clients not to exceed one
	// request per second.
	MusicBrainzDelayMs int `json:"musicbrainz_delay_ms"`

	// LastFMHost is the base URL of the Last.fm API.
	LastFMHost string `json:"lastfm_api"`

	// LastFMAPIKey enables the similar artists and biography lookups.
	// When empty those lookups return empty results.
	LastFMAPIKey string `json:"lastfm_api_key"`

	// DiscogsHost is the base URL of the Discogs API.
	DiscogsHost string `json:"discogs_api"`

	// DiscogsAuthToken enables artist image lookups. When empty those
	// lookups return not-found.
	DiscogsAuthToken string `json:"discogs_auth_token"`
}

// MusicBrainzDelay returns the MusicBrainz throttle delay as time.Duration.
func (p Providers) MusicBrainzDelay() time.Duration {
	return time.Duration(p.MusicBrainzDelayMs) * time.Millisecond
}

// Default returns the configuration with which the server is started when the
// user has not overridden anything.
func Default() Config {
	return Config{
		Listen:         ":9996",
		Gzip:           true,
		ReadTimeout:    15,
		WriteTimeout:   1200,
		MaxHeadersSize: 1048576,
		SqliteDatabase: "aurral.db",
		LogFile:        "aurral.log",
		Providers: Providers{
			UserAgent:          "Aurral Media Server",
			MusicBrainzHost:    "https://musicbrainz.org",
			MusicBrainzDelayMs: 1000,
			LastFMHost:         "https://ws.audioscrobbler.com",
			DiscogsHost:        "https://api.discogs.com",
		},
	}
}

// FindAndParse returns the parsed configuration for the user path. The user's
// config.json, if present, is unmarshalled on top of the defaults so that
// only set values override them. A missing user file is not an error.
func FindAndParse(userPath string) (Config, error) {
	cfg := Default()

	cfgPath := filepath.Join(userPath, ConfigName)
	fh, err := os.Open(cfgPath)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("opening config file: %w", err)
	}
	defer fh.Close()

	dec := json.NewDecoder(fh)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing `%s`: %w", cfgPath, err)
	}

	return cfg, nil
}
