package meta

import "errors"

// ErrNotFound is returned by the Source calls when the provider confirmed
// that the requested entity or image does not exist. It is distinct from a
// provider being unreachable or failing.
var ErrNotFound = errors.New("not found in provider")

// ErrNoLastFMAuth signals that there is no configured Last.fm API key. Calls
// which need one are doomed from the get-go and callers are expected to
// degrade to empty results.
var ErrNoLastFMAuth = errors.New("authentication with Last.fm is not configured")

// ErrNoDiscogsAuth signals that there is no configured Discogs token.
var ErrNoDiscogsAuth = errors.New("authentication with Discogs is not configured")
