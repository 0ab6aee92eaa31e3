package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	APIv1EndpointArtistStream   = "/v1/artist/{artistID}/stream"
	APIv1EndpointArtistCover    = "/v1/artist/{artistID}/cover"
	APIv1EndpointArtistSimilar  = "/v1/artist/{artistID}/similar"
	APIv1EndpointArtistPreview  = "/v1/artist/{artistID}/preview"
	APIv1EndpointArtistOverride = "/v1/artist/{artistID}/override"
	APIv1EndpointLoginToken     = "/v1/login/token/"

	EndpointMetrics = "/metrics"
)

// APIv1Methods defines on which HTTP methods APIv1 endpoints will respond
// to. It is an uri_path => list of HTTP methods map.
var APIv1Methods = map[string][]string{
	APIv1EndpointArtistStream:   {http.MethodGet},
	APIv1EndpointArtistCover:    {http.MethodGet},
	APIv1EndpointArtistSimilar:  {http.MethodGet},
	APIv1EndpointArtistPreview:  {http.MethodGet},
	APIv1EndpointArtistOverride: {http.MethodPut, http.MethodDelete},
	APIv1EndpointLoginToken:     {http.MethodPost},
}
