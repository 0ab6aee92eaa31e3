package meta

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pborman/uuid"
	cca "gopkg.in/mineo/gocaa.v1"

	"github.com/fungalore/aurral/src/metrics"
)

//counterfeiter:generate . CAAClient

// CAAClient represents a Cover Art Archive client for getting the image
// information of a release group.
type CAAClient interface {
	GetReleaseGroupInfo(mbid uuid.UUID) (info *cca.CoverArtInfo, err error)
}

// caaCallTimeout bounds a single Cover Art Archive call. The archive is
// slow for misses and the streaming handlers fetch many covers, so a
// hanging call must not hold a whole batch hostage.
const caaCallTimeout = 3 * time.Second

// ReleaseGroupCover implements Source using the Cover Art Archive. It
// returns the URL of the front image of a release group or ErrNotFound when
// the archive has confirmed there is none.
func (c *Client) ReleaseGroupCover(
	ctx context.Context,
	rgMBID string,
) (coverURL string, retErr error) {
	defer func() {
		metrics.CountProviderCall("caa", retErr, errors.Is(retErr, ErrNotFound))
	}()

	type caaResult struct {
		info *cca.CoverArtInfo
		err  error
	}

	// The underlying client has no context support so the call runs in its
	// own goroutine and is abandoned on timeout. The goroutine itself ends
	// once the HTTP call inside returns.
	resCh := make(chan caaResult, 1)
	go func() {
		info, err := c.caaClient.GetReleaseGroupInfo(cca.StringToUUID(rgMBID))
		resCh <- caaResult{info: info, err: err}
	}()

	ctx, cancel := context.WithTimeout(ctx, caaCallTimeout)
	defer cancel()

	var res caaResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-resCh:
	}

	if res.err != nil {
		var httpErr cca.HTTPError
		if errors.As(res.err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return "", ErrNotFound
		}
		return "", res.err
	}

	for _, img := range res.info.Images {
		if img.Front && img.Image != "" {
			return img.Image, nil
		}
	}

	return "", ErrNotFound
}
