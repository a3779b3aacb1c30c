package downloader

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// ErrBadStatus is returned when the asset server does not answer 200.
var ErrBadStatus = errors.New("unexpected status code")

// HTTPDownloader implements ports.Downloader using standard HTTP.
type HTTPDownloader struct {
	client *http.Client
}

// NewHTTPDownloader creates a new HTTPDownloader. A zero timeout disables it.
func NewHTTPDownloader(timeout time.Duration) *HTTPDownloader {
	return &HTTPDownloader{
		client: &http.Client{Timeout: timeout},
	}
}

// Download starts a streamed GET of assetURL. The body is only returned on 200.
func (d *HTTPDownloader) Download(ctx context.Context, assetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to download asset")
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Wrapf(ErrBadStatus, "%d", resp.StatusCode)
	}

	return resp.Body, nil
}
