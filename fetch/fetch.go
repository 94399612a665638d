package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jsphweid/patterndex/constants"
	"github.com/mdobak/go-xerrors"
)

var ErrBadStatus = errors.New("unexpected HTTP status")

var client = &http.Client{Timeout: 30 * time.Second}

// IsURL reports whether s names a remote chart rather than a local path.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Download fetches a chart file.
func Download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, xerrors.New(fmt.Errorf("downloading %s: %s: %w", rawURL, resp.Status, ErrBadStatus))
	}

	dat, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxChartSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if len(dat) > constants.MaxChartSize {
		return nil, fmt.Errorf("chart at %s exceeds %d bytes", rawURL, constants.MaxChartSize)
	}
	return dat, nil
}
