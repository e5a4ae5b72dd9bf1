package cache

import (
	"io"
	"net/http"

	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
)

// Fetcher retrieves single pages straight from the canonical source, used
// when the local cache is disabled.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

// NewFetcher returns a Fetcher rooted at the canonical pages URL
func NewFetcher(baseURL string) *Fetcher {
	return &Fetcher{client: http.DefaultClient, baseURL: baseURL}
}

// WithClient replaces the HTTP client, mainly for tests
func (f *Fetcher) WithClient(client *http.Client) *Fetcher {
	f.client = client
	return f
}

// Page fetches the raw document for command on platform. One GET, no
// retries; any failure reads as "page not found" to the caller for a
// missing page and as a network error otherwise.
func (f *Fetcher) Page(platform, command string) (string, error) {
	url := f.baseURL + "/" + platform + "/" + command + ".md"

	logger := logging.GetLogger("cache")
	logger.Debug().Str("url", url).Msg("Fetching page directly")
	resp, err := f.client.Get(url)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNetwork, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", errors.Newf(errors.ErrPageNotFound, "no page for %q on %s", command, platform).
			WithDetail("url", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrHTTPStatus, "page fetch returned %s", resp.Status).
			WithDetail("url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNetwork, "failed to read %s", url)
	}
	return string(body), nil
}
