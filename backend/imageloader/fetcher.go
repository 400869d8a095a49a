package imageloader

import (
	"fmt"
	"golang.org/x/sync/singleflight"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/common/logger"
)

// Fetcher reads assets over HTTP(S) or from the local file system.
// Concurrent requests for the same address share one fetch.
type Fetcher struct {
	client *http.Client
	group  singleflight.Group

	api.ImageFetcher
}

// NewFetcher uses http.DefaultClient when client is nil. Asset fetches
// have no timeout of their own.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client: client,
	}
}

func (s *Fetcher) Fetch(address string) ([]byte, error) {
	data, err, shared := s.group.Do(address, func() (interface{}, error) {
		return s.fetch(address)
	})
	if shared && logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Shared fetch of '%s'", address)
	}
	if err != nil {
		return nil, err
	}
	return data.([]byte), nil
}

func (s *Fetcher) fetch(address string) ([]byte, error) {
	startTime := time.Now()
	parsed, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("invalid image address '%s': %w", address, err)
	}

	var data []byte
	switch {
	case parsed.Scheme == "http" || parsed.Scheme == "https":
		data, err = s.fetchHttp(address)
	case parsed.Scheme == "file":
		data, err = os.ReadFile(parsed.Path)
	case parsed.Scheme == "" || len(parsed.Scheme) == 1:
		// Plain paths, including Windows drive letters
		data, err = os.ReadFile(address)
	default:
		err = fmt.Errorf("unsupported scheme '%s' in '%s'", parsed.Scheme, address)
	}
	if err != nil {
		return nil, err
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Fetched %d bytes in %s", address, len(data), time.Since(startTime))
	}
	return data, nil
}

func (s *Fetcher) fetchHttp(address string) ([]byte, error) {
	response, err := s.client.Get(address)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch '%s': unexpected status %s", address, response.Status)
	}
	return io.ReadAll(response.Body)
}
