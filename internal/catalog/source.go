// Package catalog loads the country catalog and per-country datasets from a
// local data directory or a remote base URL, and resolves which country to
// show first.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/popviz/internal/dataset"
)

// CatalogFile is the well-known name of the country listing.
const CatalogFile = "country_list.json"

// Source provides the country catalog and individual country documents.
type Source interface {
	Catalog(ctx context.Context) ([]string, error)
	Dataset(ctx context.Context, country string) (dataset.Document, error)
}

// DirSource reads datasets from a local data directory.
type DirSource struct {
	Dir string
}

// NewDirSource returns a source over the given directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) Catalog(ctx context.Context) ([]string, error) {
	path := filepath.Join(s.Dir, CatalogFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &dataset.FetchError{URL: path, Err: err}
	}
	var countries []string
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, &dataset.FetchError{URL: path, Err: err}
	}
	return countries, nil
}

func (s *DirSource) Dataset(ctx context.Context, country string) (dataset.Document, error) {
	path := filepath.Join(s.Dir, dataset.FileName(country))
	data, err := os.ReadFile(path)
	if err != nil {
		return dataset.Document{}, &dataset.FetchError{URL: path, Err: err}
	}
	var doc dataset.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return dataset.Document{}, &dataset.FetchError{URL: path, Err: err}
	}
	return doc, nil
}

// HTTPSource fetches datasets from a remote base URL serving the same
// data/ layout. Requests are single-shot; a failed fetch surfaces to the
// user and re-selecting the country retries.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns a source over baseURL with a request timeout.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPSource) Catalog(ctx context.Context) ([]string, error) {
	var countries []string
	if err := s.getJSON(ctx, CatalogFile, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (s *HTTPSource) Dataset(ctx context.Context, country string) (dataset.Document, error) {
	var doc dataset.Document
	if err := s.getJSON(ctx, dataset.FileName(country), &doc); err != nil {
		return dataset.Document{}, err
	}
	return doc, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, name string, out any) error {
	url := fmt.Sprintf("%s/%s", s.BaseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &dataset.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", "popviz")
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return &dataset.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &dataset.FetchError{URL: url, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &dataset.FetchError{URL: url, Err: err}
	}
	return nil
}
