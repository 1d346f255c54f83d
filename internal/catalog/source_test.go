package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/popviz/internal/dataset"
)

func writeTestData(t *testing.T, dir string) {
	t.Helper()

	countries := []string{"Algeria", "Japan", "United_States"}
	data, _ := json.Marshal(countries)
	if err := os.WriteFile(filepath.Join(dir, CatalogFile), data, 0644); err != nil {
		t.Fatal(err)
	}

	doc := dataset.Document{
		Country: "Algeria",
		Year:    2023,
		Data: []dataset.AgeBand{
			{AgeGroup: "0-4", Male: 100, Female: 95},
			{AgeGroup: "5-9", Male: 110, Female: 105},
		},
	}
	data, _ = json.Marshal(doc)
	if err := os.WriteFile(filepath.Join(dir, "Algeria_pyramid.json"), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	writeTestData(t, dir)
	src := NewDirSource(dir)

	countries, err := src.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog failed: %v", err)
	}
	if len(countries) != 3 || countries[0] != "Algeria" {
		t.Errorf("unexpected catalog: %v", countries)
	}

	doc, err := src.Dataset(context.Background(), "Algeria")
	if err != nil {
		t.Fatalf("dataset failed: %v", err)
	}
	if doc.Year != 2023 || len(doc.Data) != 2 {
		t.Errorf("unexpected document: year=%d bands=%d", doc.Year, len(doc.Data))
	}
}

func TestDirSourceMissing(t *testing.T) {
	src := NewDirSource(t.TempDir())

	_, err := src.Catalog(context.Background())
	var fe *dataset.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}

	_, err = src.Dataset(context.Background(), "Atlantis")
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + CatalogFile:
			json.NewEncoder(w).Encode([]string{"Algeria", "Japan"})
		case "/Algeria_pyramid.json":
			json.NewEncoder(w).Encode(dataset.Document{
				Country: "Algeria", Year: 2023,
				Data: []dataset.AgeBand{{AgeGroup: "0-4", Male: 1, Female: 1}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL + "/")

	countries, err := src.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog failed: %v", err)
	}
	if len(countries) != 2 {
		t.Errorf("expected 2 countries, got %d", len(countries))
	}

	doc, err := src.Dataset(context.Background(), "Algeria")
	if err != nil {
		t.Fatalf("dataset failed: %v", err)
	}
	if doc.Country != "Algeria" {
		t.Errorf("expected Algeria, got %s", doc.Country)
	}
}

func TestHTTPSourceStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	_, err := src.Dataset(context.Background(), "Atlantis")

	var fe *dataset.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", fe.Status)
	}
}

func TestHTTPSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	src := NewHTTPSource(srv.URL)
	_, err := src.Catalog(context.Background())

	var fe *dataset.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		catalog   []string
		requested string
		want      string
	}{
		{"requested member wins", []string{"Algeria", "Japan"}, "Japan", "Japan"},
		{"unknown request falls to default", []string{"Algeria", "Japan"}, "Atlantis", "Algeria"},
		{"empty request falls to default", []string{"Japan", "Algeria"}, "", "Algeria"},
		{"no default uses first entry", []string{"Japan", "Kenya"}, "", "Japan"},
		{"no default, unknown request", []string{"Japan", "Kenya"}, "Atlantis", "Japan"},
		{"empty catalog", nil, "Atlantis", "Algeria"},
	}

	for _, tt := range tests {
		if got := Resolve(tt.catalog, tt.requested); got != tt.want {
			t.Errorf("%s: Resolve(%v, %q) = %q, want %q",
				tt.name, tt.catalog, tt.requested, got, tt.want)
		}
	}
}
