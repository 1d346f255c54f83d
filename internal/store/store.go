// Package store reads and writes the data directory layout shared with the
// data generator: one <country>_pyramid.json and <country>_pyramid.csv per
// country plus a country_list.json catalog.
package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/popviz/internal/dataset"
)

const catalogFile = "country_list.json"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SaveDocument writes the JSON dataset a viewer loads plus a CSV sibling
// for spreadsheet use.
func (s *Store) SaveDocument(doc dataset.Document) error {
	jsonPath := filepath.Join(s.baseDir, dataset.FileName(doc.Country))

	f, err := os.Create(jsonPath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}

	csvPath := strings.TrimSuffix(jsonPath, ".json") + ".csv"
	cf, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer cf.Close()

	w := csv.NewWriter(cf)
	defer w.Flush()

	if err := w.Write([]string{"Age Group", "Male", "Female"}); err != nil {
		return err
	}
	for _, band := range doc.Data {
		row := []string{
			band.AgeGroup,
			strconv.FormatFloat(band.Male, 'f', 0, 64),
			strconv.FormatFloat(band.Female, 'f', 0, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// LoadDocument reads one country's dataset back.
func (s *Store) LoadDocument(country string) (dataset.Document, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, dataset.FileName(country)))
	if err != nil {
		return dataset.Document{}, err
	}
	var doc dataset.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return dataset.Document{}, err
	}
	return doc, nil
}

// SaveCatalog writes the sorted country listing.
func (s *Store) SaveCatalog(countries []string) error {
	sorted := append([]string(nil), countries...)
	sort.Strings(sorted)

	f, err := os.Create(filepath.Join(s.baseDir, catalogFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sorted)
}

// ListCountries reads the catalog, falling back to scanning the directory
// for *_pyramid.json files when the listing is absent.
func (s *Store) ListCountries() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, catalogFile))
	if err == nil {
		var countries []string
		if err := json.Unmarshal(data, &countries); err != nil {
			return nil, err
		}
		return countries, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	countries := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, "_pyramid.json") {
			continue
		}
		countries = append(countries, strings.TrimSuffix(name, "_pyramid.json"))
	}
	sort.Strings(countries)
	return countries, nil
}
