// Package generate produces synthetic population pyramid datasets in the
// data directory layout the viewer consumes. Distributions are shaped by
// each country's median age: younger populations decay exponentially from
// the youngest band, aging ones bulge around middle age.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/san-kum/popviz/internal/dataset"
	"github.com/san-kum/popviz/internal/store"
)

// DefaultYear is stamped on generated documents.
const DefaultYear = 2023

// Options control a generation run.
type Options struct {
	Seed      int64
	Year      int
	Countries []string // subset of country names; empty means all
}

// AgeGroups returns the five-year band labels in source (youngest-first)
// order. The last band is widened to "100+".
func AgeGroups() []string {
	groups := make([]string, 0, 20)
	for lo := 0; lo < 100; lo += 5 {
		groups = append(groups, fmt.Sprintf("%d-%d", lo, lo+4))
	}
	groups[len(groups)-1] = "100+"
	return groups
}

// Run generates a pyramid document per selected country, writes each to the
// store and finishes with the catalog listing. It returns the catalog
// entries written.
func Run(st *store.Store, opts Options, logger *log.Logger) ([]string, error) {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Year == 0 {
		opts.Year = DefaultYear
	}
	if err := st.Init(); err != nil {
		return nil, err
	}

	selected := selectCountries(opts.Countries)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no matching countries in %v", opts.Countries)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	stems := make([]string, 0, len(selected))

	for _, c := range selected {
		doc := BuildDocument(c, opts.Year, rng)
		if err := st.SaveDocument(doc); err != nil {
			return nil, fmt.Errorf("write %s: %w", c.Name, err)
		}
		stem := strings.TrimSuffix(dataset.FileName(c.Name), "_pyramid.json")
		stems = append(stems, stem)
		logger.Debug("generated pyramid", "country", c.Name, "population", c.Population)
	}

	if err := st.SaveCatalog(stems); err != nil {
		return nil, fmt.Errorf("write catalog: %w", err)
	}
	logger.Info("generated datasets", "countries", len(stems), "dir", st.Dir())
	return stems, nil
}

// BuildDocument shapes one country's pyramid from its demographic
// parameters. Male and female shares vary per band by a small random
// factor that always sums to the full band share.
func BuildDocument(c CountryInfo, year int, rng *rand.Rand) dataset.Document {
	groups := AgeGroups()
	dist := Distribution(c.MedianAge, len(groups))

	doc := dataset.Document{
		Country:    c.Name,
		Population: c.Population,
		Year:       year,
		Data:       make([]dataset.AgeBand, len(groups)),
	}
	for i, g := range groups {
		maleFactor := 0.98 + rng.Float64()*0.04
		femaleFactor := 2 - maleFactor
		half := dist[i] * float64(c.Population) / 2
		doc.Data[i] = dataset.AgeBand{
			AgeGroup: g,
			Male:     math.Trunc(half * maleFactor),
			Female:   math.Trunc(half * femaleFactor),
		}
	}
	return doc
}

// Distribution returns the normalized population share per band, youngest
// first, selected by median age: young (<25), aging (>40) or transitional.
func Distribution(medianAge float64, n int) []float64 {
	shape := make([]float64, n)
	switch {
	case medianAge < 25:
		for i := range shape {
			shape[i] = math.Exp(-0.15 * float64(i))
		}
	case medianAge > 40:
		center := float64(n) / 3
		for i := range shape {
			d := float64(i) - center
			shape[i] = math.Exp(-0.02 * d * d)
		}
	default:
		for i := range shape {
			shape[i] = math.Exp(-0.08 * float64(i))
		}
	}

	var sum float64
	for _, v := range shape {
		sum += v
	}
	for i := range shape {
		shape[i] /= sum
	}
	return shape
}

func selectCountries(names []string) []CountryInfo {
	if len(names) == 0 {
		return Countries
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.ToLower(n)] = true
	}
	selected := make([]CountryInfo, 0, len(names))
	for _, c := range Countries {
		if want[strings.ToLower(c.Name)] {
			selected = append(selected, c)
		}
	}
	return selected
}
