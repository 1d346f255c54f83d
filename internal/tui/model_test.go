package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/popviz/internal/dataset"
	"github.com/san-kum/popviz/internal/state"
)

type fakeSource struct {
	countries  []string
	catalogErr error
	doc        dataset.Document
	datasetErr error
}

func (f fakeSource) Catalog(ctx context.Context) ([]string, error) {
	return f.countries, f.catalogErr
}

func (f fakeSource) Dataset(ctx context.Context, country string) (dataset.Document, error) {
	return f.doc, f.datasetErr
}

// loaded drives a model through catalog discovery and a successful dataset
// load, returning it in the chart state.
func loaded(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)

	next, _ := m.Update(catalogMsg{countries: []string{"Algeria", "Brazil"}})
	m = next.(Model)
	if m.fetchToken != 1 {
		t.Fatalf("fetchToken = %d after catalog, want 1", m.fetchToken)
	}

	all := []dataset.Series{
		{Year: 2024, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{90}, Female: []float64{88}},
		{Year: 2025, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{95}, Female: []float64{93}},
		{Year: 2026, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{99}, Female: []float64{97}},
	}
	next, _ = m.Update(datasetMsg{token: 1, country: "Algeria", all: all})
	m = next.(Model)
	if m.state != stateChart {
		t.Fatalf("state = %v after load, want chart", m.state)
	}
	return m
}

func TestStaleDatasetResponseDiscarded(t *testing.T) {
	m := loaded(t, Options{Source: fakeSource{}})

	// A second fetch invalidates the first token.
	m, _ = m.fetch("Brazil")
	if m.fetchToken != 2 {
		t.Fatalf("fetchToken = %d, want 2", m.fetchToken)
	}

	stale := []dataset.Series{
		{Year: 1990, Country: "Nowhere", AgeGroups: []string{"0-4"}, Male: []float64{1}, Female: []float64{1}},
	}
	next, _ := m.Update(datasetMsg{token: 1, country: "Nowhere", all: stale})
	m = next.(Model)

	if m.country == "Nowhere" {
		t.Fatal("stale response overwrote current country")
	}
	if m.state != stateLoading {
		t.Fatalf("state = %v, want loading while the newer fetch is pending", m.state)
	}
}

func TestScrubStopsPlayback(t *testing.T) {
	m := loaded(t, Options{Source: fakeSource{}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !m.pl.Playing() {
		t.Fatal("space did not start playback")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if m.pl.Playing() {
		t.Fatal("scrub left playback running")
	}
	if m.pl.Index() != 1 {
		t.Fatalf("index = %d after right, want 1", m.pl.Index())
	}
}

func TestScrubClampsAtEnds(t *testing.T) {
	m := loaded(t, Options{Source: fakeSource{}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if m.pl.Index() != 0 {
		t.Fatalf("index = %d after left at start, want 0", m.pl.Index())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	m = next.(Model)
	if m.pl.Index() != 2 {
		t.Fatalf("index = %d after ], want 2", m.pl.Index())
	}
}

func TestStalePlayTickIgnored(t *testing.T) {
	m := loaded(t, Options{Source: fakeSource{}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	gen := m.pl.Generation()

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace}) // pause bumps generation
	m = next.(Model)

	next, _ = m.Update(playTickMsg{gen: gen})
	m = next.(Model)
	if m.pl.Index() != 0 {
		t.Fatalf("stale tick advanced index to %d", m.pl.Index())
	}
}

func TestCatalogFailureFallsBackToDefault(t *testing.T) {
	m := New(Options{Source: fakeSource{catalogErr: errors.New("listen tcp: connection refused")}})

	next, _ := m.Update(catalogMsg{err: errors.New("boom")})
	m = next.(Model)

	if m.fetchToken != 1 {
		t.Fatal("fallback did not issue a fetch")
	}
	if !strings.Contains(m.status, "Algeria") {
		t.Fatalf("status %q does not name the fallback country", m.status)
	}
}

func TestUnknownLinkCountryResolvesWithWarning(t *testing.T) {
	m := New(Options{Source: fakeSource{}, Link: state.Link{Country: "Atlantis"}})

	next, _ := m.Update(catalogMsg{countries: []string{"Algeria", "Brazil"}})
	m = next.(Model)

	if !strings.Contains(m.status, "Atlantis") {
		t.Fatalf("status %q does not mention the unknown country", m.status)
	}
	if m.fetchToken != 1 {
		t.Fatal("no fetch issued for the resolved country")
	}
}

func TestLinkYearSelectsStartIndex(t *testing.T) {
	m := New(Options{Source: fakeSource{}, Link: state.Link{Country: "Algeria", Year: 2025}})
	next, _ := m.Update(catalogMsg{countries: []string{"Algeria"}})
	m = next.(Model)

	all := []dataset.Series{
		{Year: 2024, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{90}, Female: []float64{88}},
		{Year: 2025, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{95}, Female: []float64{93}},
	}
	next, _ = m.Update(datasetMsg{token: 1, country: "Algeria", all: all})
	m = next.(Model)

	if m.pl.Index() != 1 {
		t.Fatalf("index = %d, want 1 (year 2025)", m.pl.Index())
	}
	if m.status != "" {
		t.Fatalf("unexpected status %q for a year that exists", m.status)
	}
}

func TestMissingLinkYearWarnsAndStartsAtFirst(t *testing.T) {
	m := New(Options{Source: fakeSource{}, Link: state.Link{Country: "Algeria", Year: 1900}})
	next, _ := m.Update(catalogMsg{countries: []string{"Algeria"}})
	m = next.(Model)

	all := []dataset.Series{
		{Year: 2024, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{90}, Female: []float64{88}},
		{Year: 2025, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{95}, Female: []float64{93}},
	}
	next, _ = m.Update(datasetMsg{token: 1, country: "Algeria", all: all})
	m = next.(Model)

	if m.pl.Index() != 0 {
		t.Fatalf("index = %d, want 0", m.pl.Index())
	}
	if !strings.Contains(m.status, "1900") {
		t.Fatalf("status %q does not mention the missing year", m.status)
	}
}

func TestSingleYearPlayGuard(t *testing.T) {
	m := New(Options{Source: fakeSource{}})
	next, _ := m.Update(catalogMsg{countries: []string{"Algeria"}})
	m = next.(Model)

	all := []dataset.Series{
		{Year: 2025, Country: "Algeria", AgeGroups: []string{"0-4"}, Male: []float64{95}, Female: []float64{93}},
	}
	next, _ = m.Update(datasetMsg{token: 1, country: "Algeria", all: all})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.pl.Playing() {
		t.Fatal("playback started with a single year")
	}
	if m.status == "" {
		t.Fatal("no status shown for the guarded no-op")
	}
}

func TestLoadFailureKeepsCurrentChart(t *testing.T) {
	m := loaded(t, Options{Source: fakeSource{}})

	m, _ = m.fetch("Brazil")
	next, _ := m.Update(datasetMsg{token: 2, country: "Brazil", err: errors.New("404")})
	m = next.(Model)

	if m.state != stateChart {
		t.Fatalf("state = %v, want chart (previous data retained)", m.state)
	}
	if m.country != "Algeria" {
		t.Fatalf("country = %q, want Algeria", m.country)
	}
	if !strings.Contains(m.status, "load failed") {
		t.Fatalf("status %q does not report the failure", m.status)
	}
}

func TestResizeDebounceDropsSupersededGenerations(t *testing.T) {
	m := loaded(t, Options{Source: fakeSource{}})
	before := m.chartView

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	m = next.(Model)

	// First debounce fires with a stale generation and must not relayout.
	next, _ = m.Update(resizeMsg{gen: m.resizeGen - 1})
	m = next.(Model)
	if m.chartView != before {
		t.Fatal("stale resize generation triggered a relayout")
	}

	next, _ = m.Update(resizeMsg{gen: m.resizeGen})
	m = next.(Model)
	if m.chartView == before {
		t.Fatal("current resize generation did not relayout")
	}
}
