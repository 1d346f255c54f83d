// Package tui implements the interactive viewer: a country menu, the
// animated pyramid view with play/pause and a year slider, and transient
// status messaging. All asynchronous work (fetches, playback ticks, status
// expiry, resize debouncing) flows through the bubbletea event loop as
// generation- or token-tagged messages so stale completions are dropped.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/popviz/internal/catalog"
	"github.com/san-kum/popviz/internal/dataset"
	"github.com/san-kum/popviz/internal/player"
	"github.com/san-kum/popviz/internal/render"
	"github.com/san-kum/popviz/internal/state"
)

const (
	statusTTL       = 3 * time.Second
	resizeDebounce  = 250 * time.Millisecond
	spinnerInterval = 120 * time.Millisecond
)

type viewState int

const (
	stateLoading viewState = iota
	stateMenu
	stateChart
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

type catalogMsg struct {
	countries []string
	err       error
}

type datasetMsg struct {
	token   int
	country string
	all     []dataset.Series
	err     error
}

type playTickMsg struct{ gen int }

type statusExpireMsg struct{ gen int }

type resizeMsg struct{ gen int }

type spinnerMsg struct{}

// Options configure the viewer.
type Options struct {
	Source   catalog.Source
	Session  *state.Session
	Link     state.Link // initial country/year request
	Interval time.Duration
	Theme    string
	Width    int
}

// Model is the bubbletea model for the viewer.
type Model struct {
	opts     Options
	interval time.Duration

	state     viewState
	countries []string
	cursor    int

	country   string
	all       []dataset.Series
	chart     *render.Chart
	chartView string
	pl        *player.Player

	// fetchToken grows monotonically; dataset responses carrying an older
	// token lost the race to a newer request and are discarded.
	fetchToken  int
	yearApplied bool

	status    string
	statusLvl statusLevel
	statusGen int

	spinner       int
	width, height int
	resizeGen     int
	showHelp      bool
}

// New builds the viewer model. The first country shown follows the link in
// opts, the catalog default, or the first catalog entry, in that order.
func New(opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = player.Interval
	}
	width := opts.Width
	if width <= 0 {
		width = render.DefaultWidth
	}
	return Model{
		opts:     opts,
		interval: opts.Interval,
		state:    stateLoading,
		chart:    render.New(render.GetTheme(opts.Theme), width),
		pl:       player.New(0),
		width:    width,
	}
}

// Run starts the viewer and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalogCmd(m.opts.Source), spinnerTick())
}

func loadCatalogCmd(src catalog.Source) tea.Cmd {
	return func() tea.Msg {
		countries, err := src.Catalog(context.Background())
		return catalogMsg{countries: countries, err: err}
	}
}

func loadDatasetCmd(src catalog.Source, country string, token int) tea.Cmd {
	return func() tea.Msg {
		doc, err := src.Dataset(context.Background(), country)
		if err != nil {
			return datasetMsg{token: token, country: country, err: err}
		}
		return datasetMsg{token: token, country: country, all: dataset.Normalize(doc)}
	}
}

func playTick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return playTickMsg{gen: gen} })
}

func expireStatus(gen int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusExpireMsg{gen: gen} })
}

func debounceResize(gen int) tea.Cmd {
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg { return resizeMsg{gen: gen} })
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinnerMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Coalesce resize bursts into a single relayout.
		m.resizeGen++
		return m, debounceResize(m.resizeGen)

	case resizeMsg:
		if msg.gen != m.resizeGen {
			return m, nil
		}
		m.chart.Resize(m.width - 2)
		return m.redraw(), nil

	case catalogMsg:
		return m.handleCatalog(msg)

	case datasetMsg:
		return m.handleDataset(msg)

	case playTickMsg:
		idx, ok := m.pl.Tick(msg.gen)
		if !ok {
			return m, nil
		}
		out, err := m.chart.Update(m.all[idx])
		if err != nil {
			m.pl.Stop()
			return m.setStatus(statusError, err.Error())
		}
		m.chartView = out
		return m, playTick(m.interval, msg.gen)

	case statusExpireMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil

	case spinnerMsg:
		if m.state != stateLoading {
			return m, nil
		}
		m.spinner++
		return m, spinnerTick()
	}
	return m, nil
}

func (m Model) handleCatalog(msg catalogMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Degrade to the default country without a catalog; the menu
		// stays empty but the chart remains usable.
		m.countries = nil
		next, warnCmd := m.setStatus(statusWarn,
			fmt.Sprintf("country list unavailable — showing %s", catalog.DefaultCountry))
		model := next.(Model)
		model, fetchCmd := model.fetch(catalog.DefaultCountry)
		return model, tea.Batch(warnCmd, fetchCmd)
	}

	m.countries = msg.countries
	requested := m.opts.Link.Country
	initial := catalog.Resolve(msg.countries, requested)
	if requested != "" && initial != requested {
		next, warnCmd := m.setStatus(statusWarn,
			fmt.Sprintf("unknown country %q — showing %s", requested, initial))
		model := next.(Model)
		model, fetchCmd := model.fetch(initial)
		return model, tea.Batch(warnCmd, fetchCmd)
	}
	next, cmd := m.fetch(initial)
	return next, cmd
}

func (m Model) handleDataset(msg datasetMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.fetchToken {
		// A newer request is in flight or already rendered; this
		// response is stale.
		return m, nil
	}
	if msg.err != nil {
		if len(m.all) > 0 {
			m.state = stateChart
		} else {
			m.state = stateMenu
		}
		return m.setStatus(statusError, fmt.Sprintf("load failed: %v", msg.err))
	}

	m.all = msg.all
	m.country = msg.country

	start := 0
	var warnCmd tea.Cmd
	if !m.yearApplied {
		m.yearApplied = true
		if y := m.opts.Link.Year; y != 0 {
			idx, err := dataset.FindYear(m.all, y)
			if err != nil {
				var next tea.Model
				next, warnCmd = m.setStatus(statusWarn,
					fmt.Sprintf("year %d not in dataset — showing %d", y, m.all[0].Year))
				m = next.(Model)
			}
			start = idx
		}
	}
	m.pl.Reset(len(m.all), start)

	out, err := m.chart.Render(m.all[m.pl.Index()])
	if err != nil {
		m.state = stateMenu
		next, errCmd := m.setStatus(statusError, err.Error())
		return next, tea.Batch(warnCmd, errCmd)
	}
	m.chartView = out
	m.state = stateChart
	m.saveSession()
	return m, warnCmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateChart:
		return m.chartKey(msg)
	}
	return m, nil
}

func (m Model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.countries)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.countries) == 0 {
			return m, nil
		}
		return m.fetch(m.countries[m.cursor])
	}
	return m, nil
}

func (m Model) chartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		return m.togglePlay()
	case "left", "h":
		return m.scrub(m.pl.Index() - 1)
	case "right", "l":
		return m.scrub(m.pl.Index() + 1)
	case "[":
		return m.scrub(0)
	case "]":
		return m.scrub(m.pl.Len() - 1)
	case "t":
		m.chart.SetTheme(render.NextTheme(m.chart.Theme().Name))
		return m.redraw(), nil
	case "c":
		if len(m.countries) == 0 {
			return m.setStatus(statusWarn, "no country list loaded")
		}
		m.state = stateMenu
		return m, nil
	}
	return m, nil
}

func (m Model) togglePlay() (tea.Model, tea.Cmd) {
	if m.pl.Playing() {
		m.pl.Stop()
		return m.setStatus(statusInfo, "paused")
	}
	gen, ok := m.pl.Start()
	if !ok {
		return m.setStatus(statusWarn, "single year loaded — nothing to animate")
	}
	next, cmd := m.setStatus(statusInfo, "playing")
	return next, tea.Batch(cmd, playTick(m.interval, gen))
}

// scrub stops playback first, then jumps; a redundant jump redraws nothing.
func (m Model) scrub(i int) (tea.Model, tea.Cmd) {
	idx, changed := m.pl.Scrub(i)
	if !changed {
		return m, nil
	}
	out, err := m.chart.Update(m.all[idx])
	if err != nil {
		return m.setStatus(statusError, err.Error())
	}
	m.chartView = out
	m.saveSession()
	return m, nil
}

// fetch issues a dataset load for country, invalidating any in-flight
// request. The session link is rewritten before the load starts.
func (m Model) fetch(country string) (Model, tea.Cmd) {
	m.fetchToken++
	m.state = stateLoading
	m.pl.Stop()
	if m.opts.Session != nil {
		_ = m.opts.Session.Save(state.Link{Country: country})
	}
	return m, tea.Batch(loadDatasetCmd(m.opts.Source, country, m.fetchToken), spinnerTick())
}

func (m Model) setStatus(lvl statusLevel, text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusLvl = lvl
	m.statusGen++
	return m, expireStatus(m.statusGen)
}

func (m Model) redraw() Model {
	if len(m.all) == 0 {
		return m
	}
	out, err := m.chart.Render(m.all[m.pl.Index()])
	if err != nil {
		return m
	}
	m.chartView = out
	return m
}

func (m *Model) saveSession() {
	if m.opts.Session == nil || len(m.all) == 0 {
		return
	}
	_ = m.opts.Session.Save(state.Link{
		Country: m.country,
		Year:    m.all[m.pl.Index()].Year,
	})
}

func displayName(country string) string {
	return strings.ReplaceAll(country, "_", " ")
}
