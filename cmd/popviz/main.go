package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/popviz/internal/catalog"
	"github.com/san-kum/popviz/internal/config"
	"github.com/san-kum/popviz/internal/dataset"
	"github.com/san-kum/popviz/internal/generate"
	"github.com/san-kum/popviz/internal/render"
	"github.com/san-kum/popviz/internal/state"
	"github.com/san-kum/popviz/internal/store"
	"github.com/san-kum/popviz/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	baseURL    string
	configFile string
	verbose    bool
	// View options
	country   string
	year      int
	themeName string
	width     int
	interval  int
	linkArg   string
	// Generate options
	seed         int64
	genYear      int
	genCountries []string
	// Trend options
	trendHeight int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
})

func main() {
	rootCmd := &cobra.Command{
		Use:   "popviz",
		Short: "interactive population pyramid viewer",
		RunE:  runViewer,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory with pyramid datasets")
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "base URL to fetch datasets from instead of the data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	rootCmd.Flags().StringVar(&country, "country", "", "country to open")
	rootCmd.Flags().IntVar(&year, "year", 0, "year to open")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	rootCmd.Flags().IntVar(&width, "width", 0, "chart width in columns")
	rootCmd.Flags().IntVar(&interval, "interval", 0, "playback interval in milliseconds")
	rootCmd.Flags().StringVar(&linkArg, "link", "", "popviz:// link to open")

	viewCmd := &cobra.Command{
		Use:   "view [country]",
		Short: "open the viewer on a country",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				country = args[0]
			}
			return runViewer(cmd, nil)
		},
	}
	viewCmd.Flags().IntVar(&year, "year", 0, "year to open")
	viewCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	viewCmd.Flags().IntVar(&width, "width", 0, "chart width in columns")
	viewCmd.Flags().IntVar(&interval, "interval", 0, "playback interval in milliseconds")
	viewCmd.Flags().StringVar(&linkArg, "link", "", "popviz:// link to open")

	showCmd := &cobra.Command{
		Use:   "show [country]",
		Short: "print a single pyramid and exit",
		Args:  cobra.ExactArgs(1),
		RunE:  showPyramid,
	}
	showCmd.Flags().IntVar(&year, "year", 0, "year to show")
	showCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	showCmd.Flags().IntVar(&width, "width", 0, "chart width in columns")

	countriesCmd := &cobra.Command{
		Use:   "countries",
		Short: "list available countries",
		RunE:  listCountries,
	}

	trendCmd := &cobra.Command{
		Use:   "trend [country]",
		Short: "plot total population over the dataset years",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrend,
	}
	trendCmd.Flags().IntVar(&width, "width", 0, "plot width in columns")
	trendCmd.Flags().IntVar(&trendHeight, "height", 12, "plot height in rows")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write synthetic pyramid datasets into the data directory",
		RunE:  generateData,
	}
	generateCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	generateCmd.Flags().IntVar(&genYear, "year", generate.DefaultYear, "dataset year")
	generateCmd.Flags().StringSliceVar(&genCountries, "countries", nil, "subset of countries to generate")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [country]",
		Short: "export a country dataset to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().IntVar(&year, "year", 0, "year to export")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [country]",
		Short: "export a country dataset to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(viewCmd, showCmd, countriesCmd, trendCmd, generateCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// settings merges defaults, the optional config file, and flags; flags win.
func settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if country != "" {
		cfg.Country = country
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if width > 0 {
		cfg.Width = width
	}
	if interval > 0 {
		cfg.IntervalMS = interval
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return cfg, nil
}

func source(cfg *config.Config) catalog.Source {
	if cfg.BaseURL != "" {
		logger.Debug("using HTTP source", "url", cfg.BaseURL)
		return catalog.NewHTTPSource(cfg.BaseURL)
	}
	logger.Debug("using directory source", "dir", cfg.DataDir)
	return catalog.NewDirSource(cfg.DataDir)
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	link := state.Link{Country: cfg.Country, Year: year}
	if linkArg != "" {
		parsed, err := state.ParseLink(linkArg)
		if err != nil {
			return fmt.Errorf("bad link: %w", err)
		}
		link = parsed
	}

	session := state.NewSession(cfg.DataDir)
	if linkArg == "" && country == "" && year == 0 {
		// Reopen where the last session left off.
		if saved, err := session.Load(); err == nil && saved.Country != "" {
			link = saved
		}
	}

	return tui.Run(tui.Options{
		Source:   source(cfg),
		Session:  session,
		Link:     link,
		Interval: time.Duration(cfg.IntervalMS) * time.Millisecond,
		Theme:    cfg.Theme,
		Width:    cfg.Width,
	})
}

func showPyramid(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	doc, err := source(cfg).Dataset(context.Background(), args[0])
	if err != nil {
		return err
	}
	all := dataset.Normalize(doc)
	if len(all) == 0 {
		return dataset.ErrEmptySeries
	}

	idx := 0
	if year != 0 {
		idx, err = dataset.FindYear(all, year)
		if err != nil {
			return err
		}
	}

	chart := render.New(render.GetTheme(cfg.Theme), cfg.Width)
	out, err := chart.Render(all[idx])
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func listCountries(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	countries, err := source(cfg).Catalog(context.Background())
	if err != nil {
		return err
	}
	if len(countries) == 0 {
		fmt.Println("no countries found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COUNTRY\tFILE")
	for _, c := range countries {
		fmt.Fprintf(w, "%s\t%s\n", strings.ReplaceAll(c, "_", " "), dataset.FileName(c))
	}
	return w.Flush()
}

func plotTrend(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	doc, err := source(cfg).Dataset(context.Background(), args[0])
	if err != nil {
		return err
	}
	all := dataset.Normalize(doc)
	if len(all) == 0 {
		return dataset.ErrEmptySeries
	}

	fmt.Printf("%s\n\n", strings.ReplaceAll(args[0], "_", " "))
	fmt.Println(render.TrendChart(all, cfg.Width, trendHeight))
	return nil
}

func generateData(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	st := store.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	written, err := generate.Run(st, generate.Options{
		Seed:      seed,
		Year:      genYear,
		Countries: genCountries,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("generation complete",
		"countries", len(written),
		"dir", st.Dir(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	doc, err := source(cfg).Dataset(context.Background(), args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"Age Group", "Male", "Female"}); err != nil {
		return err
	}
	for _, band := range doc.Data {
		row := []string{
			band.AgeGroup,
			strconv.FormatFloat(band.Male, 'f', -1, 64),
			strconv.FormatFloat(band.Female, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	doc, err := source(cfg).Dataset(context.Background(), args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
