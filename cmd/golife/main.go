package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/runner"
	"github.com/san-kum/golife/internal/storage"
	"github.com/san-kum/golife/internal/tui"
)

var (
	dataDir     string
	width       int
	height      int
	generations int
	seed        int64
	density     float64
	patternName string
	tickMs      int
	configFile  string
	preset      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "golife",
		Short: "Conway's Game of Life lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return playBoard(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".golife", "data directory")

	addBoardFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
		cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "random fill density")
		cmd.Flags().StringVar(&patternName, "pattern", "", "seed pattern (empty = random soup)")
		cmd.Flags().IntVar(&tickMs, "tick", config.DefaultTickMs, "step cadence in milliseconds")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "run a board headlessly and record the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	addBoardFlags(runCmd)
	runCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "generations to advance")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive terminal board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return playBoard(cmd)
		},
	}
	addBoardFlags(playCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's population history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a run's final board",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's census to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in seed patterns",
		RunE:  listPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list config presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %dx%d, %d generations\n", name, p.Width, p.Height, p.Generations)
			}
		},
	}

	rootCmd.AddCommand(runCmd, playCmd, listCmd, plotCmd, showCmd, exportJSONCmd, exportCSVCmd, patternsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags into one board setup.
// Flags win over the file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickMs = tickMs
	}
	if cmd.Flags().Changed("density") {
		cfg.Density = density
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = patternName
	}
	if cmd.Flags().Changed("generations") {
		cfg.Generations = generations
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// seedEngine builds an engine from a config: a centered pattern when one
// is named, a random soup otherwise.
func seedEngine(cfg *config.Config) (*life.Engine, error) {
	eng, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Pattern != "" {
		p, err := pattern.Lookup(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		if err := pattern.Centered(eng, p); err != nil {
			return nil, err
		}
		return eng, nil
	}
	if cfg.Density > 0 {
		if err := eng.RandomizeDensity(cfg.Seed, cfg.Density); err != nil {
			return nil, err
		}
	}
	return eng, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		patternName = args[0]
		if !cmd.Flags().Changed("pattern") {
			cmd.Flags().Set("pattern", args[0])
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := seedEngine(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %dx%d board...\n", cfg.Width, cfg.Height)
	start := time.Now()

	result, err := runner.New(eng).Run(context.Background(), cfg.Generations)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, result, eng.Snapshot())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("generations: %d\n", result.Generations)
	if result.Period > 0 {
		fmt.Printf("cycle: period %d, detected at generation %d\n", result.Period, result.CycleAt)
	} else {
		fmt.Println("cycle: none detected")
	}
	fmt.Printf("final population: %d\n", eng.Population())

	return nil
}

func playBoard(cmd *cobra.Command) error {
	// Works for the bare root command too: Changed is false for flags the
	// command never registered, so defaults apply.
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Interactive boards start empty unless a soup was asked for.
	if !cmd.Flags().Changed("density") && preset == "" && configFile == "" {
		cfg.Density = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	eng, err := seedEngine(cfg)
	if err != nil {
		return err
	}
	return tui.Run(eng, time.Duration(cfg.TickMs)*time.Millisecond, cfg.Seed)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBOARD\tTIME\tPATTERN\tGENS\tPERIOD\tPOP")

	for _, run := range runs {
		patternCol := run.Pattern
		if patternCol == "" {
			patternCol = "-"
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Width, run.Height,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			patternCol,
			run.Generations,
			run.Period,
			run.FinalPopulation,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	populations, err := st.LoadCensus(args[0])
	if err != nil {
		return err
	}
	if len(populations) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("board: %dx%d\n", meta.Width, meta.Height)
	fmt.Printf("samples: %d\n\n", len(populations))

	data := make([]float64, len(populations))
	for i, p := range populations {
		data[i] = float64(p)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population vs generation"),
	)
	fmt.Println(graph)

	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	grid, err := st.LoadGrid(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%dx%d, generation %d)\n\n", meta.ID, meta.Width, meta.Height, meta.Generations)
	fmt.Print(grid)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	populations, err := st.LoadCensus(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, populations)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	populations, err := st.LoadCensus(args[0])
	if err != nil {
		return err
	}
	if len(populations) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(os.Stdout, populations)
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDESCRIPTION")
	for _, name := range pattern.Names() {
		p, err := pattern.Lookup(name)
		if err != nil {
			return err
		}
		pw, ph := p.Size()
		fmt.Fprintf(w, "%s\t%dx%d\t%s\n", p.Name, pw, ph, p.Description)
	}
	return w.Flush()
}
