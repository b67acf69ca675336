package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jroth137/rcfdtdpy/internal/config"
	"github.com/jroth137/rcfdtdpy/internal/export"
	"github.com/jroth137/rcfdtdpy/internal/fdtd"
	"github.com/jroth137/rcfdtdpy/internal/source"
	"github.com/jroth137/rcfdtdpy/internal/storage"
	"github.com/jroth137/rcfdtdpy/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	vacuumPermittivity    float64
	infinityPermittivity  float64
	vacuumPermeability    float64
	deltaT                float64
	deltaZ                float64
	numN                  int
	numI                  int
	susceptibility        float64
	initialSusceptibility float64
	workers               int

	sourceKind string
	sourceIdx  int
	sourceAmp  float64
	sourceW    float64

	gridName string
	plotRow  int
	probeIdx int
	format   string
	cellSize float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rcfdtd",
		Short: "1D RC-FDTD electromagnetic field solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rcfdtd", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&vacuumPermittivity, "eps0", config.DefaultVacuumPermittivity, "vacuum permittivity")
	runCmd.Flags().Float64Var(&infinityPermittivity, "eps-inf", config.DefaultInfinityPermittivity, "high-frequency permittivity")
	runCmd.Flags().Float64Var(&vacuumPermeability, "mu0", config.DefaultVacuumPermeability, "vacuum permeability")
	runCmd.Flags().Float64Var(&deltaT, "dt", config.DefaultDeltaT, "temporal step")
	runCmd.Flags().Float64Var(&deltaZ, "dz", config.DefaultDeltaZ, "spatial step")
	runCmd.Flags().IntVar(&numN, "num-n", config.DefaultNumN, "time rows")
	runCmd.Flags().IntVar(&numI, "num-i", config.DefaultNumI, "spatial cells")
	runCmd.Flags().Float64Var(&susceptibility, "chi", 0, "susceptibility placeholder")
	runCmd.Flags().Float64Var(&initialSusceptibility, "chi0", 0, "initial susceptibility")
	runCmd.Flags().IntVar(&workers, "workers", 1, "goroutines per spatial pass")
	runCmd.Flags().StringVar(&sourceKind, "source", "impulse", "source kind (impulse, gaussian, ricker)")
	runCmd.Flags().IntVar(&sourceIdx, "source-index", config.DefaultNumI/2, "source center cell")
	runCmd.Flags().Float64Var(&sourceAmp, "source-amp", config.DefaultAmplitude, "source amplitude")
	runCmd.Flags().Float64Var(&sourceW, "source-width", 4, "source width in cells")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print coefficients and progress")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotStoredRun,
	}
	plotCmd.Flags().StringVar(&gridName, "grid", "efield", "grid to plot (efield, hfield, cfield)")
	plotCmd.Flags().IntVar(&plotRow, "row", -1, "time row to plot (default last)")
	plotCmd.Flags().IntVar(&probeIdx, "probe", -1, "plot the time series of one cell instead")

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "play back a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}
	viewCmd.Flags().StringVar(&gridName, "grid", "efield", "grid to view")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&gridName, "grid", "efield", "grid to export")
	exportCmd.Flags().StringVar(&format, "format", "svg", "output format (svg, json, heatmap)")
	exportCmd.Flags().Float64Var(&cellSize, "cell-size", 2, "SVG cell size in pixels")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark solver throughput",
		RunE:  benchSolver,
	}
	benchCmd.Flags().IntVar(&workers, "workers", 1, "goroutines per spatial pass")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, viewCmd, exportCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges preset, config file and flags, flags winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
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

	flags := cmd.Flags()
	if flags.Changed("eps0") {
		cfg.VacuumPermittivity = vacuumPermittivity
	}
	if flags.Changed("eps-inf") {
		cfg.InfinityPermittivity = infinityPermittivity
	}
	if flags.Changed("mu0") {
		cfg.VacuumPermeability = vacuumPermeability
	}
	if flags.Changed("dt") {
		cfg.DeltaT = deltaT
	}
	if flags.Changed("dz") {
		cfg.DeltaZ = deltaZ
	}
	if flags.Changed("num-n") {
		cfg.NumN = numN
	}
	if flags.Changed("num-i") {
		cfg.NumI = numI
	}
	if flags.Changed("chi") {
		cfg.Susceptibility = susceptibility
	}
	if flags.Changed("chi0") {
		cfg.InitialSusceptibility = initialSusceptibility
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("source") {
		cfg.Source.Kind = sourceKind
	}
	if flags.Changed("source-index") {
		cfg.Source.Index = sourceIdx
	}
	if flags.Changed("source-amp") {
		cfg.Source.Amplitude = sourceAmp
	}
	if flags.Changed("source-width") {
		cfg.Source.Width = sourceW
	}

	return cfg, cfg.Validate()
}

// progressPrinter reports completed steps at a coarse interval.
type progressPrinter struct {
	total int
	every int
}

func (p *progressPrinter) OnStep(n int) {
	if p.every > 0 && (n+1)%p.every == 0 {
		fmt.Printf("\rstep %d/%d", n+1, p.total)
		if n+1 == p.total {
			fmt.Println()
		}
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	current, err := source.Build(cfg.Source, cfg.NumN, cfg.NumI)
	if err != nil {
		return err
	}

	sim, err := fdtd.New(cfg.Params(), current)
	if err != nil {
		return err
	}
	if cfg.Workers > 1 {
		sim.SetWorkers(cfg.Workers)
	}

	if verbose {
		fmt.Printf("coefficients: %s\n", sim.Coefficients())
		every := (cfg.NumN - 1) / 20
		if every < 1 {
			every = 1
		}
		sim.AddObserver(&progressPrinter{total: cfg.NumN - 1, every: every})
	}

	fmt.Printf("running %s simulation (%dx%d)...\n", cfg.Source.Kind, cfg.NumN, cfg.NumI)
	start := time.Now()
	if err := sim.Simulate(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, sim)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", cfg.NumN-1)
	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tGRID\tDT\tDZ\tSOURCE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.4g\t%.4g\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumN, run.NumI,
			run.DeltaT, run.DeltaZ,
			run.SourceKind,
		)
	}
	return w.Flush()
}

func plotStoredRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	grid, err := st.LoadGrid(args[0], gridName)
	if err != nil {
		return err
	}
	if len(grid) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if probeIdx >= 0 {
		out, err := viz.PlotProbe(grid, probeIdx, 80, 12)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	row := plotRow
	if row < 0 {
		row = len(grid) - 1
	}
	out, err := viz.PlotRow(grid, row, 80, 12)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func viewRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	grid, err := st.LoadGrid(args[0], gridName)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s %s", meta.ID, gridName)
	return viz.RunPlayback(grid, meta.DeltaT, meta.DeltaZ, title)
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	switch format {
	case "svg":
		grid, err := st.LoadGrid(args[0], gridName)
		if err != nil {
			return err
		}
		path := fmt.Sprintf("%s_%s.svg", args[0], gridName)
		if err := export.WriteSVG(path, grid, cellSize); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	case "json":
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		return writeMetadata(os.Stdout, meta)
	case "heatmap":
		grid, err := st.LoadGrid(args[0], gridName)
		if err != nil {
			return err
		}
		fmt.Print(viz.Heatmap(grid, 100, 40))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeMetadata(w io.Writer, meta *storage.RunMetadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchSolver(cmd *cobra.Command, args []string) error {
	sizes := []struct{ numN, numI int }{
		{200, 100},
		{500, 250},
		{1000, 500},
		{2000, 1000},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tSTEPS\tTIME\tSTEPS/SEC")

	for _, size := range sizes {
		cfg := config.DefaultConfig()
		cfg.NumN = size.numN
		cfg.NumI = size.numI
		cfg.Source.Index = size.numI / 2

		current, err := source.Build(cfg.Source, cfg.NumN, cfg.NumI)
		if err != nil {
			return err
		}
		sim, err := fdtd.New(cfg.Params(), current)
		if err != nil {
			return err
		}
		if workers > 1 {
			sim.SetWorkers(workers)
		}

		start := time.Now()
		if err := sim.Simulate(); err != nil {
			return err
		}
		elapsed := time.Since(start)

		steps := size.numN - 1
		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
			size.numN, size.numI, steps, elapsed, float64(steps)/elapsed.Seconds())
	}
	return w.Flush()
}
