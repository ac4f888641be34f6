package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kmsahu/genesim/internal/analysis"
	"github.com/kmsahu/genesim/internal/config"
	"github.com/kmsahu/genesim/internal/experiment"
	"github.com/kmsahu/genesim/internal/grn"
	"github.com/kmsahu/genesim/internal/storage"
	"github.com/kmsahu/genesim/internal/viz"
)

var (
	dataDir    string
	steps      int
	dt         float64
	seed       int64
	ruleKind   string
	noiseSigma float64
	// Single-gene rule parameters
	beta  float64
	k     float64
	n     float64
	alpha float64
	// Cascade / FFL parameters
	betaY  float64
	kxy    float64
	alphaY float64
	betaZ  float64
	kxz    float64
	kyz    float64
	alphaZ float64
	beta1  float64
	beta2  float64
	// Input pulse
	pulseOn    int
	pulseOff   int
	pulseValue float64
	// Config file
	configFile string
	// Preset name
	preset string
	// Output path for export-json
	outputFile string
	// Frame rate for live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "genesim",
		Short: "gene circuit simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".genesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [motif]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "compare run against closed-form predictions",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outputFile, "output", "", "write to file instead of stdout")

	compareCmd := &cobra.Command{
		Use:   "compare [motif] [rule1] [rule2] ...",
		Short: "compare rule kinds on the same circuit",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareRules,
	}
	addSimFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [motif]",
		Short: "sweep step counts and step sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepMotif,
	}
	addSimFlags(sweepCmd)

	liveCmd := &cobra.Command{
		Use:   "live [motif]",
		Short: "run simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [motif]",
		Short: "list available presets for a motif",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for motif: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, compareCmd, sweepCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for noise")
	cmd.Flags().StringVar(&ruleKind, "rule", "logic", "rule kind (hill|logic)")
	cmd.Flags().Float64Var(&noiseSigma, "noise", 0.0, "gaussian noise sigma on the input")
	cmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "production rate (simple)")
	cmd.Flags().Float64Var(&k, "k", config.DefaultK, "activation threshold (simple)")
	cmd.Flags().Float64Var(&n, "n", config.DefaultN, "hill coefficient (simple)")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "decay rate (simple)")
	cmd.Flags().Float64Var(&betaY, "beta-y", config.DefaultBeta, "production rate of y")
	cmd.Flags().Float64Var(&kxy, "k-xy", config.DefaultK, "threshold of x on y")
	cmd.Flags().Float64Var(&alphaY, "alpha-y", config.DefaultAlpha, "decay rate of y")
	cmd.Flags().Float64Var(&betaZ, "beta-z", config.DefaultBeta, "production rate of z")
	cmd.Flags().Float64Var(&kxz, "k-xz", config.DefaultK, "threshold of x on z")
	cmd.Flags().Float64Var(&kyz, "k-yz", 5.0, "threshold of y on z")
	cmd.Flags().Float64Var(&alphaZ, "alpha-z", config.DefaultAlpha, "decay rate of z")
	cmd.Flags().Float64Var(&beta1, "beta1", config.DefaultBeta, "z rate before repression (iffl)")
	cmd.Flags().Float64Var(&beta2, "beta2", 0.1, "leaky z rate under repression (iffl)")
	cmd.Flags().IntVar(&pulseOn, "pulse-on", config.DefaultPulseOn, "input pulse on-step")
	cmd.Flags().IntVar(&pulseOff, "pulse-off", config.DefaultPulseOff, "input pulse off-step")
	cmd.Flags().Float64Var(&pulseValue, "pulse-value", config.DefaultPulseValue, "input pulse level")
}

// buildConfig resolves preset, config file, and flags into one Config.
// Precedence: preset first, config file over preset, explicitly changed
// flags over everything.
func buildConfig(cmd *cobra.Command, motifName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Motif = motifName

	if preset != "" {
		p := config.GetPreset(motifName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(motifName))
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg.Motif = motifName
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("rule") {
		cfg.Rule = ruleKind
	}
	if flags.Changed("noise") {
		cfg.NoiseSigma = noiseSigma
	}
	if flags.Changed("beta") {
		cfg.Params.Beta = beta
	}
	if flags.Changed("k") {
		cfg.Params.K = k
	}
	if flags.Changed("n") {
		cfg.Params.N = n
	}
	if flags.Changed("alpha") {
		cfg.Params.Alpha = alpha
	}
	if flags.Changed("beta-y") {
		cfg.Params.BetaY = betaY
	}
	if flags.Changed("k-xy") {
		cfg.Params.Kxy = kxy
	}
	if flags.Changed("alpha-y") {
		cfg.Params.AlphaY = alphaY
	}
	if flags.Changed("beta-z") {
		cfg.Params.BetaZ = betaZ
	}
	if flags.Changed("k-xz") {
		cfg.Params.Kxz = kxz
	}
	if flags.Changed("k-yz") {
		cfg.Params.Kyz = kyz
	}
	if flags.Changed("alpha-z") {
		cfg.Params.AlphaZ = alphaZ
	}
	if flags.Changed("beta1") {
		cfg.Params.Beta1 = beta1
	}
	if flags.Changed("beta2") {
		cfg.Params.Beta2 = beta2
	}
	if flags.Changed("pulse-on") {
		cfg.Pulse.On = pulseOn
	}
	if flags.Changed("pulse-off") {
		cfg.Pulse.Off = pulseOff
	}
	if flags.Changed("pulse-value") {
		cfg.Pulse.Value = pulseValue
	}

	return cfg, nil
}

func geneOrder(circuit *grn.Circuit) []string {
	genes := circuit.Genes()
	order := make([]string, len(genes))
	for i, g := range genes {
		order[i] = g.Name
	}
	return order
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	exp := experiment.New(cfg)
	if err := exp.Setup(registry); err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", cfg.Motif)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, geneOrder(exp.Circuit()), exp.Input(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

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
	fmt.Fprintln(w, "ID\tMOTIF\tRULE\tTIME\tSTEPS\tDT\tNOISE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\t%.3f\n",
			run.ID,
			run.Motif,
			run.Rule,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.NoiseSigma,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	names, _, columns, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("motif: %s (%s)\n", meta.Motif, meta.Rule)
	fmt.Printf("steps: %d\n\n", meta.Steps)

	fmt.Print(viz.PlotAll(names, columns))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	names, times, columns, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	series := make(map[string]grn.Series, len(names))
	for i, name := range names {
		if i < len(columns) {
			series[name] = columns[i]
		}
	}
	for name, s := range series {
		if !s.IsValid() {
			fmt.Printf("warning: trace %s contains NaN or Inf samples\n", name)
		}
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("motif: %s (%s)\n\n", meta.Motif, meta.Rule)

	switch meta.Motif {
	case "simple":
		return analyzeSimple(meta, series)
	case "cascade", "cffl", "iffl":
		return analyzeThreeNode(meta, times, series)
	default:
		return fmt.Errorf("no analysis for motif: %s", meta.Motif)
	}
}

func analyzeSimple(meta *storage.RunMetadata, series map[string]grn.Series) error {
	y, ok := series["y"]
	if !ok {
		return fmt.Errorf("run has no y trace")
	}

	yst, err := analysis.SteadyState(meta.Params.Beta, meta.Params.Alpha)
	if err != nil {
		return err
	}
	t12, err := analysis.ResponseTime(meta.Params.Alpha)
	if err != nil {
		return err
	}

	fmt.Printf("predicted steady state (beta/alpha): %.4f\n", yst)
	fmt.Printf("observed peak:                       %.4f\n", y.Max())
	fmt.Printf("predicted response time (ln2/alpha): %.4f\n", t12)

	cross := analysis.CrossingStep(y, yst/2)
	if cross >= 0 {
		fmt.Printf("observed half-rise step:             %d\n", cross)
	} else {
		fmt.Println("observed half-rise step:             never crossed")
	}
	return nil
}

func analyzeThreeNode(meta *storage.RunMetadata, times []float64, series map[string]grn.Series) error {
	x, okX := series["x"]
	y, okY := series["y"]
	z, okZ := series["z"]
	if !okX || !okY || !okZ {
		return fmt.Errorf("run is missing x/y/z traces")
	}

	yst, err := analysis.SteadyState(meta.Params.BetaY, meta.Params.AlphaY)
	if err != nil {
		return err
	}
	fmt.Printf("predicted y steady state: %.4f\n", yst)
	fmt.Printf("observed y peak:          %.4f\n", y.Max())

	xOn := analysis.CrossingStep(x, meta.Params.Kxy)
	zOn := analysis.CrossingStep(z, 0)
	if xOn >= 0 && zOn > xOn {
		observed := times[zOn] - times[xOn]
		fmt.Printf("observed z turn-on delay: %.4f\n", observed)
	} else {
		fmt.Println("observed z turn-on delay: z never turned on")
	}

	if meta.Params.Kyz < yst {
		ton, err := analysis.OnDelay(meta.Params.AlphaY, yst, meta.Params.Kyz)
		if err != nil {
			return err
		}
		fmt.Printf("predicted z turn-on delay (Ton):  %.4f\n", ton)
	} else {
		fmt.Println("predicted z turn-on delay: threshold above y steady state, z stays off")
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	names, times, columns, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, col := range columns {
			if i < len(col) {
				row = append(row, strconv.FormatFloat(col[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	names, times, columns, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := storage.ExportJSONFile(outputFile, meta, times, names, columns); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", outputFile)
		return nil
	}
	return storage.ExportJSONStdout(meta, times, names, columns)
}

func compareRules(cmd *cobra.Command, args []string) error {
	motifName := args[0]
	kinds := args[1:]

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RULE\tSTEADY\tPEAK\tRISE\tTIME\n")

	for _, kind := range kinds {
		cfg, err := buildConfig(cmd, motifName)
		if err != nil {
			return err
		}
		cfg.Rule = kind

		registry := experiment.NewRegistry()
		exp := experiment.New(cfg)
		if err := exp.Setup(registry); err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", kind, err)
			continue
		}

		start := time.Now()
		result, err := exp.Run(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", kind, err)
			continue
		}

		steady := result.Metrics["steady_y"]
		peak := result.Metrics["peak_y"]
		rise := result.Metrics["rise_y"]
		if _, ok := result.Metrics["steady_z"]; ok {
			steady = result.Metrics["steady_z"]
			peak = result.Metrics["peak_z"]
			rise = result.Metrics["rise_z"]
		}

		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.2f\t%v\n", kind, steady, peak, rise, elapsed)
	}

	return w.Flush()
}

func sweepMotif(cmd *cobra.Command, args []string) error {
	motifName := args[0]

	stepCounts := []int{100, 500, 2000}
	dts := []float64{0.1, 0.5, 1.0}

	fmt.Printf("sweeping %s\n\n", motifName)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tDT\tSTEADY\tTIME\tSTEPS/SEC")

	for _, sc := range stepCounts {
		for _, stepSize := range dts {
			cfg, err := buildConfig(cmd, motifName)
			if err != nil {
				return err
			}
			cfg.Steps = sc
			cfg.Dt = stepSize
			// Scale the pulse window with the run length so every cell
			// sees the same on fraction.
			cfg.Pulse.On = sc / 10
			cfg.Pulse.Off = sc * 8 / 10

			registry := experiment.NewRegistry()
			exp := experiment.New(cfg)
			if err := exp.Setup(registry); err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steady := result.Metrics["steady_y"]
			if v, ok := result.Metrics["steady_z"]; ok {
				steady = v
			}

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%.2f\t%.4f\t%v\t%.0f\n",
				sc, stepSize, steady, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	exp := experiment.New(cfg)
	if err := exp.Setup(registry); err != nil {
		return err
	}

	simCfg := grn.Config{Dt: cfg.Dt, Steps: cfg.Steps, Seed: cfg.Seed}
	m, err := viz.NewModel(cfg.Motif, exp.Circuit(), simCfg, "x", frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
