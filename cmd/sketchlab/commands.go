package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sketchlab/internal/analysis"
	"github.com/san-kum/sketchlab/internal/automation"
	"github.com/san-kum/sketchlab/internal/config"
	"github.com/san-kum/sketchlab/internal/export"
	"github.com/san-kum/sketchlab/internal/logging"
	"github.com/san-kum/sketchlab/internal/metrics"
	"github.com/san-kum/sketchlab/internal/pendulum"
	"github.com/san-kum/sketchlab/internal/render"
	"github.com/san-kum/sketchlab/internal/sketch"
	"github.com/san-kum/sketchlab/internal/viz"
)

var (
	cfg      *config.Config
	closeLog = func() {}
)

// setupLogging resolves the effective config, then configures the logger
// from it. A --log-level flag wins over the config file.
func setupLogging(cmd *cobra.Command) error {
	var err error
	if cfg, err = loadConfig(cmd); err != nil {
		return err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") || level == "" {
		level = logLevel
	}
	file := cfg.LogFile
	if logFile != "" {
		file = logFile
	}

	closeFn, err := logging.Setup(level, file)
	if err != nil {
		return err
	}
	closeLog = closeFn
	if cmd.Name() == "live" && file == "" {
		logging.Silence()
	}
	return nil
}

// loadConfig layers the config file, the preset and then any flag the user
// set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	}

	if preset != "" && !c.Apply(preset) {
		var names []string
		for _, sk := range config.Sketches() {
			names = append(names, config.ListPresets(sk)...)
		}
		return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(names, ", "))
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		c.Canvas.FPS = fps
	}
	if flags.Changed("size") {
		c.Canvas.Width, c.Canvas.Height = size, size
	}
	if flags.Changed("radius") {
		c.Spiral.Radius = radius
	}
	if flags.Changed("missing") {
		c.Spiral.Missing = missing
	}
	if flags.Changed("count") {
		c.Pendulum.Count = count
	}
	if flags.Changed("dt") {
		c.Pendulum.Dt = dt
	}
	if flags.Changed("integrator") {
		c.Pendulum.Integrator = integrator
	}
	if flags.Changed("frames") && cmd.Name() != "spiral" {
		c.Output.Frames = frames
	}
	if flags.Changed("stride") {
		c.Output.Stride = stride
	}
	if flags.Changed("png-dir") {
		c.Output.PNGDir = pngDir
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runSpiral(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	if len(args) > 0 {
		cfg.Spiral.Data = args[0]
	}
	sk, err := automation.NewSketch(cfg, "spiral")
	if err != nil {
		return err
	}
	return automation.Render(ctx, cfg, sk, spiralFrames, spiralOut)
}

func runPendulums(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	sk, err := automation.NewSketch(cfg, "pendulums")
	if err != nil {
		return err
	}
	return automation.Render(ctx, cfg, sk, cfg.Output.Frames, pendulumsOut)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	log.Info().Str("scenario", scenario.Name).Int("steps", len(scenario.Steps)).Msg("running scenario")
	return automation.RunScenario(ctx, cfg, scenario)
}

func runLive(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		cfg.Spiral.Data = args[1]
	}
	sk, err := automation.NewSketch(cfg, args[0])
	if err != nil {
		return err
	}

	surface := render.NewBraille(cols, rows, cfg.Canvas.Width, cfg.Canvas.Height)
	return viz.Run(sketch.NewHost(sk, surface), cfg.Canvas.FPS)
}

func runEnergy(cmd *cobra.Command, args []string) error {
	field, err := pendulum.NewField(cfg.PendulumOptions())
	if err != nil {
		return err
	}

	drifts := make([]*metrics.EnergyDrift, len(field.Bobs))
	bounds := make([]*metrics.StepBound, len(field.Bobs))
	for i, b := range field.Bobs {
		drifts[i] = metrics.NewEnergyDrift(b.System).KeepSeries()
		bounds[i] = metrics.NewStepBound(1.0)
	}

	for step := 0; step < cfg.Output.Frames; step++ {
		t := float64(step) * cfg.Pendulum.Dt
		for i, b := range field.Bobs {
			drifts[i].Observe(b.State, t)
			bounds[i].Observe(b.State, t)
			field.UpdateBob(i)
		}
	}

	colors := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Blue, asciigraph.Green, asciigraph.Yellow, asciigraph.Magenta, asciigraph.Cyan}
	series := make([][]float64, len(drifts))
	seriesColors := make([]asciigraph.AnsiColor, len(drifts))
	legends := make([]string, len(drifts))
	for i, d := range drifts {
		series[i] = d.Series()
		seriesColors[i] = colors[i%len(colors)]
		legends[i] = fmt.Sprintf("#%d", i)
	}
	if cfg.Output.Frames > 1 {
		graph := asciigraph.PlotMany(series,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("energy per pendulum (%s, dt=%g)", cfg.Pendulum.Integrator, cfg.Pendulum.Dt)),
			asciigraph.SeriesColors(seriesColors...),
			asciigraph.SeriesLegends(legends...),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if energyCSV != "" {
		f, err := os.Create(energyCSV)
		if err != nil {
			return err
		}
		if err := export.EnergyCSV(f, series, cfg.Pendulum.Dt); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info().Str("path", energyCSV).Msg("energy traces written")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PENDULUM\tINITIAL\tFINAL\tMAX DRIFT\tBOUNDED\tFROZEN")
	for i, d := range drifts {
		vals := metrics.Collect(d, bounds[i])
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.4f%%\t%.1f%%\t%v\n",
			i, d.Initial(), d.Current(), 100*vals["energy_drift"], 100*vals["step_bound"], field.Frozen(i))
	}
	return w.Flush()
}

func runChaos(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	exps, err := analysis.FieldExponents(ctx, cfg.PendulumOptions(), cfg.Output.Frames, analysis.DefaultPerturbation)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PENDULUM\tTHETA1\tLAMBDA\tVERDICT")
	for _, e := range exps {
		verdict := "regular"
		switch {
		case math.IsNaN(e.Lambda):
			verdict = "diverged"
		case e.Lambda > 0.01:
			verdict = "chaotic"
		}
		fmt.Fprintf(w, "%d\t%.3f\t%.4f\t%s\n", e.Index, e.Theta1, e.Lambda, verdict)
	}
	return w.Flush()
}

func runTrails(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	sk := pendulum.NewSketch(cfg.PendulumOptions()).KeepTrail()
	host := sketch.NewHost(sk, render.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height))
	if err := host.Run(ctx, cfg.Output.Frames); err != nil {
		return err
	}

	svg := export.TrailsToSVG(sk.Field(), sk.Trail(), cfg.Canvas.Width, cfg.Canvas.Height)
	if err := os.WriteFile(trailsOut, []byte(svg), 0644); err != nil {
		return err
	}
	log.Info().Str("path", trailsOut).Int("points", sk.Trail().Total()).Msg("trails written")
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	sketches := config.Sketches()
	if len(args) > 0 {
		if config.ListPresets(args[0]) == nil {
			fmt.Printf("no presets for sketch: %s\n", args[0])
			return nil
		}
		sketches = args[:1]
	}
	for _, sk := range sketches {
		fmt.Printf("presets for %s:\n", sk)
		for _, p := range config.ListPresets(sk) {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err == nil {
		return fmt.Errorf("%s already exists", args[0])
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
