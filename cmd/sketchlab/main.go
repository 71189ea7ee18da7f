package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string

	spiralOut    string
	pendulumsOut string
	trailsOut    string
	energyCSV    string
	pngDir       string
	spiralFrames int
	frames       int
	stride       int
	fps          int
	size         int
	radius       float64
	missing      string
	count        int
	dt           float64
	integrator   string
	cols         int
	rows         int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sketchlab",
		Short:        "climate spiral and double pendulum sketches",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "apply a named preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "trace|debug|info|warn|error|none")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")

	spiralCmd := &cobra.Command{
		Use:   "spiral <csv>",
		Short: "render the climate spiral",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSpiral,
	}
	spiralCmd.Flags().StringVar(&spiralOut, "out", "spiral.gif", "animated gif output")
	spiralCmd.Flags().StringVar(&pngDir, "png-dir", "", "write png frames here instead of a gif")
	spiralCmd.Flags().IntVar(&spiralFrames, "frames", 0, "frames to render (0 = one pass over the table)")
	spiralCmd.Flags().IntVar(&stride, "stride", 1, "keep every n-th frame")
	spiralCmd.Flags().IntVar(&fps, "fps", 30, "playback frame rate")
	spiralCmd.Flags().IntVar(&size, "size", 600, "canvas size in pixels")
	spiralCmd.Flags().Float64Var(&radius, "radius", 200, "spiral radius")
	spiralCmd.Flags().StringVar(&missing, "missing", "***", "missing value token")

	pendulumsCmd := &cobra.Command{
		Use:   "pendulums",
		Short: "render the double pendulum field",
		Args:  cobra.NoArgs,
		RunE:  runPendulums,
	}
	pendulumsCmd.Flags().StringVar(&pendulumsOut, "out", "pendulums.gif", "animated gif output")
	pendulumsCmd.Flags().StringVar(&pngDir, "png-dir", "", "write png frames here instead of a gif")
	pendulumsCmd.Flags().IntVar(&frames, "frames", 600, "frames to render")
	pendulumsCmd.Flags().IntVar(&stride, "stride", 1, "keep every n-th frame")
	pendulumsCmd.Flags().IntVar(&fps, "fps", 30, "playback frame rate")
	pendulumsCmd.Flags().IntVar(&size, "size", 600, "canvas size in pixels")
	addPendulumFlags(pendulumsCmd)

	liveCmd := &cobra.Command{
		Use:   "live <spiral|pendulums> [csv]",
		Short: "run a sketch in the terminal",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&cols, "cols", 60, "canvas width in terminal cells")
	liveCmd.Flags().IntVar(&rows, "rows", 30, "canvas height in terminal cells")
	liveCmd.Flags().Float64Var(&radius, "radius", 200, "spiral radius")
	liveCmd.Flags().StringVar(&missing, "missing", "***", "missing value token")
	addPendulumFlags(liveCmd)

	energyCmd := &cobra.Command{
		Use:   "energy",
		Short: "plot pendulum energies and drift",
		Args:  cobra.NoArgs,
		RunE:  runEnergy,
	}
	energyCmd.Flags().IntVar(&frames, "frames", 600, "steps to integrate")
	energyCmd.Flags().StringVar(&energyCSV, "csv", "", "also write the energy traces to this csv file")
	addPendulumFlags(energyCmd)

	trailsCmd := &cobra.Command{
		Use:   "trails",
		Short: "export pendulum trails as svg",
		Args:  cobra.NoArgs,
		RunE:  runTrails,
	}
	trailsCmd.Flags().StringVar(&trailsOut, "out", "trails.svg", "svg output")
	trailsCmd.Flags().IntVar(&frames, "frames", 600, "frames to accumulate")
	trailsCmd.Flags().IntVar(&size, "size", 600, "canvas size in pixels")
	addPendulumFlags(trailsCmd)

	chaosCmd := &cobra.Command{
		Use:   "chaos",
		Short: "estimate each pendulum's largest lyapunov exponent",
		Args:  cobra.NoArgs,
		RunE:  runChaos,
	}
	chaosCmd.Flags().IntVar(&frames, "frames", 600, "steps to integrate")
	addPendulumFlags(chaosCmd)

	batchCmd := &cobra.Command{
		Use:   "batch <scenario.yaml>",
		Short: "run a scripted list of renders",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [sketch]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "write the effective config to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(spiralCmd, pendulumsCmd, liveCmd, energyCmd, chaosCmd, trailsCmd, batchCmd, presetsCmd, configCmd)

	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func addPendulumFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&count, "count", 4, "number of pendulums")
	cmd.Flags().Float64Var(&dt, "dt", 0.1, "time step")
	cmd.Flags().StringVar(&integrator, "integrator", "euler", "euler|rk4")
}
