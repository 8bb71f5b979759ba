package main

import (
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"conway-live/internal/app"
	"conway-live/internal/config"
	"conway-live/internal/sims/life"
	"conway-live/internal/tui"
)

var (
	configFile string
	width      int
	height     int
	tickRate   float64
	seed       int64
	maxSteps   int
	running    bool
	scale      int
	guiFPS     int
	tuiFPS     int
	seconds    float64
	frameDt    float64
	seeds      int
	gens       int
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// bindGUIFlags registers the window flags. The root command opens the window
// too, so it carries them as well as gui.
func bindGUIFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "pixels per cell")
	cmd.Flags().IntVar(&guiFPS, "fps", 60, "window update rate")
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "life",
		Short:         "conway's game of life on a bounded grid (opens the window by default)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runGUI,
	}
	bindGUIFlags(rootCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.IntVar(&width, "width", config.DefaultWidth, "grid width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "grid height in cells")
	pf.Float64Var(&tickRate, "rate", config.DefaultTickRate, "generations per second")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed (0 seeds from the clock)")
	pf.IntVar(&maxSteps, "max-steps", 0, "cap on generations per update (0 = no cap)")
	pf.BoolVar(&running, "running", false, "start without waiting for a click")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	bindGUIFlags(guiCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&tuiFPS, "fps", 30, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and plot the population",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&seconds, "time", 5, "simulated seconds")
	runCmd.Flags().Float64Var(&frameDt, "dt", 1.0/60, "elapsed seconds fed per update")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare final populations across seeds",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&seeds, "seeds", 8, "number of consecutive seeds")
	sweepCmd.Flags().IntVar(&gens, "generations", 500, "generations per seed")

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, sweepCmd)
	return rootCmd
}

// loadConfig resolves the config file, then explicitly set flags, then the
// clock seed.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("rate") {
		cfg.TickRate = tickRate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("max-steps") {
		cfg.MaxStepsPerAdvance = maxSteps
	}
	if flags.Changed("running") {
		cfg.StartRunning = running
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[loadConfig] invalid flags")
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.Printf("seed %d, %dx%d at %v tps", cfg.Seed, cfg.Width, cfg.Height, cfg.TickRate)

	opts := app.DefaultOptions()
	opts.Scale = cfg.Scale
	if guiFPS > 0 {
		opts.TPS = guiFPS
	}
	return app.Run(life.New(cfg.Life()), opts)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(life.New(cfg.Life()), tuiFPS)
}
