package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
	"github.com/samuelfneumann/smartcab/experiment"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
	"github.com/samuelfneumann/smartcab/render"
	"github.com/samuelfneumann/smartcab/report"
	ts "github.com/samuelfneumann/smartcab/timestep"
	"github.com/spf13/cobra"
)

// Flags shared by all commands
var (
	configFile string
	trials     int
	seed       uint64
	noColour   bool
)

// Flags of the run command
var (
	verbose       bool
	outDir        string
	snapshotEvery int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartcab",
		Short: "Smartcab trains a tabular Q-learning agent to drive a cab through a grid of traffic lights.",
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"JSON experiment config (default config if empty)")
	rootCmd.PersistentFlags().IntVarP(&trials, "trials", "n", 0,
		"number of trips to run (overrides config)")
	rootCmd.PersistentFlags().Uint64VarP(&seed, "seed", "s", 0,
		"random seed (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false,
		"print reports without colour")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single experiment and report the agent's performance",
		RunE:  runExperiment,
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log every step instead of showing a progress bar")
	runCmd.Flags().StringVarP(&outDir, "out", "o", "results",
		"directory for tracked data, charts and snapshots")
	runCmd.Flags().IntVar(&snapshotEvery, "snapshot", 0,
		"save a PNG of the world at the end of every n-th trip (0 for never)")

	rootCmd.AddCommand(runCmd, newSweepCmd())

	// Environment variables may be set in a .env file
	for _, envFile := range []string{".env", "../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the experiment config from the config file, then
// overrides it with SMARTCAB_* environment variables and finally with
// any flags set on the command line
func loadConfig(cmd *cobra.Command) (experiment.Config, error) {
	config := experiment.DefaultConfig()
	if configFile != "" {
		var err error
		if config, err = experiment.LoadConfig(configFile); err != nil {
			return experiment.Config{}, err
		}
	}

	if err := config.Override(os.LookupEnv); err != nil {
		return experiment.Config{}, err
	}

	if cmd.Flags().Changed("trials") {
		config.Trials = trials
	}
	if cmd.Flags().Changed("seed") {
		config.Seed = seed
	}

	return config, config.Validate()
}

func runExperiment(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %v", err)
	}

	runID := uuid.New().String()
	logger := log.New(os.Stderr, fmt.Sprintf("smartcab %v: ", runID[:8]),
		log.LstdFlags)
	output := func(name string) string {
		return filepath.Join(outDir, fmt.Sprintf("%v-%v", runID, name))
	}

	ret := trackers.NewReturn(output("return.bin"))
	length := trackers.NewTripLength(output("length.bin"))
	fraction := trackers.NewDeadlineFraction(output("fraction.bin"))

	exp, world, agent, err := config.CreateExp(logger, ret, length, fraction)
	if err != nil {
		return err
	}
	exp.Verbose(verbose)
	if !verbose {
		exp.ProgressBar(50)
	}
	if snapshotEvery > 0 {
		exp.AfterTrip(snapshot(world, snapshotEvery, output, logger))
	}

	logger.Printf("running %d trials: %v | %v", config.Trials, config.Env,
		config.Agent)
	exp.Run()
	fmt.Println()
	exp.Save()

	summary := report.New(agent, config.Agent)
	printer := report.NewPrinter(os.Stdout, !noColour)
	printer.Summary(summary)
	if err := printer.Weights(agent.Weights()); err != nil {
		return err
	}

	chart, err := os.Create(output("chart.html"))
	if err != nil {
		return fmt.Errorf("could not create chart: %v", err)
	}
	defer chart.Close()
	if err := report.Chart(chart, summary, ret.Data()); err != nil {
		return err
	}

	logger.Printf("saved results to %v", output("*"))
	return nil
}

// snapshot returns a function that saves a PNG of the world at the end
// of every n-th trip
func snapshot(world *smartcab.World, n int, output func(string) string,
	logger *log.Logger) func(int, ts.TimeStep) {
	return func(trial int, last ts.TimeStep) {
		if trial%n != 0 {
			return
		}
		filename := output(fmt.Sprintf("trip%04d.png", trial))
		if err := render.Snapshot(world, filename); err != nil {
			logger.Printf("warning: %v", err)
		}
	}
}
