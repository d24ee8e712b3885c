package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
	"github.com/samuelfneumann/smartcab/report"
	"github.com/spf13/cobra"
)

// Flags of the sweep command
var (
	epsilons         []float64
	explorationSteps []int
	learningRates    []float64
	discounts        []float64
)

func newSweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one experiment per combination of agent hyperparameters",
		RunE:  runSweep,
	}

	defaults := qlearning.DefaultConfig()
	sweepCmd.Flags().Float64SliceVar(&epsilons, "epsilon",
		[]float64{defaults.Epsilon}, "exploration rates")
	sweepCmd.Flags().IntSliceVar(&explorationSteps, "exploration-steps",
		[]int{defaults.ExplorationSteps}, "exploration schedule time constants")
	sweepCmd.Flags().Float64SliceVar(&learningRates, "alpha",
		[]float64{0.1, 0.3, 0.5}, "learning rates")
	sweepCmd.Flags().Float64SliceVar(&discounts, "gamma",
		[]float64{0.1, 0.5, 0.9}, "discount factors")

	return sweepCmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}

	list := qlearning.ConfigList{
		Base:             config.Agent,
		Epsilon:          epsilons,
		ExplorationSteps: explorationSteps,
		LearningRate:     learningRates,
		Discount:         discounts,
	}
	if list.Len() == 0 {
		return fmt.Errorf("no configurations to sweep")
	}

	au := aurora.NewAurora(!noColour)
	best, bestFraction := -1, -1.0
	for i := 0; i < list.Len(); i++ {
		config.Agent = list.At(i)

		exp, _, agent, err := config.CreateExp(nil)
		if err != nil {
			return fmt.Errorf("config %d: %v", i, err)
		}
		exp.Run()

		s := report.New(agent, config.Agent)
		fmt.Fprintf(os.Stdout, "%3d  %v  |  successes: %3d/%d  |  wrong "+
			"moves: %4d  |  average deadline fraction: %.4f\n", i,
			config.Agent, s.SuccessfulTrips, s.Trips, s.WrongMoves,
			s.AverageDeadlineFraction)

		if s.AverageDeadlineFraction > bestFraction {
			best, bestFraction = i, s.AverageDeadlineFraction
		}
	}

	fmt.Fprintf(os.Stdout, "best: %v\n", au.Green(list.At(best)))
	return nil
}
