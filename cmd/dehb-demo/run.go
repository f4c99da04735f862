package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hadarshavit/dehb-go/configspace"
	"github.com/hadarshavit/dehb-go/dehb"
	"github.com/hadarshavit/dehb-go/logging"
	"github.com/hadarshavit/dehb-go/metrics"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var withMetrics bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run f(x)=x^2 via Run() and via Ask/Tell, and compare the trajectories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDemoConfig(configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Logging)

			var recorder dehb.MetricsRecorder
			if withMetrics {
				recorder = metrics.New(prometheus.DefaultRegisterer)
			}

			// Two independent spaces seeded identically: Run and Ask/Tell each
			// consume the space's sampling RNG on their own schedule, so a
			// shared instance would desync the two initial populations.
			runResult, err := runViaRun(cfg, newQuadraticSpace(), logger, recorder)
			if err != nil {
				return fmt.Errorf("run() path: %w", err)
			}
			askTellResult, err := runViaAskTell(cfg, newQuadraticSpace(), recorder)
			if err != nil {
				return fmt.Errorf("ask/tell path: %w", err)
			}

			printComparison(os.Stdout, runResult, askTellResult)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML options file")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "register Prometheus metrics for this run")
	return cmd
}

func newQuadraticSpace() *configspace.ConfigurationSpace {
	return configspace.New(int64(0), configspace.NewUniformFloat("x", -5, 5))
}

func quadraticObjective(_ context.Context, cfg any, _ float64) (dehb.EvalResult, error) {
	x := cfg.(configspace.Configuration)["x"].(float64)
	return dehb.EvalResult{Fitness: x * x, Cost: 0}, nil
}

func runViaRun(cfg demoConfig, space *configspace.ConfigurationSpace, logger zerolog.Logger, recorder dehb.MetricsRecorder) ([]float64, error) {
	opts := cfg.Options
	d, err := dehb.New(opts, space.Dim(), quadraticObjective,
		dehb.WithConfigSpace(space), dehb.WithLogger(logger), withRecorderOpt(recorder))
	if err != nil {
		return nil, err
	}
	result, err := d.Run(context.Background(), cfg.Generations, 1.0, true, true)
	if err != nil {
		return nil, err
	}
	return result.Traj, nil
}

func runViaAskTell(cfg demoConfig, space *configspace.ConfigurationSpace, recorder dehb.MetricsRecorder) ([]float64, error) {
	opts := cfg.Options
	at, err := dehb.NewAskTell(opts, space.Dim(), quadraticObjective,
		dehb.WithConfigSpace(space), withRecorderOpt(recorder))
	if err != nil {
		return nil, err
	}

	steps := opts.PopSize * (cfg.Generations + 1)
	var traj []float64
	for i := 0; i < steps; i++ {
		trial, err := at.Ask(1.0)
		if err != nil {
			return nil, err
		}
		res, err := quadraticObjective(context.Background(), trial.Config, 1.0)
		if err != nil {
			return nil, err
		}
		if err := at.Tell(trial, res, 1.0); err != nil {
			return nil, err
		}
		score, _, _, _ := at.Incumbent()
		traj = append(traj, score)
	}
	return traj, nil
}

func withRecorderOpt(recorder dehb.MetricsRecorder) dehb.DEOption {
	if recorder == nil {
		return func(*dehb.DE) {}
	}
	return dehb.WithMetrics(recorder)
}

func printComparison(w io.Writer, runTraj, askTellTraj []float64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"step", "run() incumbent", "ask/tell incumbent"})

	n := len(runTraj)
	if len(askTellTraj) < n {
		n = len(askTellTraj)
	}
	for i := 0; i < n; i++ {
		t.AppendRow(table.Row{i, runTraj[i], askTellTraj[i]})
	}
	t.Render()
}
