package cli

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"todolist/internal/clock"
	"todolist/internal/config"
	"todolist/internal/logging"
	"todolist/internal/task"
	"todolist/internal/telemetry"
)

// app is the state shared by every subcommand once flags and config are resolved.
type app struct {
	clock    clock.Clock
	cfg      *config.Config
	logger   *logrus.Logger
	promReg  *prometheus.Registry
	registry *task.Registry
}

// NewRootCommand builds the todo command tree. c stamps every activity-log event.
func NewRootCommand(c clock.Clock) *cobra.Command {
	a := &app{clock: c}

	var (
		cfgFile  string
		logLevel string
	)

	root := &cobra.Command{
		Use:   "todo",
		Short: "In-memory task tracker",
		Long: `todo keeps tasks in memory for the lifetime of one command.

Tasks listed under "seed" in the config file are loaded at start-up; list,
stats and log then report on them. demo walks through a fixed sequence of
add, modify and remove operations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, cfgFile, logLevel); err != nil {
				return err
			}
			return a.seed()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.promReg == nil {
				return nil
			}
			return a.writeMetrics(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newDemoCommand(a),
		newListCommand(a),
		newStatsCommand(a),
		newLogCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, cfgFile, logLevel string) error {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = cfg
	} else {
		a.cfg = config.Default()
		a.cfg.ApplyEnv()
	}
	if logLevel != "" {
		a.cfg.Log.Level = logLevel
	}

	logger, err := logging.New(a.cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger

	opts := []task.Option{
		task.WithClock(a.clock),
		task.WithLogger(logger.WithField("component", "registry")),
	}
	if a.cfg.Metrics.Enabled {
		a.promReg = prometheus.NewRegistry()
		opts = append(opts, task.WithMetrics(telemetry.NewMetrics(a.promReg)))
	}
	a.registry = task.NewRegistry(opts...)
	return nil
}

func (a *app) seed() error {
	now := a.clock.Now()
	for _, s := range a.cfg.Seed {
		deadline, err := s.Deadline(now)
		if err != nil {
			return err
		}
		t := task.NewTask(s.ID, s.Name, deadline, s.Tags)
		t.SetCompleted(s.Completed)
		a.registry.Add(t)
	}
	a.logger.WithField("tasks", len(a.cfg.Seed)).Debug("seeded registry")
	return nil
}

func (a *app) writeMetrics(cmd *cobra.Command) error {
	families, err := a.promReg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return err
		}
	}
	return nil
}

// window resolves --from/--to flags (RFC 3339) against the defaults.
func window(from, to string, defFrom, defTo time.Time) (time.Time, time.Time, error) {
	start, end := defFrom, defTo
	var err error
	if from != "" {
		if start, err = time.Parse(time.RFC3339, from); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
		}
	}
	if to != "" {
		if end, err = time.Parse(time.RFC3339, to); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
		}
	}
	return start, end, nil
}
