package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/subscriptions/pkg/config"
	"github.com/dmitrymomot/subscriptions/pkg/logger"
	"github.com/dmitrymomot/subscriptions/pkg/requestid"
)

// app carries what every command needs once the root pre-run has finished.
type app struct {
	out io.Writer
	log *slog.Logger
	cfg appConfig

	driver   string
	verbose  bool
	envFiles []string

	startedAt time.Time
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:           "subscriptions",
		Short:         "Subscription lifecycle service",
		Long:          "Creates, cancels and expires user subscriptions backed by memory, PostgreSQL, SQLite or MongoDB.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.init(cmd); err != nil {
				return err
			}

			a.startedAt = time.Now()
			ctx := requestid.WithContext(cmd.Context(), requestid.New())
			cmd.SetContext(ctx)

			a.log.DebugContext(ctx, "command start",
				slog.String("command", cmd.CommandPath()),
				logger.Driver(a.cfg.Driver),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.log.DebugContext(cmd.Context(), "command end",
				slog.String("command", cmd.CommandPath()),
				logger.Duration(time.Since(a.startedAt)),
			)
		},
	}

	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.driver, "driver", "", "storage driver: "+strings.Join(drivers, "|")+" (default from STORAGE_DRIVER)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, ".env files to load before reading configuration")

	cmd.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newCreateCmd(a),
		newCancelCmd(a),
		newExpireCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("driver") {
		a.cfg.Driver = a.driver
	}
	if !slices.Contains(drivers, a.cfg.Driver) {
		return fmt.Errorf("%w: %q", ErrUnknownDriver, a.cfg.Driver)
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.Name),
		logger.WithOutput(os.Stderr),
		logger.WithLevelName(a.cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if a.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	a.log = logger.New(opts...)
	return nil
}
