// cmd/rotator/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tamzrod/presence-rotator/internal/config"
	"github.com/tamzrod/presence-rotator/internal/logging"
	"github.com/tamzrod/presence-rotator/internal/metrics"
	"github.com/tamzrod/presence-rotator/internal/scheduler"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

const defaultConfigPath = "config.json"

var rootCmd = &cobra.Command{
	Use:          "rotator [config]",
	Short:        "Rotate the account custom status and activity",
	Long:         `Cycles through the configured statuses forever, pushing each one to the account settings endpoint and honoring its rate limits.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath := defaultConfigPath
		if len(args) == 1 {
			cfgPath = args[0]
		}
		return runRotator(cmd.Context(), cfgPath, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rotator %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRotator(ctx context.Context, cfgPath string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logging.Banner(out, "Starting presence rotator...")

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	log := logging.New(cfg.LogLevel, out)

	// --------------------
	// Build scheduler (setup errors stop here)
	// --------------------

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	s, err := scheduler.Build(cfg, log, rec)
	if err != nil {
		return fmt.Errorf("scheduler build failed: %w", err)
	}

	log.WithFields(logrus.Fields{
		"statuses": len(cfg.Statuses),
		"delay":    cfg.DelayDuration().String(),
	}).Info("Rotation started")

	// --------------------
	// Actors
	// --------------------

	var g run.Group

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return s.Run(ctx)
		}, func(error) {
			cancel()
		})
	}

	if cfg.Metrics.Enable {
		srv := metrics.NewServer(cfg.Metrics.Listen, cfg.Metrics.Path, reg)
		g.Add(func() error {
			log.Infof("Metrics listening on %s%s", cfg.Metrics.Listen, cfg.Metrics.Path)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		}, func(error) {
			_ = srv.Close()
		})
	}

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return waitForSignal(ctx, log)
		}, func(error) {
			cancel()
		})
	}

	err = g.Run()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// waitForSignal blocks until SIGINT/SIGTERM (nil) or ctx is done (ctx.Err()).
func waitForSignal(ctx context.Context, log logrus.FieldLogger) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		log.Infof("Received %s, shutting down", sig)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
