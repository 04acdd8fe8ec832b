// Package cmd contains the mojam CLI commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mojam-curator/internal/app"
	"github.com/heartmarshall/mojam-curator/internal/config"
)

var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "mojam",
	Short: "Curate Arabic dictionary roots",
	Long: `mojam works on the passages of Arabic dictionaries (mojams) and the
word lists curated for each root.

Text tools (segment, extract, highlight) run offline. Storage commands
(import, export, migrate, cleanup) read the server configuration from
--config, CONFIG_PATH or ./config.yaml, with the environment taking
precedence; "mojam env" lists the variables.`,
	SilenceUsage: true,
	Version:      app.BuildVersion(),
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.AddCommand(envCmd)
}

// newLogger writes text logs to stderr so stdout carries command output only.
func newLogger() *slog.Logger {
	return app.NewLoggerTo(os.Stderr, config.LogConfig{Level: logLevel, Format: "text"})
}

// loadConfig reads the server configuration and returns it with a CLI
// logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	load := config.Load
	if configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFile(configPath) }
	}
	cfg, err := load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(), nil
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables of the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		help, err := config.EnvHelp()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), help)
		return err
	},
}

// inputText joins args, or reads stdin when there are none.
func inputText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
