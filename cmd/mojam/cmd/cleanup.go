package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mojam-curator/internal/app"
)

var (
	cleanupMojam   string
	cleanupDryRun  bool
	cleanupTimeout time.Duration
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete word lists whose root no longer has a passage",
	Long: `Replacing the corpus can drop roots that already own a word list. Those
lists stay in the database but can never be opened again. cleanup removes
them; run it from cron or by hand after an import.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cleanupTimeout)
		defer cancel()

		comps, err := app.Connect(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer comps.Close()

		n, err := comps.Dataset.PruneOrphans(ctx, cleanupMojam, cleanupDryRun)
		if err != nil {
			logger.Error("cleanup failed", slog.String("error", err.Error()))
			return err
		}

		verb := "deleted"
		if cleanupDryRun {
			verb = "would delete"
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %d orphaned word lists\n", verb, n)
		return err
	},
}

func init() {
	cleanupCmd.Flags().StringVar(&cleanupMojam, "mojam", "", "limit cleanup to one mojam")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "only count the lists that would be deleted")
	cleanupCmd.Flags().DurationVar(&cleanupTimeout, "timeout", 5*time.Minute, "give up after this long")

	rootCmd.AddCommand(cleanupCmd)
}
