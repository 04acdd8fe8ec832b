package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mojam-curator/internal/adapter/postgres"
	"github.com/heartmarshall/mojam-curator/internal/app"
	"github.com/heartmarshall/mojam-curator/internal/curation"
	"github.com/heartmarshall/mojam-curator/internal/snapshot"
)

var (
	snapshotDir string
	exportHTML  bool
	htmlWorkers int
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load resources.json, dataset.json and spectrum.json into the database",
	Long: `Replace the stored corpus, word lists and notes with the snapshot files
in --dir. A missing resources.json imports the built-in sample corpus; a
dataset without roots is skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		comps, err := app.Connect(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer comps.Close()

		tr := snapshot.NewTransfer(snapshot.NewDir(snapshotDir, logger), comps.Corpus, comps.Dataset, comps.Tx, logger)
		c, err := tr.Import(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d mojams, %d roots, %d word lists, %d notes\n",
			c.Mojams, c.Roots, c.Lists, c.Notes)
		return err
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the database out as snapshot files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		comps, err := app.Connect(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer comps.Close()

		var render snapshot.RenderFunc
		if exportHTML {
			render = func(text string, words []string) string {
				return comps.Engine.Render(curation.State{Passage: text, Words: words})
			}
		}

		tr := snapshot.NewTransfer(snapshot.NewDir(snapshotDir, logger), comps.Corpus, comps.Dataset, comps.Tx, logger)
		c, err := tr.Export(cmd.Context(), render, htmlWorkers)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d mojams, %d roots, %d word lists, %d notes, %d pages\n",
			c.Mojams, c.Roots, c.Lists, c.Notes, c.Pages)
		return err
	},
}

var migrateStatus bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if migrateStatus {
			states, err := postgres.MigrationStatus(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			for _, s := range states {
				mark := "pending"
				if s.Applied {
					mark = "applied"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s %s\n", s.Version, mark, s.Name); err != nil {
					return err
				}
			}
			return nil
		}
		if err := postgres.Migrate(cmd.Context(), cfg.Database.DSN, logger); err != nil {
			return err
		}
		logger.Info("migrations complete")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{importCmd, exportCmd} {
		c.Flags().StringVar(&snapshotDir, "dir", "data", "snapshot directory")
	}
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "also write one rendered HTML page per root")
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "list migrations instead of applying them")
	exportCmd.Flags().IntVar(&htmlWorkers, "workers", runtime.NumCPU(), "concurrent page writers")

	rootCmd.AddCommand(importCmd, exportCmd, migrateCmd)
}
