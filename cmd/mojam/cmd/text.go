package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mojam-curator/internal/arabic"
)

var (
	extractRoot    string
	highlightWords []string
	asJSON         bool
)

var segmentCmd = &cobra.Command{
	Use:   "segment [text]",
	Short: "Split a passage into sentences",
	Long: `Split a passage at '.' outside parentheses, one segment per line.
The passage is read from stdin when no argument is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := inputText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		return printList(cmd, arabic.Segment(text))
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract --root ROOT [passage]",
	Short: "List the words of a passage derived from a root",
	Example: `  mojam extract --root درس "يدرس الطالب دروسا"
  mojam extract --root أبب < passage.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := inputText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		return printList(cmd, arabic.Extract(text, extractRoot))
	},
}

var highlightCmd = &cobra.Command{
	Use:   "highlight --word W [--word W...] [text]",
	Short: "Mark accepted words in a passage",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := inputText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), arabic.Highlight(text, highlightWords))
		return err
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractRoot, "root", "", "root to extract for")
	_ = extractCmd.MarkFlagRequired("root")

	highlightCmd.Flags().StringSliceVar(&highlightWords, "word", nil, "accepted word (repeatable)")

	for _, c := range []*cobra.Command{segmentCmd, extractCmd} {
		c.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	}

	rootCmd.AddCommand(segmentCmd, extractCmd, highlightCmd)
}

func printList(cmd *cobra.Command, items []string) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		return enc.Encode(items)
	}
	if len(items) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(out, strings.Join(items, "\n"))
	return err
}
