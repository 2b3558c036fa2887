package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrewpaige1/studysnap-api/cardtext"
	"github.com/andrewpaige1/studysnap-api/extract"
	"github.com/spf13/cobra"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract text from a file and print the flashcards found in it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		text, err := extract.Text(filepath.Base(args[0]), "", data)
		if err != nil {
			return err
		}

		var cards []cardtext.Card
		switch parseFormat {
		case "bulk":
			cards, err = cardtext.ParseBulk(text)
		case "ai":
			cards, err = cardtext.ParseAIResponse(text)
		default:
			return fmt.Errorf("unknown format %q, want bulk or ai", parseFormat)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "bulk", `card format: "bulk" (Q:/A: lines) or "ai" (records ending in ---)`)
	rootCmd.AddCommand(parseCmd)
}
