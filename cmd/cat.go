package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-noteformatter/internal/config"
	"github.com/julien-sobczak/the-noteformatter/internal/format"
	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
)

func init() {
	rootCmd.AddCommand(catCmd)
}

var catCmd = &cobra.Command{
	Use:   "cat FILE",
	Short: "Print a note with its formatting applied",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := os.ReadFile(args[0])
		if err != nil {
			config.CurrentLogger().Fatalf("Unable to read note file: %v", err)
		}

		document := format.Load(string(content))

		bold := color.New(color.Bold)
		italic := color.New(color.Italic)
		marker := color.New(color.FgCyan)

		document.EnumerateRuns(func(substring string, attrs richtext.Attributes, r richtext.Range) {
			if token, ok := attrs[richtext.AttributeListKind].(string); ok {
				kind := format.MustParseListKind(token)
				// The checkmark glyph is zero-width: render the overlay icon instead.
				if kind.Category == format.CategoryCheckmark {
					substring = strings.ReplaceAll(substring, "\u200b", checkmarkIcon(kind))
				}
				marker.Print(substring)
				return
			}
			switch {
			case attrs[richtext.AttributeFontWeight] == "bold":
				bold.Print(substring)
			case attrs[richtext.AttributeFontStyle] == "italic":
				italic.Print(substring)
			default:
				fmt.Print(substring)
			}
		})
	},
}

func checkmarkIcon(kind format.ListKind) string {
	if kind.Checked != nil && *kind.Checked {
		return "☑"
	}
	return "☐"
}
