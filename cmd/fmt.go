package cmd

import (
	"fmt"
	"os"

	cp "github.com/otiai10/copy"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-noteformatter/internal/config"
	"github.com/julien-sobczak/the-noteformatter/internal/format"
)

var writeInPlace bool

func init() {
	fmtCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "write the normalized note back instead of printing it")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Normalize the storage encoding of a note",
	Long: `Round-trip a plain-text note through the formatting engine,
renumbering live-editable list markers and canonicalizing the markup.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			config.CurrentLogger().Fatalf("Unable to read note file: %v", err)
		}

		document := format.Load(string(content))
		normalized := format.Save(document)

		if writeInPlace {
			// Keep the previous encoding around before rewriting the file
			if err := cp.Copy(path, path+".bak"); err != nil {
				config.CurrentLogger().Fatalf("Unable to back up note file: %v", err)
			}
			if err := os.WriteFile(path, []byte(normalized), 0644); err != nil {
				config.CurrentLogger().Fatalf("Unable to write note file: %v", err)
			}
			return
		}
		fmt.Print(normalized)
	},
}
