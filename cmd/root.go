package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-noteformatter/internal/config"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var rootCmd = &cobra.Command{
	Use:   "the-noteformatter",
	Short: "The NoteFormatter styles Markdown-ish notes as you type",
	Long: `An incremental rich-text formatting engine for notes:
bold/italic inline styling and bullet, dashed, ordered and checkmark lists,
with lossless round-tripping to a plain-text encoding.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			config.CurrentLogger().SetVerboseLevel(config.VerboseInfo)
		}
		if verboseDebug {
			config.CurrentLogger().SetVerboseLevel(config.VerboseDebug)
		}
		if verboseTrace {
			config.CurrentLogger().SetVerboseLevel(config.VerboseTrace)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "verbose", "v", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVar(&verboseDebug, "verbose-debug", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&verboseTrace, "verbose-trace", false, "enable verbose trace output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
