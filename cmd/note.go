package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-noteformatter/internal/config"
	"github.com/julien-sobczak/the-noteformatter/internal/format"
	"github.com/julien-sobczak/the-noteformatter/internal/store"
	"github.com/julien-sobczak/the-noteformatter/pkg/oid"
)

func init() {
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage the notes of the repository",
}

var noteAddCmd = &cobra.Command{
	Use:   "add FILE",
	Short: "Add a note from a plain-text file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := os.ReadFile(args[0])
		if err != nil {
			config.CurrentLogger().Fatalf("Unable to read note file: %v", err)
		}

		// Normalize before persisting so the storage encoding stays canonical.
		normalized := format.Save(format.Load(string(content)))

		note, err := currentRepository().Add(normalized)
		if err != nil {
			config.CurrentLogger().Fatalf("Unable to add note: %v", err)
		}
		fmt.Printf("%s %s\n", note.OID, note.Title)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of the repository",
	Run: func(cmd *cobra.Command, args []string) {
		for _, note := range currentRepository().List() {
			fmt.Printf("%s %s (updated %s)\n", note.OID, note.Title, note.UpdatedAt.Format("2006-01-02"))
		}
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show OID",
	Short: "Print the raw content of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := currentRepository().Get(oid.ParseOrNil(args[0]))
		if err != nil {
			config.CurrentLogger().Fatal(err)
		}
		fmt.Print(note.Content)
	},
}

func currentRepository() *store.Repository {
	repository, err := store.NewRepository(config.CurrentConfig().Core.Root)
	if err != nil {
		config.CurrentLogger().Fatal(err)
	}
	return repository
}
