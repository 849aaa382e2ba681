package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/pkg/models"
	"github.com/devdeck/devdeck/pkg/search"
	"github.com/devdeck/devdeck/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var (
		searchSheet    string
		searchCommands bool
		searchLimit    int
		searchJSON     bool
		searchModel    bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search notes and commands across all sheets",
		Long: `Search notes and commands across all sheets.

By default the sqlite index is queried. With --sheets the in-memory
collection is filtered instead, returning whole sheets whose name,
headers or entries match the term.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if _, err := s.Refresh(); err != nil {
				return fmt.Errorf("load sheets: %w", err)
			}

			if searchModel {
				sheets := s.Sheets.Search(args[0])
				if searchJSON {
					return outputJSON(sheets)
				}
				if len(sheets) == 0 {
					fmt.Println("No sheets match")
					return nil
				}
				for _, sh := range sheets {
					printSheet(sh)
					fmt.Println()
				}
				return nil
			}

			opts := &search.Options{Sheet: searchSheet, Limit: searchLimit}
			if searchCommands {
				opts.Kind = models.KindCommand
			}

			notes, err := s.SearchNotes(args[0], opts)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			if searchJSON {
				if notes == nil {
					notes = []*models.Note{}
				}
				return outputJSON(notes)
			}
			if len(notes) == 0 {
				fmt.Println("No matches found")
				return nil
			}
			printNotesTable(notes)
			return nil
		},
	}

	cmd.Flags().StringVar(&searchSheet, "sheet", "", "Limit to one sheet by name")
	cmd.Flags().BoolVar(&searchCommands, "commands", false, "Match commands only")
	cmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum number of results")
	cmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&searchModel, "sheets", false, "Filter whole sheets instead of querying the index")
	return cmd
}
