package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/pkg/service"
)

func NewSheetCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sheet",
		Short:   "Manage command sheets",
		Aliases: []string{"sheets"},
		Long: `Manage command sheets.

A sheet is a plain text document: the first line is its name, headers
are indented four spaces, and entries under a header are indented
eight spaces. Entries starting with > are shell commands; append
" #<text>" for a description.`,
	}

	cmd.AddCommand(newSheetListCmd(svc))
	cmd.AddCommand(newSheetShowCmd(svc))
	cmd.AddCommand(newSheetNewCmd(svc))
	cmd.AddCommand(newSheetRenameCmd(svc))
	cmd.AddCommand(newSheetDeleteCmd(svc))
	return cmd
}

func newSheetListCmd(svc **service.Service) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all sheets",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			sheets, err := s.Refresh()
			if err != nil {
				return fmt.Errorf("load sheets: %w", err)
			}

			if listJSON {
				return outputJSON(sheets)
			}
			for _, sh := range sheets {
				noteCount := 0
				for _, h := range sh.Headers {
					noteCount += len(h.Notes)
				}
				fmt.Printf("%-24s %s (%d headers, %d entries)\n", sh.ID, sh.Name, len(sh.Headers), noteCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}

func newSheetShowCmd(svc **service.Service) *cobra.Command {
	var showJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one sheet's headers and entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if _, err := s.Refresh(); err != nil {
				return fmt.Errorf("load sheets: %w", err)
			}

			sh := s.Sheets.Get(args[0])
			if sh == nil {
				return fmt.Errorf("sheet not found: %s", args[0])
			}

			if showJSON {
				return outputJSON(sh)
			}
			printSheet(sh)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	return cmd
}

func newSheetNewCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a sheet from the starter template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if _, err := s.Refresh(); err != nil {
				return fmt.Errorf("load sheets: %w", err)
			}

			sh, err := s.Sheets.Add(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created sheet %s (%s)\n", sh.Name, sh.ID)
			return nil
		},
	}
}

func newSheetRenameCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <new-name>",
		Short: "Rename a sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if _, err := s.Refresh(); err != nil {
				return fmt.Errorf("load sheets: %w", err)
			}
			if err := s.Sheets.Rename(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed sheet %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newSheetDeleteCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a sheet",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := s.Sheets.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted sheet %s\n", args[0])
			return nil
		},
	}
}
