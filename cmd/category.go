package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/pkg/service"
)

func NewCategoryCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Short:   "Manage project categories",
		Aliases: []string{"categories", "cat"},
	}

	cmd.AddCommand(newCategoryListCmd(svc))
	cmd.AddCommand(newCategoryAddCmd(svc))
	cmd.AddCommand(newCategoryRemoveCmd(svc))
	return cmd
}

func newCategoryListCmd(svc **service.Service) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List categories in display order",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			categories, err := s.Projects.Categories()
			if err != nil {
				return err
			}
			if listJSON {
				return outputJSON(categories)
			}
			if len(categories) == 0 {
				fmt.Println("No categories defined")
				return nil
			}
			for _, cat := range categories {
				if cat.Icon != "" {
					fmt.Printf("%-20s %s %s\n", cat.ID, cat.Icon, cat.Name)
				} else {
					fmt.Printf("%-20s %s\n", cat.ID, cat.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}

func newCategoryAddCmd(svc **service.Service) *cobra.Command {
	var addIcon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			cat, err := s.Projects.AddCategory(args[0], addIcon)
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s (%s)\n", cat.Name, cat.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&addIcon, "icon", "", "Icon shown next to the category name")
	return cmd
}

func newCategoryRemoveCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Short:   "Delete a category",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := s.Projects.RemoveCategory(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed category %s\n", args[0])
			return nil
		},
	}
}
