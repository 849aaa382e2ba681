package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/pkg/projects"
	"github.com/devdeck/devdeck/pkg/service"
)

func NewTreeCmd(svc **service.Service) *cobra.Command {
	var (
		treeAll    bool
		treeFilter string
		treeJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show projects grouped by favorites and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			filter := projects.Filter{
				ShowInactive: treeAll || s.Config.ShowInactive,
				Term:         treeFilter,
			}

			grouping, err := s.GroupedProjects(filter)
			if err != nil {
				return err
			}

			if treeJSON {
				return outputJSON(grouping)
			}

			printed := false
			if len(grouping.Favorites) > 0 {
				printSectionTitle("Favorites")
				printTree(grouping.Favorites, 1)
				printed = true
			}
			for _, ct := range grouping.Categories {
				name := ct.Category.Name
				if ct.Category.Icon != "" {
					name = ct.Category.Icon + " " + name
				}
				printSectionTitle(name)
				printTree(ct.Nodes, 1)
				printed = true
			}
			if len(grouping.Uncategorized) > 0 {
				printSectionTitle("Projects")
				printTree(grouping.Uncategorized, 1)
				printed = true
			}
			if !printed {
				fmt.Println("No projects registered")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&treeAll, "all", "a", false, "Include inactive projects")
	cmd.Flags().StringVarP(&treeFilter, "filter", "f", "", "Substring filter on label or path")
	cmd.Flags().BoolVar(&treeJSON, "json", false, "Output in JSON format")
	return cmd
}
