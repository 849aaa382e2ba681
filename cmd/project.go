package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/pkg/models"
	"github.com/devdeck/devdeck/pkg/projects"
	"github.com/devdeck/devdeck/pkg/service"
)

func NewProjectCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Short:   "Manage the project registry",
		Aliases: []string{"projects", "p"},
	}

	cmd.AddCommand(newProjectListCmd(svc))
	cmd.AddCommand(newProjectAddCmd(svc))
	cmd.AddCommand(newProjectRemoveCmd(svc))
	cmd.AddCommand(newProjectFavoriteCmd(svc))
	cmd.AddCommand(newProjectSetCategoryCmd(svc))
	return cmd
}

func newProjectListCmd(svc **service.Service) *cobra.Command {
	var (
		listAll    bool
		listFilter string
		listJSON   bool
		listFlat   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List projects as a nested tree",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			filter := projects.Filter{
				ShowInactive: listAll || s.Config.ShowInactive,
				Term:         listFilter,
			}

			if listFlat {
				records, err := s.Projects.List(filter)
				if err != nil {
					return err
				}
				if listJSON {
					return outputJSON(records)
				}
				for _, rec := range records {
					fmt.Printf("%-32s %s\n", rec.Label, rec.Path)
				}
				return nil
			}

			nodes, err := s.ProjectTrees(filter)
			if err != nil {
				return err
			}
			if listJSON {
				if nodes == nil {
					nodes = []*models.ProjectTreeNode{}
				}
				return outputJSON(nodes)
			}
			if len(nodes) == 0 {
				fmt.Println("No projects registered")
				return nil
			}
			printTree(nodes, 0)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include inactive projects")
	cmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Substring filter on label or path")
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&listFlat, "flat", false, "Print flat records instead of the tree")
	return cmd
}

func newProjectAddCmd(svc **service.Service) *cobra.Command {
	var (
		addCategory string
		addFavorite bool
		addInactive bool
	)

	cmd := &cobra.Command{
		Use:   "add <label> [path]",
		Short: "Register a project path",
		Long: `Register a project path.

The label may contain slashes to nest the project under folders in the
tree view, e.g. "work/backend/api". The path defaults to the current
directory.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			path := "."
			if len(args) > 1 {
				path = args[1]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			rec := &models.ProjectRecord{
				Label:    args[0],
				Path:     absPath,
				Active:   !addInactive,
				Category: addCategory,
				Favorite: addFavorite,
			}
			if err := s.Projects.Add(rec); err != nil {
				return err
			}
			fmt.Printf("Added project %s -> %s\n", rec.Label, rec.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category id")
	cmd.Flags().BoolVar(&addFavorite, "favorite", false, "Mark as favorite")
	cmd.Flags().BoolVar(&addInactive, "inactive", false, "Register as inactive")
	return cmd
}

func newProjectRemoveCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <label>",
		Short:   "Remove a project from the registry",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := s.Projects.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", args[0])
			return nil
		},
	}
}

func newProjectFavoriteCmd(svc **service.Service) *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:     "favorite <label>",
		Short:   "Mark or unmark a project as favorite",
		Aliases: []string{"fav"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			err := s.Projects.Update(args[0], func(rec *models.ProjectRecord) {
				rec.Favorite = !unset
			})
			if err != nil {
				return err
			}
			if unset {
				fmt.Printf("Unmarked %s\n", args[0])
			} else {
				fmt.Printf("Marked %s as favorite\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unset, "unset", false, "Remove the favorite mark")
	return cmd
}

func newProjectSetCategoryCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "set-category <label> [category-id]",
		Short: "Assign a project to a category (omit the id to clear)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			category := ""
			if len(args) > 1 {
				category = args[1]
			}
			err := s.Projects.Update(args[0], func(rec *models.ProjectRecord) {
				rec.Category = category
			})
			if err != nil {
				return err
			}
			if category == "" {
				fmt.Printf("Cleared category of %s\n", args[0])
			} else {
				fmt.Printf("Assigned %s to %s\n", args[0], category)
			}
			return nil
		},
	}
}
