package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/pkg/projects"
	"github.com/devdeck/devdeck/pkg/service"
)

func NewStatusCmd(svc **service.Service) *cobra.Command {
	var (
		statusAll  bool
		statusJSON bool
	)

	cmd := &cobra.Command{
		Use:   "status [label]",
		Short: "Show git status for registered projects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			records, err := s.Projects.List(projects.Filter{
				ShowInactive: statusAll || s.Config.ShowInactive,
			})
			if err != nil {
				return err
			}

			type row struct {
				Label  string `json:"label"`
				Path   string `json:"path"`
				IsRepo bool   `json:"is_repo"`
				Branch string `json:"branch,omitempty"`
				Dirty  bool   `json:"dirty,omitempty"`
			}

			rows := []row{}
			for _, rec := range records {
				if len(args) > 0 && rec.Label != args[0] {
					continue
				}
				st := s.ProjectStatus(rec.Path)
				rows = append(rows, row{
					Label:  rec.Label,
					Path:   rec.Path,
					IsRepo: st.IsRepo,
					Branch: st.Branch,
					Dirty:  st.Dirty,
				})
			}

			if len(args) > 0 && len(rows) == 0 {
				return fmt.Errorf("project not found: %s", args[0])
			}

			if statusJSON {
				return outputJSON(rows)
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("PROJECT", "BRANCH", "STATE")
			for _, r := range rows {
				state := "-"
				branch := "-"
				if r.IsRepo {
					branch = r.Branch
					if r.Dirty {
						state = "dirty"
					} else {
						state = "clean"
					}
				}
				tbl.AddRow(r.Label, branch, state)
			}
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&statusAll, "all", "a", false, "Include inactive projects")
	cmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	return cmd
}
