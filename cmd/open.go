package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/pkg/service"
)

func NewOpenCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "open <label>",
		Short: "Open a terminal in a project directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := s.OpenProject(args[0]); err != nil {
				return err
			}
			fmt.Printf("Opened terminal in %s\n", args[0])
			return nil
		},
	}
}
