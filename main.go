package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/devdeck/devdeck/cmd"
	"github.com/devdeck/devdeck/cmd/config"
	"github.com/devdeck/devdeck/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := &cobra.Command{
		Use:   "devdeck",
		Short: "Organize projects and command sheets from the terminal",
		Long: `devdeck keeps a registry of your projects (nested labels,
categories, favorites) and a set of command sheets: indentation-based
text documents holding named groups of notes and shell commands.`,
		SilenceUsage: true,
	}

	config.AddGlobalFlags(rootCmd)
	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		var err error
		svc, err = config.InitService()
		return err
	}
	rootCmd.PersistentPostRun = func(c *cobra.Command, args []string) {
		if svc != nil {
			_ = svc.Close()
		}
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewSheetCmd(&svc))
	rootCmd.AddCommand(cmd.NewSearchCmd(&svc))
	rootCmd.AddCommand(cmd.NewProjectCmd(&svc))
	rootCmd.AddCommand(cmd.NewTreeCmd(&svc))
	rootCmd.AddCommand(cmd.NewCategoryCmd(&svc))
	rootCmd.AddCommand(cmd.NewOpenCmd(&svc))
	rootCmd.AddCommand(cmd.NewStatusCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
