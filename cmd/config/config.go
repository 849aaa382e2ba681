package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devdeck/devdeck/pkg/service"
)

var cfgFile string

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "devdeck")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DEVDECK")

	// Set defaults
	home, _ := homedir.Dir()
	viper.SetDefault("data_dir", filepath.Join(home, ".local", "share", "devdeck"))
	viper.SetDefault("terminal", "")
	viper.SetDefault("show_inactive", false)

	if err := viper.ReadInConfig(); err == nil {
		// Do not print this in normal operation, it's noisy.
		// fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// InitService builds the service from the effective configuration.
func InitService() (*service.Service, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel) // Keep it quiet unless there are issues.

	dataDir, err := homedir.Expand(viper.GetString("data_dir"))
	if err != nil {
		return nil, err
	}

	cfg := &service.Config{
		DataDir:      dataDir,
		Terminal:     viper.GetString("terminal"),
		ShowInactive: viper.GetBool("show_inactive"),
	}

	return service.New(cfg, logger)
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/devdeck/config.yaml)")
}
