package cmd

import (
	"github.com/spf13/cobra"

	commonconfig "github.com/Nach0t/siss/internal/common/config"
	"github.com/Nach0t/siss/internal/configuration"
)

const customConfigLocation string = "config"

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "siss",
		SilenceUsage: true,
		Short:        "Generates frames at a fixed rate and persists them through a bounded queue",
	}

	cmd.PersistentFlags().StringSlice(
		customConfigLocation,
		[]string{},
		"Fully qualified path to application configuration file (for multiple config files repeat this arg or separate paths with commas)")

	cmd.AddCommand(
		runCmd(),
	)

	return cmd
}

func loadConfig(cmd *cobra.Command) (configuration.RunConfig, error) {
	var config configuration.RunConfig
	userSpecifiedConfigs, err := cmd.Flags().GetStringSlice(customConfigLocation)
	if err != nil {
		return config, err
	}
	err = commonconfig.LoadConfig(&config, "./config/siss", userSpecifiedConfigs)
	return config, err
}
