// Package cmd implements the CLI commands for plant-telemetry.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "plant-telemetry",
	Short: "Ingest plant sensor readings and drive actuators",
	Long: "A telemetry service for a treatment plant: it accepts sensor readings over HTTP\n" +
		"or MQTT, stores them, evaluates threshold rules, raises alerts, and switches\n" +
		"actuators on when rules fire.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
