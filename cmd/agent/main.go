package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fieldops-agent",
	Short: "Supervisor device agent for on-site attendance capture",
	Long: `fieldops-agent runs on a supervisor's device at a client site. It keeps
an offline-first attendance buffer, captures check-ins against the site
geofence, and syncs accepted records to the central fieldops service.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "path to agent.yaml")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
