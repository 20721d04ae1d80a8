package main

import (
	"fmt"

	"ambe.com/fieldops/fieldops/syncer"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upload the unsynced buffer to the central service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAgentConfig(configPath)
		if err != nil {
			return err
		}

		s, err := cfg.openStore()
		if err != nil {
			return err
		}
		if warn := s.LoadWarning(); warn != nil {
			fmt.Printf("warning: buffer reset after unreadable state: %v\n", warn)
		}

		client := cfg.client()
		coordinator := syncer.New(s, &attendanceAPI{client: client}, &connectivity{client: client})

		result := coordinator.Sync(cmd.Context())
		fmt.Println(result.String())

		if result.Err != nil {
			return result.Err
		}
		return nil
	},
}
