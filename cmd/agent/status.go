package main

import (
	"fmt"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show buffer and connectivity state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAgentConfig(configPath)
		if err != nil {
			return err
		}

		s, err := cfg.openStore()
		if err != nil {
			return err
		}

		online := "offline"
		if cfg.client().Online() {
			online = "online"
		}

		records := s.All()
		locked := len(utils.Filter(records, func(r model.AttendanceRecord) bool {
			return r.IsLocked
		}))

		fmt.Printf("site:      %s (%s)\n", cfg.Site.Name, cfg.Site.ID)
		fmt.Printf("server:    %s (%s)\n", cfg.BaseURL, online)
		fmt.Printf("buffered:  %d record(s), %d locked\n", len(records), locked)
		fmt.Printf("unsynced:  %d record(s)\n", s.UnsyncedCount())
		if warn := s.LoadWarning(); warn != nil {
			fmt.Printf("warning:   buffer was reset after unreadable state: %v\n", warn)
		}
		return nil
	},
}
