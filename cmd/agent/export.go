package main

import (
	"fmt"

	"ambe.com/fieldops/fieldops/export"
	"ambe.com/fieldops/fieldops/model"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the local attendance register to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		cfg, err := loadAgentConfig(configPath)
		if err != nil {
			return err
		}

		s, err := cfg.openStore()
		if err != nil {
			return err
		}

		// Employee names come from the server when reachable. Offline, the
		// register still exports with ids only.
		var employees []model.Employee
		client := cfg.client()
		if client.Online() {
			if data, err := client.MasterData.Data(cmd.Context(), cfg.Site.ID); err == nil {
				employees = data.Employees
			}
		}

		records := s.All()
		if err := export.WriteRegister(out, cfg.site(), employees, records); err != nil {
			return err
		}

		fmt.Printf("wrote %d record(s) to %s\n", len(records), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "attendance-register.xlsx", "output workbook path")
}
