package main

import (
	"fmt"

	"ambe.com/fieldops/fieldops/capture"
	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/utils"
	"github.com/spf13/cobra"
)

var validStatuses = map[string]model.AttendanceStatus{
	"P":     model.StatusPresent,
	"A":     model.StatusAbsent,
	"W/O":   model.StatusWeeklyOff,
	"HD":    model.StatusHalfDay,
	"Leave": model.StatusLeave,
	"PH":    model.StatusPublicHoliday,
	"WOP":   model.StatusWeekOffPresent,
}

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Set an attendance status without a photo capture",
	Long: `mark toggles an employee's status directly (absent, weekly off, leave).
Marking an employee who already has a photo check-in keeps the photo, so
undoing an accidental toggle loses nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, _ := cmd.Flags().GetString("employee")
		date, _ := cmd.Flags().GetString("date")
		statusStr, _ := cmd.Flags().GetString("status")

		status, ok := validStatuses[statusStr]
		if !ok {
			return fmt.Errorf("unknown status %q (want P, A, W/O, HD, Leave, PH or WOP)", statusStr)
		}

		cfg, err := loadAgentConfig(configPath)
		if err != nil {
			return err
		}

		s, err := cfg.openStore()
		if err != nil {
			return err
		}

		workflow := capture.NewWorkflow(s, nil, nil, capture.Config{
			Site:           cfg.site(),
			SupervisorName: cfg.Supervisor.Name,
			DeviceID:       cfg.DeviceID,
		})

		if err := workflow.SetStatus(employeeID, date, status); err != nil {
			return err
		}

		fmt.Printf("marked %s as %s for %s\n", employeeID, status, date)
		return nil
	},
}

func init() {
	markCmd.Flags().String("employee", "", "employee id")
	markCmd.Flags().String("date", utils.Today(), "attendance day (yyyy-MM-dd)")
	markCmd.Flags().String("status", "", "attendance status")
	markCmd.MarkFlagRequired("employee")
	markCmd.MarkFlagRequired("status")
}
