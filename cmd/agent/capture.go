package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ambe.com/fieldops/fieldops/capture"
	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/utils"
	"github.com/spf13/cobra"
)

// fileCamera serves a pre-taken photo from disk as a data URL. The on-device
// UI talks to the real camera; the agent CLI covers kiosk and recovery use.
type fileCamera struct {
	path string
}

func (c *fileCamera) Capture(ctx context.Context) (string, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", capture.ErrCameraUnavailable, err)
	}

	mime := "image/jpeg"
	if strings.EqualFold(filepath.Ext(c.path), ".png") {
		mime = "image/png"
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// flagPosition is a fixed position fix supplied on the command line.
type flagPosition struct {
	point model.GeoPoint
	ok    bool
}

func (p *flagPosition) Current() (model.GeoPoint, bool) {
	return p.point, p.ok
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a photo check-in for one employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, _ := cmd.Flags().GetString("employee")
		date, _ := cmd.Flags().GetString("date")
		photoPath, _ := cmd.Flags().GetString("photo")
		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")
		hasFix := cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng")

		cfg, err := loadAgentConfig(configPath)
		if err != nil {
			return err
		}

		s, err := cfg.openStore()
		if err != nil {
			return err
		}

		workflow := capture.NewWorkflow(s,
			&fileCamera{path: photoPath},
			&flagPosition{point: model.GeoPoint{Lat: lat, Lng: lng}, ok: hasFix},
			capture.Config{
				Site:                cfg.site(),
				SupervisorName:      cfg.Supervisor.Name,
				DeviceID:            cfg.DeviceID,
				GeofenceGateEnabled: cfg.GeofenceGate,
			})

		if err := workflow.Begin(cmd.Context(), employeeID, date); err != nil {
			return err
		}
		if err := workflow.Confirm(employeeID); err != nil {
			return err
		}

		fmt.Printf("captured %s for %s (%d unsynced)\n", employeeID, date, s.UnsyncedCount())
		return nil
	},
}

func init() {
	captureCmd.Flags().String("employee", "", "employee id")
	captureCmd.Flags().String("date", utils.Today(), "attendance day (yyyy-MM-dd)")
	captureCmd.Flags().String("photo", "", "path to the check-in photo")
	captureCmd.Flags().Float64("lat", 0, "device latitude")
	captureCmd.Flags().Float64("lng", 0, "device longitude")
	captureCmd.MarkFlagRequired("employee")
	captureCmd.MarkFlagRequired("photo")
}
