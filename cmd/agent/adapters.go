package main

import (
	"context"
	"fmt"

	v1 "ambe.com/fieldops/ambe/v1"
	"ambe.com/fieldops/fieldops/model"
)

// attendanceAPI adapts the v1 client to the sync coordinator.
type attendanceAPI struct {
	client *v1.AmbeClient
}

func (a *attendanceAPI) Submit(ctx context.Context, records []model.AttendanceRecord) error {
	resp, err := a.client.Attendance.Sync(ctx, records)
	if err != nil {
		return err
	}
	if !resp.Status {
		return fmt.Errorf("server rejected batch: %v", resp.Error)
	}
	return nil
}

// locationSink adapts the v1 client to the range logger.
type locationSink struct {
	client *v1.AmbeClient
}

func (s *locationSink) Append(ctx context.Context, event model.RangeLogEvent) error {
	return s.client.LocationLogs.Append(ctx, event)
}

// connectivity probes the server before a sync attempt.
type connectivity struct {
	client *v1.AmbeClient
}

func (n *connectivity) Online() bool {
	return n.client.Online()
}
