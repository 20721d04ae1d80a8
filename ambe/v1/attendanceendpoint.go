package v1

import (
	"context"
	"encoding/json"
	"fmt"

	"ambe.com/fieldops/ambe/v1/common"
	"ambe.com/fieldops/fieldops/model"
)

// SyncSummaryDTO is the server's accounting of one batch submission.
// Duplicates are records the server had already accepted (dedup by id);
// a retried batch reports them here instead of failing.
type SyncSummaryDTO struct {
	Accepted   int `json:"accepted"`
	Duplicates int `json:"duplicates"`
}

type AttendanceEndpoint struct {
	transport *Transport
}

// Sync submits one batch of attendance records. The same batch content is
// safe to resubmit.
func (e *AttendanceEndpoint) Sync(ctx context.Context, records []model.AttendanceRecord) (*common.StatusAPIResponse[SyncSummaryDTO], error) {
	resp, err := e.transport.Post(ctx, "/api/fieldops/v1.0/attendance/sync", records, nil)
	if err != nil {
		return nil, err
	}

	var result common.StatusAPIResponse[SyncSummaryDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Search fetches records for one site and day (admin views).
func (e *AttendanceEndpoint) Search(ctx context.Context, siteID, date string) ([]model.AttendanceRecord, error) {
	resp, err := e.transport.Get(ctx, "/api/fieldops/v1.0/attendance", map[string]string{
		"siteId": siteID,
		"date":   date,
	})
	if err != nil {
		return nil, err
	}

	var result common.StatusAPIResponse[[]model.AttendanceRecord]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	if !result.Status {
		return nil, fmt.Errorf("attendance search failed: %v", result.Error)
	}

	return result.Data, nil
}
