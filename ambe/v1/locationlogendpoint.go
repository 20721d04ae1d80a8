package v1

import (
	"context"
	"encoding/json"
	"fmt"

	"ambe.com/fieldops/ambe/v1/common"
	"ambe.com/fieldops/fieldops/model"
)

type LocationLogEndpoint struct {
	transport *Transport
}

// Append sends one range-transition event. Fire-and-forget from the
// caller's perspective; the device never retries a failed append.
func (e *LocationLogEndpoint) Append(ctx context.Context, event model.RangeLogEvent) error {
	resp, err := e.transport.Post(ctx, "/api/fieldops/v1.0/location-logs", event, nil)
	if err != nil {
		return err
	}

	var result common.StatusAPIResponse[struct{}]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return err
	}
	if !result.Status {
		return fmt.Errorf("location log append failed: %v", result.Error)
	}
	return nil
}
