package v1

import (
	"context"
	"encoding/json"
	"fmt"

	"ambe.com/fieldops/ambe/v1/common"
	"ambe.com/fieldops/fieldops/model"
)

// MasterDataDTO bundles the reference data a device needs in one payload.
type MasterDataDTO struct {
	Sites     []model.Site     `json:"sites"`
	Employees []model.Employee `json:"employees"`
}

type MasterDataEndpoint struct {
	transport *Transport
}

// Data fetches sites and employees. Polled by the device when online;
// cached locally between polls.
func (e *MasterDataEndpoint) Data(ctx context.Context, siteID string) (*MasterDataDTO, error) {
	query := map[string]string{}
	if siteID != "" {
		query["siteId"] = siteID
	}

	resp, err := e.transport.Get(ctx, "/api/fieldops/v1.0/data", query)
	if err != nil {
		return nil, err
	}

	var result common.StatusAPIResponse[MasterDataDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	if !result.Status {
		return nil, fmt.Errorf("master data fetch failed: %v", result.Error)
	}

	return &result.Data, nil
}
