package model

import "time"

type RangeStatus string

const (
	RangeStatusIn  RangeStatus = "In Range"
	RangeStatusOut RangeStatus = "Out of Range"
)

// RangeLogEvent is one in/out-of-geofence transition observed on a
// supervisor device. Append-only; never mutated after emission.
type RangeLogEvent struct {
	ID             string      `gorm:"primaryKey;column:id" json:"id,omitempty"`
	SupervisorID   string      `gorm:"column:supervisor_id" json:"supervisorId"`
	SupervisorName string      `gorm:"column:supervisor_name" json:"supervisorName"`
	SiteID         string      `gorm:"column:site_id;index" json:"siteId"`
	Status         RangeStatus `gorm:"column:status;type:varchar(20);not null" json:"status"`
	Latitude       float64     `gorm:"column:latitude" json:"latitude"`
	Longitude      float64     `gorm:"column:longitude" json:"longitude"`
	Timestamp      string      `gorm:"column:timestamp" json:"timestamp"` // RFC3339
	DeviceID       string      `gorm:"column:device_id" json:"deviceId"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
}

func (RangeLogEvent) TableName() string {
	return "location_logs"
}
