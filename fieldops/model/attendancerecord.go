package model

import "time"

type AttendanceStatus string

const (
	StatusPresent        AttendanceStatus = "P"
	StatusAbsent         AttendanceStatus = "A"
	StatusWeeklyOff      AttendanceStatus = "W/O"
	StatusHalfDay        AttendanceStatus = "HD"
	StatusLeave          AttendanceStatus = "Leave"
	StatusPublicHoliday  AttendanceStatus = "PH"
	StatusWeekOffPresent AttendanceStatus = "WOP"
)

// GeoPoint is a raw position fix. A missing fix is represented by a nil
// *GeoPoint, never by a zero value.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AttendanceRecord is one employee's attendance for one calendar day.
// (employee_id, date) is the natural key inside the device buffer; ID is the
// identity used to match records during sync confirmation.
type AttendanceRecord struct {
	ID         string           `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID string           `gorm:"column:employee_id;index:idx_employee_date;not null" json:"employeeId"`
	SiteID     string           `gorm:"column:site_id" json:"siteId,omitempty"`
	Date       string           `gorm:"column:date;index:idx_employee_date;not null" json:"date"` // yyyy-MM-dd, site-local
	Status     AttendanceStatus `gorm:"column:status;type:varchar(10);not null" json:"status"`

	CheckInTime    string    `gorm:"column:check_in_time" json:"checkInTime,omitempty"`
	PhotoURL       string    `gorm:"column:photo_url;type:mediumtext" json:"photoUrl,omitempty"`
	Location       *GeoPoint `gorm:"embedded;embeddedPrefix:loc_" json:"location,omitempty"`
	SupervisorName string    `gorm:"column:supervisor_name" json:"supervisorName,omitempty"`
	DeviceID       string    `gorm:"column:device_id" json:"deviceId,omitempty"`

	IsSynced bool `gorm:"column:is_synced;not null" json:"isSynced"`
	IsLocked bool `gorm:"column:is_locked;not null" json:"isLocked"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// Clone returns a deep copy. Sync snapshots and store reads hand out copies
// so callers can never mutate buffered records in place.
func (r AttendanceRecord) Clone() AttendanceRecord {
	out := r
	if r.Location != nil {
		loc := *r.Location
		out.Location = &loc
	}
	return out
}
