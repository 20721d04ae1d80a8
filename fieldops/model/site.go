package model

// Site is a client site with its geofence. Immutable during a capture
// session; supplied by the master-data endpoint.
type Site struct {
	ID        string  `gorm:"primaryKey;column:id" json:"id"`
	Name      string  `gorm:"column:name" json:"name"`
	Address   string  `gorm:"column:address" json:"location,omitempty"`
	Latitude  float64 `gorm:"column:latitude" json:"latitude"`
	Longitude float64 `gorm:"column:longitude" json:"longitude"`
	// GeofenceRadius is in meters and must be positive.
	GeofenceRadius float64 `gorm:"column:geofence_radius" json:"geofenceRadius"`
	Status         string  `gorm:"column:status;type:varchar(20)" json:"status,omitempty"`
}

func (Site) TableName() string {
	return "sites"
}

// Employee belongs to exactly one site. Read-only from the capture core's
// perspective.
type Employee struct {
	ID            string `gorm:"primaryKey;column:id" json:"id"`
	BiometricCode string `gorm:"column:biometric_code" json:"biometricCode"`
	Name          string `gorm:"column:name" json:"name"`
	Role          string `gorm:"column:role" json:"role"`
	SiteID        string `gorm:"column:site_id;index" json:"siteId"`
	PhotoURL      string `gorm:"column:photo_url;type:mediumtext" json:"photoUrl,omitempty"`
	WeeklyOff     string `gorm:"column:weekly_off" json:"weeklyOff,omitempty"`
	Status        string `gorm:"column:status;type:varchar(20)" json:"status,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}
