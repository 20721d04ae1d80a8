package main

import (
	"log"
	"os"

	"ambe.com/fieldops/fieldops/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seeds a demo site with a handful of employees for local development.
func main() {
	dsn := os.Getenv("DSN") // "root:development@tcp(localhost:3306)/fieldops?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Site{},
		&model.Employee{},
		&model.AttendanceRecord{},
		&model.RangeLogEvent{},
	)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	site := model.Site{
		ID:             "site-mumbai-01",
		Name:           "Andheri Depot",
		Address:        "Andheri East, Mumbai",
		Latitude:       19.0760,
		Longitude:      72.8777,
		GeofenceRadius: 200,
		Status:         "active",
	}

	employees := []model.Employee{
		{ID: "emp-001", BiometricCode: "B001", Name: "Ramesh Kumar", Role: "Security Guard", SiteID: site.ID, WeeklyOff: "Sunday", Status: "active"},
		{ID: "emp-002", BiometricCode: "B002", Name: "Sunita Devi", Role: "Housekeeping", SiteID: site.ID, WeeklyOff: "Monday", Status: "active"},
		{ID: "emp-003", BiometricCode: "B003", Name: "Arjun Singh", Role: "Security Guard", SiteID: site.ID, WeeklyOff: "Tuesday", Status: "active"},
	}

	if err := db.Save(&site).Error; err != nil {
		log.Fatalf("seed site: %v", err)
	}
	if err := db.Save(&employees).Error; err != nil {
		log.Fatalf("seed employees: %v", err)
	}

	log.Printf("seeded site %s with %d employees", site.ID, len(employees))
}
