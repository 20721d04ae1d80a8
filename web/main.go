package main

import (
	"context"
	"encoding/base64"
	"log"

	"ambe.com/fieldops/core"
	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/infrastructure/devops"
	"ambe.com/fieldops/web/handlers"
	"ambe.com/fieldops/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := devops.LoadAppConfig(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	secret, err := base64.StdEncoding.DecodeString(cfg.TokenSecret)
	if err != nil {
		log.Fatalf("decode token secret: %v", err)
	}

	dm, err := core.New(cfg.DatabaseDSN, 10)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dm.Close()

	err = dm.Exec(ctx, func(db *gorm.DB) error {
		return db.AutoMigrate(
			&model.Site{},
			&model.Employee{},
			&model.AttendanceRecord{},
			&model.RangeLogEvent{},
		)
	})
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	attendance := &handlers.AttendanceHandler{DB: dm, PhotoBucket: cfg.PhotoBucket}
	locationLogs := &handlers.LocationLogHandler{DB: dm}
	masterData := &handlers.MasterDataHandler{DB: dm}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/fieldops/v1.0")
	protected.Use(middlewares.Authentication(secret))
	{
		protected.POST("/attendance/sync", attendance.Sync)
		protected.GET("/attendance", attendance.Search)
		protected.POST("/location-logs", locationLogs.Append)
		protected.GET("/data", masterData.Data)
		protected.GET("/sites", masterData.Sites)
		protected.GET("/employees", masterData.Employees)
	}

	r.Run(":8090")
}
