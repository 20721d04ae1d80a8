package handlers

import (
	"log"
	"net/http"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SyncSummary struct {
	Accepted   int `json:"accepted"`
	Duplicates int `json:"duplicates"`
}

type AttendanceHandler struct {
	DB          Database
	PhotoBucket string
}

// Sync ingests one batch of attendance records from a device. Records are
// deduplicated by id, so a device retrying a batch it never got the response
// for cannot create double entries.
func (h *AttendanceHandler) Sync(c *gin.Context) {
	var records []model.AttendanceRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	for i := range records {
		r := &records[i]
		if r.ID == "" || r.EmployeeID == "" || r.Date == "" || r.Status == "" {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("every record needs id, employeeId, date and status"))
			return
		}
		r.IsSynced = true
		r.IsLocked = true
	}

	if h.PhotoBucket != "" {
		if err := offloadPhotos(c.Request.Context(), h.PhotoBucket, records); err != nil {
			// Photos stay inline when the offload fails. The record itself
			// still lands.
			log.Printf("photo offload: %v", err)
		}
	}

	summary := SyncSummary{}
	err := h.DB.Exec(c.Request.Context(), func(db *gorm.DB) error {
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&records)
		if result.Error != nil {
			return result.Error
		}

		summary.Accepted = int(result.RowsAffected)
		summary.Duplicates = len(records) - summary.Accepted
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(summary))
}

type attendanceSearchQuery struct {
	SiteID string          `form:"siteId" binding:"required"`
	Date   common.DateOnly `form:"date" time_format:"2006-01-02" binding:"required"`
}

// Search returns the accepted records for one site and day.
func (h *AttendanceHandler) Search(c *gin.Context) {
	var query attendanceSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var records []model.AttendanceRecord
	err := h.DB.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.
			Where("site_id = ? AND date = ?", query.SiteID, query.Date.String()).
			Order("employee_id").
			Find(&records).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(records))
}
