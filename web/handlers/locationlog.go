package handlers

import (
	"net/http"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/utils"
	"ambe.com/fieldops/web/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationLogHandler struct {
	DB Database
}

// Append stores one range-transition event. The log is append-only; there
// is no update or delete surface.
func (h *LocationLogHandler) Append(c *gin.Context) {
	var event model.RangeLogEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if event.SiteID == "" || event.Status == "" || event.Timestamp == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("siteId, status and timestamp are required"))
		return
	}
	if event.Status != model.RangeStatusIn && event.Status != model.RangeStatusOut {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("unknown range status"))
		return
	}
	if _, err := utils.ParseISOTime(event.Timestamp); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("timestamp is not a valid time"))
		return
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	err := h.DB.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Create(&event).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"id": event.ID}))
}
