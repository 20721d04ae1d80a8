package handlers

import (
	"net/http"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MasterData struct {
	Sites     []model.Site     `json:"sites"`
	Employees []model.Employee `json:"employees"`
}

type MasterDataHandler struct {
	DB Database
}

// Data bundles sites and employees into one payload so a device can refresh
// its local cache with a single round trip. siteId narrows it to one site.
func (h *MasterDataHandler) Data(c *gin.Context) {
	siteID := c.Query("siteId")

	var data MasterData
	err := h.DB.Exec(c.Request.Context(), func(db *gorm.DB) error {
		sites := db.Model(&model.Site{})
		employees := db.Model(&model.Employee{})
		if siteID != "" {
			sites = sites.Where("id = ?", siteID)
			employees = employees.Where("site_id = ?", siteID)
		}

		if err := sites.Find(&data.Sites).Error; err != nil {
			return err
		}
		return employees.Order("name").Find(&data.Employees).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// Sites lists all sites (admin view).
func (h *MasterDataHandler) Sites(c *gin.Context) {
	var sites []model.Site
	err := h.DB.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Order("name").Find(&sites).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(sites))
}

// Employees lists employees, optionally narrowed to one site.
func (h *MasterDataHandler) Employees(c *gin.Context) {
	var employees []model.Employee
	err := h.DB.Exec(c.Request.Context(), func(db *gorm.DB) error {
		q := db.Order("name")
		if siteID := c.Query("siteId"); siteID != "" {
			q = q.Where("site_id = ?", siteID)
		}
		return q.Find(&employees).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(employees))
}
