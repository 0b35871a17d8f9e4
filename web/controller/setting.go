package controller

import (
	"net/http"

	"microblog/web/entity"
	"microblog/web/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingController handles reading and updating the site settings.
type SettingController struct {
	BaseController
	settingService *service.SettingService
}

func NewSettingController(g *gin.RouterGroup, db *gorm.DB) *SettingController {
	a := &SettingController{
		settingService: service.NewSettingService(db),
	}
	a.initRouter(g)
	return a
}

func (a *SettingController) initRouter(g *gin.RouterGroup) {
	g.GET("/settings", a.getSettings)
	g.POST("/settings", a.updateSettings)
}

func (a *SettingController) getSettings(c *gin.Context) {
	settings, err := a.settingService.GetAllSettings()
	if err != nil {
		jsonFailure(c, err, "failed to fetch site settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (a *SettingController) updateSettings(c *gin.Context) {
	form := &entity.UpdateSettingsForm{}
	if err := c.ShouldBindJSON(form); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.settingService.UpdateSettings(form); err != nil {
		jsonFailure(c, err, "failed to update site settings")
		return
	}
	jsonMsg(c, "Site settings updated successfully")
}
