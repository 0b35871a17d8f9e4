package controller

import (
	"net/http"

	"microblog/web/entity"
	"microblog/web/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsController exposes aggregate counters for the admin dashboard.
type StatsController struct {
	BaseController
	postService *service.PostService
	userService *service.UserService
}

func NewStatsController(g *gin.RouterGroup, db *gorm.DB) *StatsController {
	a := &StatsController{
		postService: service.NewPostService(db),
		userService: service.NewUserService(db),
	}
	a.initRouter(g)
	return a
}

func (a *StatsController) initRouter(g *gin.RouterGroup) {
	g.GET("/stats", a.getStats)
}

func (a *StatsController) getStats(c *gin.Context) {
	postCount, err := a.postService.Count()
	if err != nil {
		jsonFailure(c, err, "failed to fetch stats")
		return
	}
	userCount, err := a.userService.CountUsers()
	if err != nil {
		jsonFailure(c, err, "failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, entity.Stats{
		PostCount: postCount,
		UserCount: userCount,
	})
}
