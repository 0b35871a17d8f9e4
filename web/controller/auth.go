package controller

import (
	"net/http"

	"microblog/util/common"
	"microblog/web/entity"
	"microblog/web/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController handles login verification and credential changes.
type AuthController struct {
	BaseController
	userService *service.UserService
}

func NewAuthController(g *gin.RouterGroup, db *gorm.DB) *AuthController {
	a := &AuthController{
		userService: service.NewUserService(db),
	}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/auth", a.login)
	g.PUT("/auth/profile", a.updateProfile)
}

// login verifies credentials. The same 401 is returned whether the username
// is unknown or the password is wrong.
func (a *AuthController) login(c *gin.Context) {
	form := &entity.LoginForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := a.userService.Authenticate(form.Username, form.Password); err != nil {
		if common.IsAuthError(err) {
			jsonError(c, http.StatusUnauthorized, err.Error())
		} else {
			jsonFailure(c, err, "failed to authenticate")
		}
		return
	}
	jsonMsg(c, "Login successful")
}

func (a *AuthController) updateProfile(c *gin.Context) {
	form := &entity.UpdateProfileForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	username, err := a.userService.UpdateProfile(form)
	if err != nil {
		jsonFailure(c, err, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Profile updated successfully",
		"username": username,
	})
}
