package controller

import (
	"net/http"
	"strconv"

	"microblog/web/entity"
	"microblog/web/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PostController handles the post feed endpoints. Listing is gated by the
// visibility policy; create and delete are not gated at this boundary, which
// mirrors the documented contract.
type PostController struct {
	BaseController
	postService *service.PostService
}

func NewPostController(g *gin.RouterGroup, db *gorm.DB) *PostController {
	a := &PostController{
		postService: service.NewPostService(db),
	}
	a.initRouter(g)
	return a
}

func (a *PostController) initRouter(g *gin.RouterGroup) {
	g.GET("/posts", a.getPosts)
	g.POST("/posts", a.createPost)
	g.DELETE("/posts", a.deletePost)
	g.GET("/posts/count", a.getPostCount)
}

// parsePageParam parses an optional non-negative pagination parameter.
func parsePageParam(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (a *PostController) getPosts(c *gin.Context) {
	limit, ok := parsePageParam(c, "_limit")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid pagination parameters")
		return
	}
	page, ok := parsePageParam(c, "_page")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	posts, err := a.postService.ListVisible(isAdminClaim(c), limit, page)
	if err != nil {
		jsonFailure(c, err, "failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (a *PostController) createPost(c *gin.Context) {
	form := &entity.CreatePostForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonError(c, http.StatusBadRequest, "content is required")
		return
	}
	post, err := a.postService.Create(form.Content)
	if err != nil {
		jsonFailure(c, err, "failed to create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (a *PostController) deletePost(c *gin.Context) {
	form := &entity.DeletePostForm{}
	if err := c.ShouldBind(form); err != nil || form.Id == "" {
		jsonError(c, http.StatusBadRequest, "post id is required")
		return
	}
	if err := a.postService.Delete(form.Id); err != nil {
		jsonFailure(c, err, "failed to delete post")
		return
	}
	jsonMsg(c, "Post deleted successfully")
}

func (a *PostController) getPostCount(c *gin.Context) {
	count, err := a.postService.Count()
	if err != nil {
		jsonFailure(c, err, "failed to fetch post count")
		return
	}
	c.JSON(http.StatusOK, entity.Count{Count: count})
}
