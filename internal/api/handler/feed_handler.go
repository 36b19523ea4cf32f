package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AleksandrTrainich/yatube/internal/api/middleware"
	"github.com/AleksandrTrainich/yatube/pkg/response"
)

// Index renders the global feed.
// @Summary Global feed
// @Tags feed
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} response.Response
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	page, err := h.feeds.Global(c.Request.Context(), pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, view("index", gin.H{
		"page":      page,
		"paginator": page.Paginator,
	}))
}

// GroupPosts renders one group's feed.
// @Summary Group feed
// @Tags feed
// @Param slug path string true "group slug"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /group/{slug}/ [get]
func (h *Handler) GroupPosts(c *gin.Context) {
	feed, err := h.feeds.Group(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, view("group", gin.H{
		"group":     feed.Group,
		"page":      feed.Page,
		"paginator": feed.Page.Paginator,
	}))
}

// FollowIndex renders posts by the authors the viewer follows.
// @Summary Follower feed
// @Tags feed
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} response.Response
// @Failure 302 {string} string "login redirect for anonymous"
// @Router /follow/ [get]
func (h *Handler) FollowIndex(c *gin.Context) {
	page, err := h.feeds.Following(c.Request.Context(), middleware.Current(c), pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, view("follow", gin.H{
		"page":      page,
		"paginator": page.Paginator,
	}))
}
