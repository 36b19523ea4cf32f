package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AleksandrTrainich/yatube/internal/api/middleware"
	"github.com/AleksandrTrainich/yatube/pkg/response"
)

// Profile renders an author's page. The following flag and followingCount
// are viewer-relative and recomputed for every request.
// @Summary Author profile feed
// @Tags profile
// @Param username path string true "author username"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{username}/ [get]
func (h *Handler) Profile(c *gin.Context) {
	username := c.Param("username")
	feed, err := h.feeds.Profile(c.Request.Context(), middleware.Current(c), username, pageParam(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	ctx := gin.H{
		"page":          feed.Page,
		"paginator":     feed.Page.Paginator,
		"author":        feed.Author,
		"username":      username,
		"count":         feed.PostCount,
		"followerCount": feed.FollowerCount,
		"following":     feed.Following,
	}
	if feed.FollowingCount != nil {
		ctx["followingCount"] = *feed.FollowingCount
	}
	response.Success(c, view("profile", ctx))
}
