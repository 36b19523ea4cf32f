package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AleksandrTrainich/yatube/internal/api/middleware"
	"github.com/AleksandrTrainich/yatube/pkg/response"
)

// Follow adds the profile's author to the viewer's follow graph and
// returns to the profile. Following yourself or someone you already follow
// changes nothing and is not an error.
// @Summary Follow an author
// @Tags relations
// @Param username path string true "author username"
// @Success 302 {string} string "redirect to the profile"
// @Failure 404 {object} response.Response
// @Router /{username}/follow/ [post]
func (h *Handler) Follow(c *gin.Context) {
	username := c.Param("username")
	if err := h.rels.Follow(c.Request.Context(), middleware.Current(c), username); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/"+username+"/")
}

// Unfollow removes the edge if it exists and returns to the profile.
// @Summary Unfollow an author
// @Tags relations
// @Param username path string true "author username"
// @Success 302 {string} string "redirect to the profile"
// @Failure 404 {object} response.Response
// @Router /{username}/unfollow/ [post]
func (h *Handler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	if err := h.rels.Unfollow(c.Request.Context(), middleware.Current(c), username); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/"+username+"/")
}
