package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/AleksandrTrainich/yatube/internal/api/middleware"
	"github.com/AleksandrTrainich/yatube/pkg/response"
)

// AddComment attaches a comment to a post and redirects back to the post
// view. Any authenticated identity may comment, the author included.
// @Summary Add comment
// @Tags comments
// @Accept mpfd
// @Param username path string true "author username"
// @Param post_id path int true "post id"
// @Param text formData string true "comment text"
// @Success 302 {string} string "redirect to the post view"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/comment/ [post]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		response.NotFound(c, "not found")
		return
	}
	if _, err := h.comments.Add(c.Request.Context(), middleware.Current(c), id, c.PostForm("text")); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, fmt.Sprintf("/%s/%d/", c.Param("username"), id))
}
