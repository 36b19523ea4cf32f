package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AleksandrTrainich/yatube/internal/api/middleware"
	"github.com/AleksandrTrainich/yatube/internal/service"
	"github.com/AleksandrTrainich/yatube/pkg/response"
)

// NewPost creates a post from the submitted form (multipart so an image
// can ride along) and redirects to the global feed, like the original form
// flow does.
// @Summary Create post
// @Tags posts
// @Accept mpfd
// @Param text formData string true "post text"
// @Param group formData int false "group id"
// @Param image formData file false "image attachment"
// @Success 302 {string} string "redirect to /"
// @Failure 400 {object} response.Response
// @Router /new/ [post]
func (h *Handler) NewPost(c *gin.Context) {
	input := service.CreatePostInput{Text: c.PostForm("text")}
	if raw := c.PostForm("group"); raw != "" {
		gid, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid group")
			return
		}
		id := uint(gid)
		input.GroupID = &id
	}
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			response.InternalError(c, err)
			return
		}
		defer src.Close()
		input.Image = &service.ImageUpload{Filename: file.Filename, Data: src}
	}
	if _, err := h.posts.Create(c.Request.Context(), middleware.Current(c), input); err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, "/")
}

// PostView renders one post with its comments.
// @Summary Post page
// @Tags posts
// @Param username path string true "author username"
// @Param post_id path int true "post id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/ [get]
func (h *Handler) PostView(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		response.NotFound(c, "not found")
		return
	}
	username := c.Param("username")
	post, count, err := h.posts.Get(c.Request.Context(), username, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	comments, err := h.comments.ListForPost(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, view("post", gin.H{
		"post":     post,
		"author":   post.Author,
		"username": username,
		"count":    count,
		"comments": comments,
		"form":     gin.H{"text": ""},
	}))
}

// EditPost replaces a post's text and group. Only the author may edit;
// anyone else is sent back to the read view with nothing changed.
// @Summary Edit post
// @Tags posts
// @Accept mpfd
// @Param username path string true "author username"
// @Param post_id path int true "post id"
// @Param text formData string true "post text"
// @Param group formData int false "group id"
// @Success 302 {string} string "redirect to the post view"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/edit/ [post]
func (h *Handler) EditPost(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		response.NotFound(c, "not found")
		return
	}
	username := c.Param("username")
	input := service.EditPostInput{Text: c.PostForm("text")}
	if raw := c.PostForm("group"); raw != "" {
		gid, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid group")
			return
		}
		gidU := uint(gid)
		input.GroupID = &gidU
	}
	_, err := h.posts.Edit(c.Request.Context(), middleware.Current(c), id, input)
	if errors.Is(err, service.ErrForbidden) {
		// non-author: back to the unchanged post, not an error page
		response.Redirect(c, fmt.Sprintf("/%s/%d/", username, id))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Redirect(c, fmt.Sprintf("/%s/%d/", username, id))
}

// DeletePost removes the author's post and its comments.
// @Summary Delete post
// @Tags posts
// @Param username path string true "author username"
// @Param post_id path int true "post id"
// @Success 204 {string} string "deleted"
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/ [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		response.NotFound(c, "not found")
		return
	}
	err := h.posts.Delete(c.Request.Context(), middleware.Current(c), id)
	if errors.Is(err, service.ErrForbidden) {
		response.Redirect(c, fmt.Sprintf("/%s/%d/", c.Param("username"), id))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
