package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AleksandrTrainich/yatube/pkg/response"
)

type createGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Description string `json:"description"`
}

// CreateGroup registers a new thematic group (administrative).
// @Summary Create group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body createGroupRequest true "group attributes"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /groups/ [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	group, err := h.groups.Create(c.Request.Context(), req.Title, req.Slug, req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, group)
}

// ListGroups returns the whole catalog for navigation.
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} response.Response
// @Router /groups/ [get]
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, groups)
}

// DeleteGroup removes a group; its posts stay, detached (administrative).
// @Summary Delete group
// @Tags groups
// @Param slug path string true "group slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /groups/{slug}/ [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
	if err := h.groups.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, nil)
}
