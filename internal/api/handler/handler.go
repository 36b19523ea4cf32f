package handler

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AleksandrTrainich/yatube/internal/service"
	"github.com/AleksandrTrainich/yatube/pkg/response"
)

// Handler exposes the domain operations as view contexts for the rendering
// collaborator: each read endpoint answers with a named view plus the
// context mapping the template needs, each mutation answers with the
// redirect the original flow performs.
type Handler struct {
	feeds    service.FeedService
	posts    service.PostService
	comments service.CommentService
	groups   service.GroupService
	rels     service.RelationshipService
	loginURL string
}

func NewHandler(
	feeds service.FeedService,
	posts service.PostService,
	comments service.CommentService,
	groups service.GroupService,
	rels service.RelationshipService,
	loginURL string,
) *Handler {
	return &Handler{
		feeds:    feeds,
		posts:    posts,
		comments: comments,
		groups:   groups,
		rels:     rels,
		loginURL: loginURL,
	}
}

func view(name string, context gin.H) gin.H {
	return gin.H{"view": name, "context": context}
}

// pageParam reads ?page=; malformed input degrades to the first page, it
// never errors.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func postIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// loginRedirect sends Anonymous to the login flow with a return path.
func (h *Handler) loginRedirect(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	response.Redirect(c, h.loginURL+"?next="+next)
}

// fail maps the domain error taxonomy to the boundary behavior. Forbidden
// is not handled here: the callers that can see it redirect to the post
// view instead.
func (h *Handler) fail(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(c, ve.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, service.ErrAuthenticationRequired):
		h.loginRedirect(c)
	default:
		response.InternalError(c, err)
	}
}
