package api

import (
	"regexp"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AleksandrTrainich/yatube/config"
	"github.com/AleksandrTrainich/yatube/internal/api/handler"
	"github.com/AleksandrTrainich/yatube/internal/api/middleware"
	"github.com/AleksandrTrainich/yatube/internal/repository"
)

var slugRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// NewRouter assembles the gin engine: ambient middleware first, then the
// URL map mirroring the original site layout.
func NewRouter(cfg *config.Config, h *handler.Handler, users repository.UserRepository, withSentry bool) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if withSentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(otelgin.Middleware("yatube"))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
	r.Use(middleware.Identity(cfg.Auth.JWTSecret, users))

	requireAuth := middleware.RequireAuth(cfg.Auth.LoginURL)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", h.Index)
	r.GET("/group/:slug/", h.GroupPosts)
	r.POST("/new/", requireAuth, h.NewPost)
	r.GET("/follow/", requireAuth, h.FollowIndex)

	r.GET("/groups/", h.ListGroups)
	r.POST("/groups/", requireAuth, h.CreateGroup)
	r.DELETE("/groups/:slug/", requireAuth, h.DeleteGroup)

	r.GET("/:username/", h.Profile)
	r.POST("/:username/follow/", requireAuth, h.Follow)
	r.POST("/:username/unfollow/", requireAuth, h.Unfollow)
	r.GET("/:username/:post_id/", h.PostView)
	r.DELETE("/:username/:post_id/", requireAuth, h.DeletePost)
	r.POST("/:username/:post_id/edit/", requireAuth, h.EditPost)
	r.POST("/:username/:post_id/comment/", requireAuth, h.AddComment)

	return r
}
