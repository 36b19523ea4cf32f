package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AleksandrTrainich/yatube/config"
	_ "github.com/AleksandrTrainich/yatube/docs"
	"github.com/AleksandrTrainich/yatube/internal/api"
	"github.com/AleksandrTrainich/yatube/internal/api/handler"
	"github.com/AleksandrTrainich/yatube/internal/media"
	"github.com/AleksandrTrainich/yatube/internal/repository"
	"github.com/AleksandrTrainich/yatube/internal/service"
	"github.com/AleksandrTrainich/yatube/pkg/database"
	"github.com/AleksandrTrainich/yatube/pkg/logger"
	"github.com/AleksandrTrainich/yatube/pkg/telemetry"
)

// @title Yatube API
// @version 1.0
// @description Content and social-graph service: posts, groups, comments, follows and feeds.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	withSentry := cfg.Sentry.DSN != ""
	if withSentry {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Error("sentry init failed", zap.Error(err))
			withSentry = false
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := telemetry.Init(ctx, "yatube", cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		logger.Error("telemetry init failed", zap.Error(err))
	} else {
		defer func() { _ = shutdownTracing(context.Background()) }()
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("database init failed", zap.Error(err))
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	feedCache := service.NewGlobalFeedCache(rdb, cfg.Feed.CacheTTL)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	followRepo := repository.NewFollowRepository(db)

	mediaStore := media.NewDiskStore(cfg.Media.Dir)

	postSvc := service.NewPostService(postRepo, groupRepo, mediaStore, feedCache)
	commentSvc := service.NewCommentService(commentRepo, postRepo)
	groupSvc := service.NewGroupService(groupRepo)
	relSvc := service.NewRelationshipService(followRepo, userRepo)
	feedSvc := service.NewFeedService(postRepo, groupRepo, userRepo, followRepo, feedCache)

	h := handler.NewHandler(feedSvc, postSvc, commentSvc, groupSvc, relSvc, cfg.Auth.LoginURL)
	router := api.NewRouter(cfg, h, userRepo, withSentry)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
