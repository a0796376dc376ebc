package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/simak-api/api/swagger"
	"github.com/noah-isme/simak-api/internal/handler"
	"github.com/noah-isme/simak-api/internal/repository"
	"github.com/noah-isme/simak-api/internal/service"
	"github.com/noah-isme/simak-api/pkg/cache"
	"github.com/noah-isme/simak-api/pkg/config"
	"github.com/noah-isme/simak-api/pkg/database"
	"github.com/noah-isme/simak-api/pkg/logger"
	"github.com/noah-isme/simak-api/pkg/ratelimit"
	"github.com/noah-isme/simak-api/pkg/validation"
)

// @title SIMAK API
// @version 1.0.0
// @description Read-only academic records API: students, KRS, KHS, offered courses, AKM and reference data.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const redisKeyPrefix = "simak:"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	// rdb stays a nil interface when Redis is off so consumers fall back to memory.
	var rdb redis.Cmdable
	redisClient, err := cache.NewRedis(cfg.Redis)
	switch {
	case err != nil:
		logr.Warn("redis unavailable, using in-process fallbacks", zap.Error(err))
	case redisClient != nil:
		rdb = redisClient
		defer redisClient.Close()
	}

	metrics := service.NewMetricsService()
	querier := repository.NewQuerier(db, cfg.Database.Driver, metrics)

	studentRepo := repository.NewStudentRepository(querier)
	enrollmentRepo := repository.NewEnrollmentRepository(querier)
	akmRepo := repository.NewAkmRepository(querier)
	offeredCourseRepo := repository.NewOfferedCourseRepository(querier)
	masterRepo := repository.NewMasterRepository(querier)
	tokenRepo := repository.NewTokenRepository(querier)
	apiUserRepo := repository.NewAPIUserRepository(querier)

	var cacheRepo service.CacheRepository
	if rdb != nil {
		cacheRepo = repository.NewCacheRepository(rdb, redisKeyPrefix)
	}

	loginRate := ratelimit.Rate(cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)
	loginLimiter := ratelimit.NewMemory(loginRate)
	if redisClient != nil {
		shared, err := ratelimit.NewRedis(redisClient, loginRate, redisKeyPrefix+"ratelimit")
		if err != nil {
			logr.Warn("redis rate limiter unavailable, counting in process", zap.Error(err))
		} else {
			loginLimiter = shared
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.MasterTTL, logr, cfg.Cache.MasterEnabled)

	authSvc := service.NewAuthService(tokenRepo, apiUserRepo, studentRepo, validation.New(), logr, service.AuthConfig{TokenTTL: cfg.Token.TTL})
	studentSvc := service.NewStudentService(studentRepo, logr)
	enrollmentSvc := service.NewEnrollmentService(studentRepo, enrollmentRepo, logr)
	akmSvc := service.NewAkmService(studentRepo, akmRepo, logr)
	offeredCourseSvc := service.NewOfferedCourseService(offeredCourseRepo, logr)
	masterSvc := service.NewMasterService(masterRepo, cacheSvc, logr)
	flushMasterCache(context.Background(), masterSvc, logr)

	checks := []handler.Check{{Name: "database", Ping: querier.Ping}}
	if rdb != nil {
		checks = append(checks, handler.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	router := newRouter(routerDeps{
		cfg:           cfg,
		log:           logr,
		metrics:       metrics,
		authenticator: authSvc,
		loginLimiter:  loginLimiter,
		handlers: routes{
			auth:        handler.NewAuthHandler(authSvc),
			students:    handler.NewStudentHandler(studentSvc, cfg.Pagination),
			enrollments: handler.NewEnrollmentHandler(enrollmentSvc, cfg.Pagination),
			courses:     handler.NewOfferedCourseHandler(offeredCourseSvc, cfg.Pagination),
			akm:         handler.NewAkmHandler(akmSvc, cfg.Pagination),
			master:      handler.NewMasterHandler(masterSvc),
			metrics:     handler.NewMetricsHandler(metrics, checks...),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "driver", cfg.Database.Driver, "redis", rdb != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
