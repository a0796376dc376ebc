package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/simak-api/internal/handler"
	"github.com/noah-isme/simak-api/internal/middleware"
	"github.com/noah-isme/simak-api/internal/service"
	"github.com/noah-isme/simak-api/pkg/config"
	"github.com/noah-isme/simak-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/simak-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/simak-api/pkg/middleware/requestid"
)

type routes struct {
	auth        *handler.AuthHandler
	students    *handler.StudentHandler
	enrollments *handler.EnrollmentHandler
	courses     *handler.OfferedCourseHandler
	akm         *handler.AkmHandler
	master      *handler.MasterHandler
	metrics     *handler.MetricsHandler
}

type routerDeps struct {
	cfg           *config.Config
	log           *zap.Logger
	metrics       *service.MetricsService
	authenticator middleware.Authenticator
	loginLimiter  middleware.LimitChecker
	handlers      routes
}

func newRouter(d routerDeps) *gin.Engine {
	h := d.handlers
	if d.log == nil {
		d.log = zap.NewNop()
	}

	r := gin.New()
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(d.log))
	r.Use(corsmiddleware.New(d.cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(d.metrics))
	r.Use(middleware.Recovery(d.log))

	r.GET("/health", h.metrics.Health)
	r.GET("/ready", h.metrics.Ready)
	if d.cfg.Metrics.Enabled {
		r.GET("/metrics", h.metrics.Prometheus)
	}
	if d.cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(d.cfg.APIPrefix)

	loginLimit := middleware.RateLimit(d.loginLimiter, "login", d.metrics, d.log)
	api.POST("/auth/login", h.auth.StudentLogin)
	api.POST("/token/login", loginLimit, h.auth.TokenLogin)
	api.POST("/login", loginLimit, h.auth.TokenLogin)

	protected := api.Group("", middleware.Auth(d.authenticator, d.metrics))
	protected.POST("/logout", h.auth.Logout)
	protected.GET("/profile", h.auth.Profile)

	protected.GET("/students", h.students.List)
	protected.GET("/student-krs", h.enrollments.Krs)
	protected.GET("/student-khs", h.enrollments.Khs)
	protected.GET("/offered-course", h.courses.List)
	protected.GET("/akm", h.akm.List)
	protected.GET("/akm/export", h.akm.Export)

	master := protected.Group("/master")
	master.GET("/departments", h.master.Departments)
	master.GET("/program-classes", h.master.ClassPrograms)
	master.GET("/religions", h.master.Religions)
	master.GET("/marital-statuses", h.master.MaritalStatuses)

	return r
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// flushMasterCache drops reference data cached before this process started. Failures are
// logged only.
func flushMasterCache(ctx context.Context, cache cacheInvalidator, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn("master cache flush failed", zap.Error(err))
	}
}
