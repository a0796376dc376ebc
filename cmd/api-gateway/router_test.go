package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/handler"
	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/internal/service"
	"github.com/noah-isme/simak-api/pkg/config"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/ratelimit"
)

type stubAuth struct{}

func (stubAuth) TokenLogin(ctx context.Context, req dto.TokenLoginRequest) (*dto.TokenLoginResponse, error) {
	return &dto.TokenLoginResponse{Token: "1|secret"}, nil
}

func (stubAuth) StudentLogin(ctx context.Context, req dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	return nil, appErrors.ErrInvalidCredentials
}

func (stubAuth) Logout(ctx context.Context, identity *models.Identity) error { return nil }

func (stubAuth) Profile(identity *models.Identity) (*dto.ProfileResponse, error) {
	return &dto.ProfileResponse{ID: identity.User.ID, Username: identity.User.Username}, nil
}

func (stubAuth) Authenticate(ctx context.Context, bearer string) (*models.Identity, error) {
	if bearer != "1|secret" {
		return nil, appErrors.ErrInvalidToken
	}
	return &models.Identity{User: models.APIUser{ID: 1, Username: "siakad"}, TokenID: 1}, nil
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	auth := stubAuth{}
	return newRouter(routerDeps{
		cfg:           cfg,
		metrics:       metrics,
		authenticator: auth,
		loginLimiter:  ratelimit.NewMemory(ratelimit.Rate(1, time.Minute)),
		handlers: routes{
			auth:        handler.NewAuthHandler(auth),
			students:    handler.NewStudentHandler(nil, cfg.Pagination),
			enrollments: handler.NewEnrollmentHandler(nil, cfg.Pagination),
			courses:     handler.NewOfferedCourseHandler(nil, cfg.Pagination),
			akm:         handler.NewAkmHandler(nil, cfg.Pagination),
			master:      handler.NewMasterHandler(nil),
			metrics:     handler.NewMetricsHandler(metrics),
		},
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Env:        config.EnvProduction,
		APIPrefix:  "/api",
		Pagination: config.PaginationConfig{DefaultPerPage: 20, MaxPerPage: 1000},
	}
}

func serve(r *gin.Engine, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t, testConfig())

	for _, path := range []string{"/api/students", "/api/student-krs", "/api/student-khs", "/api/offered-course", "/api/akm", "/api/akm/export", "/api/master/religions"} {
		w := serve(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Contains(t, w.Body.String(), `"success":false`, path)
	}

	w := serve(r, http.MethodGet, "/api/profile", "", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileWithValidToken(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := serve(r, http.MethodGet, "/api/profile", "", "1|secret")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"siakad"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestTokenLoginIsRateLimited(t *testing.T) {
	r := newTestRouter(t, testConfig())

	first := serve(r, http.MethodPost, "/api/token/login", `{"username":"a","password":"b"}`, "")
	require.Equal(t, http.StatusOK, first.Code)

	second := serve(r, http.MethodPost, "/api/login", `{"username":"a","password":"b"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestOptionalEndpoints(t *testing.T) {
	cfg := testConfig()
	r := newTestRouter(t, cfg)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/metrics", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/docs/index.html", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "", "").Code)

	cfg.Metrics.Enabled = true
	r = newTestRouter(t, cfg)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics", "", "").Code)
}

type patternCacheRepo struct {
	patterns []string
	err      error
}

func (r *patternCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("miss")
}

func (r *patternCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (r *patternCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	r.patterns = append(r.patterns, pattern)
	return r.err
}

func TestFlushMasterCacheAtStartup(t *testing.T) {
	repo := &patternCacheRepo{}
	cache := service.NewCacheService(repo, service.NewMetricsService(), time.Minute, nil, true)
	flushMasterCache(context.Background(), service.NewMasterService(nil, cache, nil), zap.NewNop())
	assert.Equal(t, []string{service.MasterCachePattern}, repo.patterns)

	repo.err = errors.New("redis down")
	flushMasterCache(context.Background(), service.NewMasterService(nil, cache, nil), zap.NewNop())
	assert.Len(t, repo.patterns, 2)

	disabled := service.NewCacheService(nil, nil, time.Minute, nil, false)
	flushMasterCache(context.Background(), service.NewMasterService(nil, disabled, nil), zap.NewNop())
}
