package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/ratelimit"
	"github.com/noah-isme/simak-api/pkg/response"
)

// LimitChecker counts one attempt for key. *limiter.Limiter satisfies it.
type LimitChecker interface {
	Get(ctx context.Context, key string) (limiter.Context, error)
}

// RateLimitRecorder counts rejected requests per route.
type RateLimitRecorder interface {
	RecordRateLimited(route string)
}

// RateLimit allows the checker's budget of requests per client IP and window on the wrapped
// routes. Counter failures let the request through.
func RateLimit(checker LimitChecker, name string, recorder RateLimitRecorder, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		res, err := checker.Get(c.Request.Context(), name+":"+c.ClientIP())
		if err != nil {
			log.Warn("rate limit check failed", zap.String("route", name), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		if res.Reached {
			c.Header("Retry-After", strconv.Itoa(ratelimit.RetryAfter(res.Reset, time.Now())))
			if recorder != nil {
				recorder.RecordRateLimited(name)
			}
			response.Abort(c, appErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
