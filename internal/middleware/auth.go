package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/logger"
	"github.com/noah-isme/simak-api/pkg/response"
)

// ContextIdentityKey is the gin context key storing the authenticated caller.
const ContextIdentityKey = "currentIdentity"

type identityContextKey struct{}

// Authenticator resolves a bearer token to the caller it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, bearer string) (*models.Identity, error)
}

// AuthFailureRecorder counts rejected tokens.
type AuthFailureRecorder interface {
	RecordAuthFailure(reason string)
}

// Auth protects routes by requiring a valid personal access token.
func Auth(auth Authenticator, recorder AuthFailureRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authenticate(c.Request.Context(), BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			if recorder != nil {
				recorder.RecordAuthFailure(strings.ToLower(appErrors.FromError(err).Code))
			}
			response.Abort(c, err)
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Set(logger.SubjectKey, identity.User.Username)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value, or "" when absent.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext returns the caller stored by Auth.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(*models.Identity)
	return identity, ok && identity != nil
}

// CurrentIdentity returns the caller stored on the gin context.
func CurrentIdentity(c *gin.Context) (*models.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return IdentityFromContext(c.Request.Context())
	}
	identity, ok := value.(*models.Identity)
	return identity, ok && identity != nil
}
