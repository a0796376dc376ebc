package service

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/validation"
)

const (
	tokenSecretLength = 40
	tokenAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	expiredAtLayout   = "2006-01-02 15:04:05"
)

type tokenRepository interface {
	Create(ctx context.Context, token *models.PersonalAccessToken) error
	FindByID(ctx context.Context, id int64) (*models.PersonalAccessToken, error)
	FindByHash(ctx context.Context, hash string) (*models.PersonalAccessToken, error)
	TouchLastUsed(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context, tokenableID int64, now time.Time) error
}

type apiUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.APIUser, error)
	FindByID(ctx context.Context, id int64) (*models.APIUser, error)
}

type studentCredentialRepository interface {
	FindCredentialByNim(ctx context.Context, nim string) (*models.StudentCredential, error)
}

// AuthConfig defines configuration for token issuance.
type AuthConfig struct {
	TokenTTL  time.Duration
	TokenName string
}

// AuthService issues, resolves and revokes personal access tokens and checks student credentials.
type AuthService struct {
	tokens    tokenRepository
	users     apiUserRepository
	students  studentCredentialRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(tokens tokenRepository, users apiUserRepository, students studentCredentialRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = 24 * time.Hour
	}
	if config.TokenName == "" {
		config.TokenName = "api-token"
	}
	return &AuthService{
		tokens:    tokens,
		users:     users,
		students:  students,
		validator: validate,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// TokenLogin verifies API client credentials and issues a token valid for the configured TTL.
func (s *AuthService) TokenLogin(ctx context.Context, req dto.TokenLoginRequest) (*dto.TokenLoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Translate(err)
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalidTokenCredentials()
		}
		return nil, internalError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, invalidTokenCredentials()
	}

	now := s.now()
	if err := s.tokens.DeleteExpired(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to prune expired tokens", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	secret, err := randomSecret(tokenSecretLength)
	if err != nil {
		return nil, internalError(fmt.Errorf("generate token: %w", err))
	}
	expiresAt := now.Add(s.config.TokenTTL)
	token := &models.PersonalAccessToken{
		TokenableID: user.ID,
		Name:        s.config.TokenName,
		Token:       hashSecret(secret),
		ExpiresAt:   &expiresAt,
		CreatedAt:   now,
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, internalError(err)
	}

	s.logger.Info("token issued", zap.Int64("user_id", user.ID), zap.Int64("token_id", token.ID))
	return &dto.TokenLoginResponse{
		Token:     strconv.FormatInt(token.ID, 10) + "|" + secret,
		ExpiredAt: expiresAt.Format(expiredAtLayout),
	}, nil
}

// Authenticate resolves a bearer token to its identity. Expired tokens are deleted.
func (s *AuthService) Authenticate(ctx context.Context, bearer string) (*models.Identity, error) {
	bearer = strings.TrimSpace(bearer)
	if bearer == "" {
		return nil, appErrors.ErrUnauthenticated
	}

	token, err := s.findToken(ctx, bearer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidToken
		}
		return nil, internalError(err)
	}

	now := s.now()
	if token.Expired(now) {
		if err := s.tokens.Delete(ctx, token.ID); err != nil {
			s.logger.Warn("failed to delete expired token", zap.Int64("token_id", token.ID), zap.Error(err))
		}
		return nil, appErrors.ErrTokenExpired
	}

	user, err := s.users.FindByID(ctx, token.TokenableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidToken
		}
		return nil, internalError(err)
	}

	if err := s.tokens.TouchLastUsed(ctx, token.ID, now); err != nil {
		s.logger.Warn("failed to update token last_used_at", zap.Int64("token_id", token.ID), zap.Error(err))
	}

	return &models.Identity{User: *user, TokenID: token.ID, ExpiresAt: token.ExpiresAt}, nil
}

// findToken accepts both "<id>|<secret>" and a bare secret.
func (s *AuthService) findToken(ctx context.Context, bearer string) (*models.PersonalAccessToken, error) {
	idPart, secret, found := strings.Cut(bearer, "|")
	if !found {
		return s.tokens.FindByHash(ctx, hashSecret(bearer))
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || secret == "" {
		return nil, sql.ErrNoRows
	}
	token, err := s.tokens.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(token.Token), []byte(hashSecret(secret))) != 1 {
		return nil, sql.ErrNoRows
	}
	return token, nil
}

// Logout deletes the token that authenticated the request.
func (s *AuthService) Logout(ctx context.Context, identity *models.Identity) error {
	if identity == nil {
		return appErrors.ErrUnauthenticated
	}
	if err := s.tokens.Delete(ctx, identity.TokenID); err != nil {
		return internalError(err)
	}
	return nil
}

// Profile describes the authenticated API client.
func (s *AuthService) Profile(identity *models.Identity) (*dto.ProfileResponse, error) {
	if identity == nil {
		return nil, appErrors.ErrUnauthenticated
	}
	resp := &dto.ProfileResponse{
		ID:       identity.User.ID,
		Username: identity.User.Username,
		Name:     identity.User.Name,
		TokenID:  identity.TokenID,
	}
	if identity.ExpiresAt != nil {
		formatted := identity.ExpiresAt.Format(expiredAtLayout)
		resp.ExpiresAt = &formatted
	}
	return resp, nil
}

// StudentLogin checks a NIM and password against the legacy MD5 digest stored for the student.
func (s *AuthService) StudentLogin(ctx context.Context, req dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Translate(err)
	}

	cred, err := s.students.FindCredentialByNim(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, internalError(err)
	}

	sum := md5.Sum([]byte(req.Password))
	digest := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(strings.ToLower(cred.PasswordHash)), []byte(digest)) != 1 {
		return nil, appErrors.ErrInvalidCredentials
	}

	return &dto.StudentLoginResponse{
		StudentID:      cred.StudentID,
		Nim:            cred.Nim,
		FullName:       cred.FullName,
		RegisterNumber: cred.RegisterNumber,
	}, nil
}

func invalidTokenCredentials() error {
	return appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid Token credentials")
}

func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func randomSecret(n int) (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tokenAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
