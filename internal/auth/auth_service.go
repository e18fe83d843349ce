package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	autherrors "go-inventory-api/internal/auth/errors"
	"go-inventory-api/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the result of a successful login: the provider's user info
// plus a locally minted session token.
type Session struct {
	User  UserInfo
	Token string
}

//go:generate mockgen -source=auth_service.go -destination=../mock/auth/gateway_mock.go -package=mock
type Gateway interface {
	Login(ctx context.Context, email, password string) (Session, error)
}

// gateway wraps a single remote sign-in call and classifies its outcome.
// It is stateless across calls and has no side effects beyond the remote
// call: the session flag is the caller's responsibility.
type gateway struct {
	provider IdentityProvider
}

func NewGateway(provider IdentityProvider) Gateway {
	return &gateway{provider: provider}
}

func (g *gateway) Login(ctx context.Context, email, password string) (Session, error) {
	// Empty credentials pass through unchecked; the provider is the
	// source of truth for validation.
	info, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		return Session{}, classifyLoginError(err)
	}

	token, err := generateToken(info.UserID, 24*time.Hour)
	if err != nil {
		return Session{}, autherrors.ErrTokenGenerationFailed
	}

	return Session{User: info, Token: token}, nil
}

// classifyLoginError maps a sign-in failure onto the login taxonomy:
// wrong password, unknown account, or everything else. Single-level
// lookup with a fallback branch; never retried.
func classifyLoginError(err error) error {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return autherrors.ErrLoginUnexpected
	}

	switch normalizeProviderCode(pe.Code) {
	case "WRONG_PASSWORD", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return autherrors.ErrWrongCredentials
	case "USER_NOT_FOUND", "EMAIL_NOT_FOUND":
		return autherrors.ErrAccountNotFound
	default:
		message := pe.Message
		if message == "" {
			message = pe.Code
		}
		return apperror.Wrap(
			pe,
			autherrors.CodeLoginFailed,
			fmt.Sprintf("Login error: %s", message),
			autherrors.ErrLoginUnexpected.HTTPStatus,
		)
	}
}

func normalizeProviderCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(code, "-", "_"))
}

func generateToken(userID string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
