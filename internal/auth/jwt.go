// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/connectvault/connectvault/internal/config"
	"github.com/connectvault/connectvault/internal/core"
	"github.com/connectvault/connectvault/internal/middleware"
)

const generatedKeyLength = 32

type TokenManager struct {
	signingKey jwk.Key
	config     config.AuthConfig
}

// NewTokenManager builds the HS256 issuer/verifier around the process-wide
// secret. With no configured secret a fresh key is generated, so every token
// issued before a restart fails verification afterwards. That is the
// intended trade-off for secretless development setups, and it is loud in
// the logs rather than silent.
func NewTokenManager(cfg config.AuthConfig) (*TokenManager, error) {
	secret := []byte(cfg.SecretKey)

	if len(secret) == 0 {
		generated, err := core.GenerateSecureToken(generatedKeyLength)
		if err != nil {
			return nil, fmt.Errorf("generate signing key: %w", err)
		}
		secret = []byte(generated)

		slog.Warn("no SECRET_KEY configured, generated an ephemeral signing key",
			"consequence", "all issued tokens become invalid on restart",
		)
	}

	signingKey, err := jwk.Import(secret)
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := signingKey.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &TokenManager{
		signingKey: signingKey,
		config:     cfg,
	}, nil
}

// GenerateSecretKey produces a random base64 secret suitable for SECRET_KEY.
func GenerateSecretKey() (string, error) {
	token, err := core.GenerateSecureToken(generatedKeyLength)
	if err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

func (m *TokenManager) CreateAccessToken(username, role string) (string, error) {
	return m.createToken(username, role, m.config.AccessTokenExpire)
}

func (m *TokenManager) createToken(
	username, role string,
	ttl time.Duration,
) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(username).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		NotBefore(now).
		Claim("role", role).
		Claim("type", "access").
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.signingKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

func (m *TokenManager) VerifyAccessToken(
	ctx context.Context,
	tokenString string,
) (*middleware.AccessTokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.signingKey),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var tokenType string
	if err := token.Get("type", &tokenType); err != nil ||
		tokenType != "access" {
		return nil, fmt.Errorf(
			"verify token: invalid token type: %w",
			core.ErrTokenInvalid,
		)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var roleStr string
	if err := token.Get("role", &roleStr); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.AccessTokenClaims{
		Username: subject,
		Role:     roleStr,
	}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
