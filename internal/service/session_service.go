package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"promptpilot/internal/config"
	"promptpilot/internal/domain"
)

// SessionClaims represents the JWT claims for an anonymous browser session.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID `json:"session_id"`
}

// SessionToken holds the signed session token and its expiry.
type SessionToken struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionService issues and validates anonymous session tokens. Sessions
// carry no identity; they only scope stored runs and custom document types.
type SessionService interface {
	IssueToken() (*SessionToken, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

type sessionService struct {
	cfg config.SessionConfig
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(cfg config.SessionConfig) SessionService {
	return &sessionService{cfg: cfg}
}

func (s *sessionService) IssueToken() (*SessionToken, error) {
	sessionID := uuid.New()
	now := time.Now()
	expiry := now.Add(s.cfg.Expiry)

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	return &SessionToken{
		SessionID: sessionID,
		Token:     tokenString,
		ExpiresAt: expiry,
	}, nil
}

func (s *sessionService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid || claims.SessionID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
