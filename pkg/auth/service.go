package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

const (
	// CapabilityManageOptions is required to change the navigation settings.
	CapabilityManageOptions = "manage_options"
	// TokenExpiry is how long JWT tokens are valid.
	TokenExpiry = 12 * time.Hour
)

// JWTClaims represents the claims in a JWT token. The subject is the user ID.
type JWTClaims struct {
	Roles        []string `json:"roles"`
	Capabilities []string `json:"capabilities"`
	jwt.RegisteredClaims
}

// User returns the viewer the token was issued for.
func (c *JWTClaims) User() visibility.User {
	roles := c.Roles
	if roles == nil {
		roles = []string{}
	}
	return visibility.User{ID: c.Subject, Roles: roles}
}

// HasCapability reports whether the token grants capability.
func (c *JWTClaims) HasCapability(capability string) bool {
	for _, cp := range c.Capabilities {
		if cp == capability {
			return true
		}
	}
	return false
}

// Service signs and validates tokens. Users live in the host application, so
// there is no credential check here: whoever holds the secret mints tokens.
type Service struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewService creates a new auth service.
func NewService(jwtSecret string) *Service {
	return &Service{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// GenerateToken creates a new JWT token for the user.
func (s *Service) GenerateToken(user visibility.User, capabilities ...string) (string, error) {
	now := s.now()
	claims := JWTClaims{
		Roles:        user.Roles,
		Capabilities: capabilities,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken validates a JWT token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
