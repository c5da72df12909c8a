package auth

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the validated content of an access token.
type TokenClaims struct {
	UserID    kernel.UserID
	UserType  kernel.UserType
	Email     kernel.Email
	ExpiresAt time.Time
}

// TokenService issues and validates the platform's JWT tokens.
type TokenService struct {
	secretKey       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	issuer          string
}

// NewTokenService creates a JWT token service.
func NewTokenService(secretKey string, accessTTL, refreshTTL time.Duration, issuer string) *TokenService {
	return &TokenService{
		secretKey:       []byte(secretKey),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
		issuer:          issuer,
	}
}

// AccessTokenTTL reports the configured access token lifetime.
func (s *TokenService) AccessTokenTTL() time.Duration {
	return s.accessTokenTTL
}

type accessClaims struct {
	UserType string `json:"user_type"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a short-lived token carrying the caller identity.
func (s *TokenService) GenerateAccessToken(userID kernel.UserID, userType kernel.UserType, email kernel.Email) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserType: string(userType),
		Email:    string(email),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return signed, nil
}

// GenerateRefreshToken issues a long-lived token carrying only the subject.
func (s *TokenService) GenerateRefreshToken(userID kernel.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign refresh token", errx.TypeInternal)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies an access token.
func (s *TokenService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken().WithCause(err)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		UserID:    kernel.UserID(claims.Subject),
		UserType:  kernel.UserType(claims.UserType),
		Email:     kernel.Email(claims.Email),
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateRefreshToken parses a refresh token and returns its subject.
func (s *TokenService) ValidateRefreshToken(tokenString string) (kernel.UserID, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken().WithCause(err)
	}
	return kernel.UserID(claims.Subject), nil
}
