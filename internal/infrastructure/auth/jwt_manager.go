package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTManager issues and verifies the HS256 bearer tokens handed out by
// GET /jwt. The token carries only the caller's email; the role is looked
// up from storage on every protected request, so a token never needs to
// be reissued after a role change.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

type emailClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTManager(secret string, expirySeconds int64) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (m *JWTManager) Generate(email string) (string, error) {
	now := time.Now()
	claims := emailClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify returns the email claim of a valid token.
func (m *JWTManager) Verify(tokenString string) (string, error) {
	claims := &emailClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Email == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.Email, nil
}
