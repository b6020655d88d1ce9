package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the two-day token lifetime clients already rely on.
const DefaultTTL = 48 * time.Hour

// Claims is the identity snapshot embedded in every issued token. Tokens are
// stateless: claims reflect the user at issue time and are never refreshed.
type Claims struct {
	UserID      string `json:"user_id"`
	ChannelName string `json:"channel_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LogoKey     string `json:"logo_key"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
}

func NewService(secretKey string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       DefaultTTL,
	}
}

func (s *Service) GenerateToken(userID, channelName, email, phone, logoKey string) (string, error) {
	return s.GenerateTokenWithTTL(userID, channelName, email, phone, logoKey, s.ttl)
}

func (s *Service) GenerateTokenWithTTL(userID, channelName, email, phone, logoKey string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      userID,
		ChannelName: channelName,
		Email:       email,
		Phone:       phone,
		LogoKey:     logoKey,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
