package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewTokenIssuer(secret string, expiryHours int, clock Clock) *TokenIssuer {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(expiryHours) * time.Hour,
		clock:  clock,
	}
}

// Issue signs an HS256 token whose subject is userID.
func (ti *TokenIssuer) Issue(userID, email string) (AccessToken, error) {
	now := ti.clock.Now()
	exp := now.Add(ti.ttl)

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign token: %w", err)
	}

	return AccessToken{Token: signed, ExpiresAt: exp}, nil
}

// Parse validates raw and returns the subject it was issued for.
func (ti *TokenIssuer) Parse(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return ti.secret, nil
	}, jwt.WithTimeFunc(ti.clock.Now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
