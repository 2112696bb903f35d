package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuedAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("secret", 2, FixedClock(issuedAt))

	token, err := issuer.Issue("u1", "a@x.com")
	require.NoError(t, err)
	assert.True(t, token.ExpiresAt.Equal(issuedAt.Add(2*time.Hour)))

	sub, err := issuer.Parse(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuedAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("secret", 1, FixedClock(issuedAt))
	token, err := issuer.Issue("u1", "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		issuer *TokenIssuer
		raw    string
	}{
		{name: "garbage", issuer: issuer, raw: "not-a-jwt"},
		{name: "other secret", issuer: NewTokenIssuer("other", 1, FixedClock(issuedAt)), raw: token.Token},
		{name: "expired", issuer: NewTokenIssuer("secret", 1, FixedClock(issuedAt.Add(3*time.Hour))), raw: token.Token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Parse(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
