package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWT_SubjectIsPreserved(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	tokenA, err := j.Generate(ctx, "alice")
	assert.NoError(t, err)
	tokenB, err := j.Generate(ctx, "bob")
	assert.NoError(t, err)

	claimsA, err := j.GetClaims(ctx, tokenA)
	assert.NoError(t, err)
	claimsB, err := j.GetClaims(ctx, tokenB)
	assert.NoError(t, err)

	// A token issued for one user must never resolve to another
	assert.Equal(t, "alice", claimsA.Username)
	assert.Equal(t, "bob", claimsB.Username)
	assert.NotEqual(t, claimsA.Username, claimsB.Username)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail with the expiry error
	err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	// Totally invalid string
	err := j.Validate(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongKey(t *testing.T) {
	ctx := context.Background()

	issuer := New(WithSecretKey("key-one"), WithExpiration(time.Minute))
	verifier := New(WithSecretKey("key-two"), WithExpiration(time.Minute))

	token, err := issuer.Generate(ctx, "alice")
	assert.NoError(t, err)

	err = verifier.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"MissingToken", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
