package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-testing"

func TestGenerateTokenPair(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		email   string
		role    string
	}{
		{
			name:    "User token",
			actorID: "U-1a2b3c4d",
			email:   "user@example.com",
			role:    RoleUser,
		},
		{
			name:    "Company vendor token",
			actorID: "CV-1a2b3c4d",
			email:   "vendor@example.com",
			role:    RoleCompanyVendor,
		},
		{
			name:    "Admin token",
			actorID: "admin001",
			email:   "admin@findingbd.com",
			role:    RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := GenerateTokenPair(tt.actorID, tt.email, tt.role, testSecret, 15*time.Minute, 7*24*time.Hour)
			require.NoError(t, err)
			require.NotNil(t, tokens)
			assert.NotEmpty(t, tokens.AccessToken)
			assert.NotEmpty(t, tokens.RefreshToken)

			claims, err := ValidateToken(tokens.AccessToken, testSecret)
			require.NoError(t, err)
			assert.Equal(t, tt.actorID, claims.ActorID)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, tt.role, claims.Role)
		})
	}
}

func TestValidateToken_Invalid(t *testing.T) {
	token, err := GenerateToken("U-1a2b3c4d", "user@example.com", RoleUser, testSecret, 15*time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{
			name:    "Wrong secret",
			token:   token,
			secret:  "different-secret",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Malformed token",
			token:   "not-a-token",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("U-1a2b3c4d", "user@example.com", RoleUser, testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}
