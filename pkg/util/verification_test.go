package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	re := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 10; i++ {
		code, err := GenerateVerificationCode()
		require.NoError(t, err)
		assert.Regexp(t, re, code)
	}
}

func TestVerifyEmailCode(t *testing.T) {
	email := "verify@example.com"
	code, err := GenerateVerificationCode()
	require.NoError(t, err)

	StoreEmailVerificationCode(email, code)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	assert.False(t, VerifyEmailCode(email, wrong), "wrong code must not verify")
	assert.True(t, VerifyEmailCode(email, code))
	assert.False(t, VerifyEmailCode(email, code), "code must be consumed after use")
	assert.False(t, VerifyEmailCode("other@example.com", code), "unknown email must not verify")
}
