package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

const verificationCodeTTL = 5 * time.Minute

// VerificationCode represents a verification code with expiration
type VerificationCode struct {
	Code      string
	ExpiresAt time.Time
}

// In-memory storage for pending email verification codes. Codes are
// short-lived and never persisted.
var (
	emailVerificationCodes = make(map[string]VerificationCode)
	verificationMutex      sync.Mutex
)

// GenerateVerificationCode generates a random 6-digit code
func GenerateVerificationCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// StoreEmailVerificationCode stores the verification code for an email
func StoreEmailVerificationCode(email, code string) {
	verificationMutex.Lock()
	defer verificationMutex.Unlock()

	emailVerificationCodes[email] = VerificationCode{
		Code:      code,
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}
}

// VerifyEmailCode verifies the email verification code. A successful
// verification consumes the code.
func VerifyEmailCode(email, code string) bool {
	verificationMutex.Lock()
	defer verificationMutex.Unlock()

	stored, exists := emailVerificationCodes[email]
	if !exists {
		return false
	}
	if time.Now().After(stored.ExpiresAt) {
		delete(emailVerificationCodes, email)
		return false
	}
	if stored.Code != code {
		return false
	}

	delete(emailVerificationCodes, email)
	return true
}
