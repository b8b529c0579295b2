package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var verificationCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// GenerateVerificationCode returns a random 6-digit code, zero padded
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IsValidVerificationCode checks the 6-digit format
func IsValidVerificationCode(code string) bool {
	return verificationCodePattern.MatchString(code)
}

// MaskEmail masks the local part of an email address
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	if len(localPart) <= 2 {
		return email
	}

	return localPart[:2] + strings.Repeat("*", len(localPart)-2) + "@" + parts[1]
}
