package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeLength(t *testing.T) {
	for _, length := range []int{6, 12, 16} {
		code, err := GenerateCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestGenerateCodeAlphabet(t *testing.T) {
	code, err := GenerateCode(64)
	require.NoError(t, err)
	for _, c := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateOTPFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{4}$`)
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.True(t, pattern.MatchString(otp), "malformed OTP %q", otp)
	}
}
