package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("task-board", 42, time.Hour, "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	cases := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", time.Hour, "secret"},
		{"zero duration", "task-board", 0, "secret"},
		{"empty sign key", "task-board", time.Hour, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tc.issuer, 42, tc.duration, tc.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("task-board", 42, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "task-board")

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("task-board", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "other-key", "task-board")

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("someone-else", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "secret", "task-board")

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("task-board", 42, time.Nanosecond, "secret")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = ValidateAndParseJWTToken(generated.SignedString, "secret", "task-board")

	assert.Error(t, err)
}

