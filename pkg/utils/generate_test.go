package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingReference(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-\d{13,}-[A-HJ-NP-Z2-9]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()
		assert.Regexp(t, pattern, ref)
		seen[ref] = true
	}
	// Millisecond timestamp plus random suffix; collisions in a tight loop
	// are possible but a single run must not produce only one value.
	assert.Greater(t, len(seen), 1)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{"empty uses default", "", 7, 7},
		{"valid value", "42", 7, 42},
		{"garbage uses default", "abc", 7, 7},
		{"zero uses default", "0", 7, 7},
		{"negative uses default", "-3", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.value, tt.def))
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct-horse", hash))
	assert.False(t, CheckPasswordHash("wrong-horse", hash))
}

func TestAccessTokenTamperedSignature(t *testing.T) {
	token, _, err := GenerateAccessToken("secret-a", 1, GenerateUUID(), "a@example.edu", "A", "member")
	require.NoError(t, err)

	_, err = ParseAccessToken("secret-b", token)
	assert.Error(t, err)
}
