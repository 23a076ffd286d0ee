package cryptox

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var lowerHex = regexp.MustCompile(`^[0-9a-f]+$`)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 32},
		{"256-bit token", TokenSize256, 64},
		{"custom size", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)
			require.Regexp(t, lowerHex, token)

			// A second draw must differ.
			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2)
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestMustGenerateToken_Panics(t *testing.T) {
	require.Panics(t, func() {
		MustGenerateToken(0)
	})
}

func TestFingerprintToken(t *testing.T) {
	token := MustGenerateToken(TokenSize256)

	fp := FingerprintToken(token)
	require.Len(t, fp, 64)
	require.Regexp(t, lowerHex, fp)

	// Deterministic, and never the token itself.
	require.Equal(t, fp, FingerprintToken(token))
	require.NotEqual(t, token, fp)
	require.NotEqual(t, fp, FingerprintToken(token+"x"))
}
