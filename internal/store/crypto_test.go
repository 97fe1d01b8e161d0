package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestNewTokenSealer_KeyLength(t *testing.T) {
	t.Parallel()

	_, err := NewTokenSealer([]byte("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 32")

	s, err := NewTokenSealer(testKey(1))
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestTokenSealer_SealOpen(t *testing.T) {
	t.Parallel()

	s, err := NewTokenSealer(testKey(7))
	require.NoError(t, err)

	sealed, err := s.Seal("v^1.1#i^1#access")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "access")

	again, err := s.Seal("v^1.1#i^1#access")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per seal")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "v^1.1#i^1#access", plain)
}

func TestTokenSealer_Passthrough(t *testing.T) {
	t.Parallel()

	var nilSealer *TokenSealer

	out, err := nilSealer.Seal("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", out)

	out, err = nilSealer.Open("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", out)

	s, err := NewTokenSealer(testKey(2))
	require.NoError(t, err)

	out, err = s.Seal("")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = s.Open("legacy-unencrypted")
	require.NoError(t, err)
	assert.Equal(t, "legacy-unencrypted", out)
}

func TestTokenSealer_OpenErrors(t *testing.T) {
	t.Parallel()

	s1, err := NewTokenSealer(testKey(1))
	require.NoError(t, err)
	s2, err := NewTokenSealer(testKey(2))
	require.NoError(t, err)

	sealed, err := s1.Seal("secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		sealer  *TokenSealer
		stored  string
		wantErr string
	}{
		{name: "wrong key", sealer: s2, stored: sealed, wantErr: "decrypting token"},
		{name: "no key configured", sealer: nil, stored: sealed, wantErr: "no encryption key"},
		{name: "bad base64", sealer: s1, stored: sealedPrefix + "!!!", wantErr: "decoding sealed token"},
		{name: "too short", sealer: s1, stored: sealedPrefix + "AAAA", wantErr: "too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.sealer.Open(tt.stored)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
