package substitution_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/substitution"
)

const identity = "abcdefghijklmnopqrstuvwxyz"

func TestShift(t *testing.T) {
	tests := []struct {
		in   string
		s    int
		want string
	}{
		{"abc", 1, "bcd"},
		{"xyz", 3, "abc"},
		{"hello", 13, "uryyb"},
		{"hello", -1, "gdkkn"},
		{"hello", 26, "hello"},
		{"hello", 27 * 3, "khoor"},
		{"Hello, World!", 3, "Hhoor, Wruog!"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, substitution.Shift(tt.in, tt.s), "Shift(%q, %d)", tt.in, tt.s)
	}
}

func TestUnshiftRoundTrip(t *testing.T) {
	msg := "the quick brown fox, 🦊 jumps over the lazy dog"
	for s := -60; s <= 60; s++ {
		require.Equal(t, msg, substitution.Unshift(substitution.Shift(msg, s), s), "s=%d", s)
	}
}

func randomKey(r *rand.Rand) string {
	b := []byte(identity)
	r.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}

func TestSubstituteRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	msg := "pack my box with five dozen liquor jugs. 123"
	for i := 0; i < 50; i++ {
		key := randomKey(r)
		enc, err := substitution.Substitute(msg, key)
		require.NoError(t, err)
		dec, err := substitution.Unsubstitute(enc, key)
		require.NoError(t, err)
		require.Equal(t, msg, dec)

		inv, err := substitution.Invert(key)
		require.NoError(t, err)
		twice, err := substitution.Invert(inv)
		require.NoError(t, err)
		require.Equal(t, key, twice)
	}
}

func TestSubstituteMatchesShift(t *testing.T) {
	key := substitution.Shift(identity, 7)
	got, err := substitution.Substitute("attack at dawn", key)
	require.NoError(t, err)
	assert.Equal(t, substitution.Shift("attack at dawn", 7), got)

	inv, err := substitution.Invert(identity)
	require.NoError(t, err)
	assert.Equal(t, identity, inv)
}

func TestInvalidKeys(t *testing.T) {
	for _, key := range []string{
		"",
		"abc",
		"abcdefghijklmnopqrstuvwxya",
		"Abcdefghijklmnopqrstuvwxyz",
		"abcdefghijklmnopqrstuvwxy!",
		"abcdefghijklmnopqrstuvwxyzz",
	} {
		_, err := substitution.Substitute("x", key)
		assert.ErrorIs(t, err, basiccrypto.ErrInvalidParameter, "key %q", key)
		_, err = substitution.Invert(key)
		assert.ErrorIs(t, err, basiccrypto.ErrInvalidParameter, "key %q", key)
		_, err = substitution.Unsubstitute("x", key)
		assert.ErrorIs(t, err, basiccrypto.ErrInvalidParameter, "key %q", key)
	}
}
