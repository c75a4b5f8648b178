package affine_test

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/affine"
)

func TestSolveKeysRecoversExampleKey(t *testing.T) {
	keys, err := affine.SolveKeys(
		affine.KnownPair{Plain: big.NewInt(1685022522), Cipher: big.NewInt(4115223155)},
		affine.KnownPair{Plain: big.NewInt(552640400), Cipher: big.NewInt(1183960961)},
		4,
	)
	require.NoError(t, err)
	require.Len(t, keys, 2)

	var found bool
	for _, k := range keys {
		assert.Equal(t, uint(1), k.A.Bit(0), "multiplier must be odd")
		if k.String() == "(123456789, 987654321)" {
			found = true
		}
	}
	assert.True(t, found, "keys: %v", keys)
}

func TestSolveKeysInconsistentPairs(t *testing.T) {
	// Same plaintext, different ciphertext.
	keys, err := affine.SolveKeys(
		affine.KnownPair{Plain: big.NewInt(5), Cipher: big.NewInt(1)},
		affine.KnownPair{Plain: big.NewInt(5), Cipher: big.NewInt(2)},
		1,
	)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSolveKeysTooManyCandidates(t *testing.T) {
	_, err := affine.SolveKeys(
		affine.KnownPair{Plain: big.NewInt(5), Cipher: big.NewInt(1)},
		affine.KnownPair{Plain: big.NewInt(5), Cipher: big.NewInt(1)},
		4,
	)
	require.ErrorIs(t, err, basiccrypto.ErrInvalidParameter)

	_, err = affine.SolveKeys(affine.KnownPair{}, affine.KnownPair{}, 4)
	require.ErrorIs(t, err, basiccrypto.ErrInvalidParameter)
}

func TestCrackTwoBlockCrib(t *testing.T) {
	ciphertext := ints(
		27193, 11409, 29220, 42817, 42686, 21599, 6855, 11409, 26311, 3195, 43681,
		27174, 43207, 42534, 8849, 29220, 13177, 34095, 30445, 23666, 37054, 57325,
		11409, 43444, 42686, 15393, 62984, 35217, 62663, 2076, 33169, 54765, 54054,
		64341, 9737, 3985, 62037, 27326, 27904, 16785, 29220, 43954,
	)
	got, err := affine.Crack(context.Background(), ciphertext, 2, affine.CrackOptions{Crib: "The "})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "(24557, 44529)", got[0].Key.String())
	assert.Equal(t, "The 🔐 affine encryption is 🚨 vulnerable to a 📖 known plaintext attack. 💥", got[0].Plaintext)
}

func TestCrackGuessTail(t *testing.T) {
	ciphertext := ints(
		2881562576, 369203058, 73504835, 1526929104, 2259664109, 402991056,
		422734829, 3748341712, 1688763471, 1447275245, 679140419, 2053553236,
		39497061, 1068689747, 340791909, 301430236, 4281633534, 371419236,
		144142198, 595585892, 1471070223, 2492642319, 4168374799, 3080192835,
		2803641633, 2847978818, 2889054554, 2449609623, 333624642, 1327538857,
		1231008783, 3288193056, 1240948649, 978641056, 304161744, 614863717,
		1842205847, 4256050721, 1236027199, 3158610823, 430884691, 113709925,
		177367294, 2319310642, 2675349195, 227891588, 4112117936,
	)

	// One crib block alone cannot pin the key.
	_, err := affine.Crack(context.Background(), ciphertext, 4, affine.CrackOptions{Crib: "The "})
	require.ErrorIs(t, err, basiccrypto.ErrInvalidParameter)

	got, err := affine.Crack(context.Background(), ciphertext, 4, affine.CrackOptions{Crib: "The ", GuessTail: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "(16000017, 1700016)", got[0].Key.String())
	assert.True(t, strings.HasPrefix(got[0].Plaintext, "The 🔢 second example is more 🤯 complicated"))
}

func TestCrackAcceptFilter(t *testing.T) {
	c, err := affine.New(affine.NewKey(123456789, 987654321), 4)
	require.NoError(t, err)
	ciphertext := c.EncryptMessage("The quick brown fox jumps over the lazy dog")

	got, err := affine.Crack(context.Background(), ciphertext, 4, affine.CrackOptions{Crib: "The quick"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The quick brown fox jumps over the lazy dog", got[0].Plaintext)

	got, err = affine.Crack(context.Background(), ciphertext, 4, affine.CrackOptions{
		Crib:   "The quick",
		Accept: func(s string) bool { return strings.Contains(s, "cat") },
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCrackHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := affine.Crack(ctx, ints(1, 2, 3), 1, affine.CrackOptions{Crib: "ab"})
	require.ErrorIs(t, err, context.Canceled)
}
