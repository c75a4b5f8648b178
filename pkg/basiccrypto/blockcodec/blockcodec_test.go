package blockcodec_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/blockcodec"
)

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func requireBlocks(t *testing.T, want, got []*big.Int) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Zero(t, want[i].Cmp(got[i]), "block %d: got %s, want %s", i, got[i], want[i])
	}
}

func TestEncodeDogExample(t *testing.T) {
	blocks, err := blockcodec.Encode("dog: 🐶", 4)
	require.NoError(t, err)
	requireBlocks(t, ints(1685022522, 552640400, 3053453312), blocks)
}

func TestDecodeDogExample(t *testing.T) {
	msg, err := blockcodec.Decode(ints(1685022522, 552640400, 3053453312), 4)
	require.NoError(t, err)
	assert.Equal(t, "dog: 🐶", msg)
}

func TestRoundTrip(t *testing.T) {
	messages := []string{
		"",
		"a",
		"hello, world",
		"dog: 🐶",
		"Привет, мир",
		"日本語のテキスト",
		strings.Repeat("The quick brown fox. ", 20),
		"zero\x00inside",
	}
	for _, m := range messages {
		for k := 1; k <= 12; k++ {
			c, err := blockcodec.New(k)
			require.NoError(t, err)

			blocks := c.Encode(m)
			require.Len(t, blocks, (len(m)+k-1)/k)
			for _, b := range blocks {
				require.True(t, b.Sign() >= 0 && b.Cmp(c.Modulus()) < 0)
			}

			got, err := c.Decode(blocks)
			require.NoError(t, err, "k=%d m=%q", k, m)
			require.Equal(t, m, got, "k=%d", k)
		}
	}
}

func TestDecodeStripsOnlyLastBlock(t *testing.T) {
	// "a\x00" + "b" with block size 2: the zero inside the first block stays.
	msg, err := blockcodec.Decode(ints(0x6100, 0x6200), 2)
	require.NoError(t, err)
	assert.Equal(t, "a\x00b", msg)
}

func TestTrailingNulIsLost(t *testing.T) {
	blocks, err := blockcodec.Encode("ab\x00", 2)
	require.NoError(t, err)
	msg, err := blockcodec.Decode(blocks, 2)
	require.NoError(t, err)
	assert.Equal(t, "ab", msg)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		blocks []*big.Int
		k      int
	}{
		{"too large", ints(256), 1},
		{"negative", ints(-1), 1},
		{"nil block", []*big.Int{nil}, 2},
		{"invalid utf8", ints(0xff), 1},
		{"truncated rune", ints(0xF09F), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := blockcodec.Decode(tt.blocks, tt.k)
			require.ErrorIs(t, err, basiccrypto.ErrDecode)
		})
	}
}

func TestInvalidBlockSize(t *testing.T) {
	_, err := blockcodec.New(0)
	require.ErrorIs(t, err, basiccrypto.ErrInvalidParameter)

	_, err = blockcodec.Encode("x", -1)
	require.ErrorIs(t, err, basiccrypto.ErrInvalidParameter)

	_, err = blockcodec.Decode(ints(1), 0)
	require.ErrorIs(t, err, basiccrypto.ErrInvalidParameter)
}

func TestModulus(t *testing.T) {
	n, err := blockcodec.Modulus(4)
	require.NoError(t, err)
	assert.Equal(t, "4294967296", n.String())

	c, err := blockcodec.New(10)
	require.NoError(t, err)
	assert.Equal(t, 10, c.BlockSize())
	assert.Equal(t, 81, c.Modulus().BitLen())

	// Callers get a copy.
	c.Modulus().SetInt64(0)
	assert.Equal(t, 81, c.Modulus().BitLen())
}

func TestEncodeEmpty(t *testing.T) {
	blocks, err := blockcodec.Encode("", 3)
	require.NoError(t, err)
	assert.Empty(t, blocks)

	msg, err := blockcodec.Decode(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, "", msg)
}

func TestParseList(t *testing.T) {
	for _, in := range []string{
		"[1685022522, 552640400, 3053453312]",
		"1685022522,552640400,3053453312",
		"  1685022522 552640400\t3053453312\n",
	} {
		got, err := blockcodec.ParseList(in)
		require.NoError(t, err, in)
		requireBlocks(t, ints(1685022522, 552640400, 3053453312), got)
	}

	got, err := blockcodec.ParseList("[]")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = blockcodec.ParseList("[1, two, 3]")
	require.ErrorIs(t, err, basiccrypto.ErrInvalidParameter)
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "[4115223155, 1183960961, 685664433]", blockcodec.FormatList(ints(4115223155, 1183960961, 685664433)))
	assert.Equal(t, "[]", blockcodec.FormatList(nil))
}
