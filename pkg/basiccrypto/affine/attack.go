package affine

import (
	"context"
	"math/big"
	"strings"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/blockcodec"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/logging"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/modarith"
)

// MaxCandidates bounds the number of multipliers SolveKeys will enumerate
// when the plaintext difference shares a large factor with the modulus.
const MaxCandidates = 1 << 16

// KnownPair is a plaintext block and the ciphertext block it encrypts to.
type KnownPair struct {
	Plain  *big.Int
	Cipher *big.Int
}

// SolveKeys returns every invertible key that maps both known plaintext
// blocks to their ciphertext blocks.
//
// Subtracting the two equations gives a*(p1 - p2) ≡ c1 - c2 (mod n). With
// g = gcd(p1 - p2, n) there are either no solutions or g of them, spaced n/g
// apart; all g are tried and the even multipliers discarded. An empty result
// with a nil error means the pairs are inconsistent.
func SolveKeys(first, second KnownPair, blockSize int) ([]Key, error) {
	const op = "affine.SolveKeys"
	for _, v := range []*big.Int{first.Plain, first.Cipher, second.Plain, second.Cipher} {
		if v == nil {
			return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "known pair has nil component")
		}
	}
	n, err := blockcodec.Modulus(blockSize)
	if err != nil {
		return nil, basiccrypto.WrapError(op, err)
	}

	dp := new(big.Int).Sub(first.Plain, second.Plain)
	dp.Mod(dp, n)
	dc := new(big.Int).Sub(first.Cipher, second.Cipher)
	dc.Mod(dc, n)

	g := modarith.GCD(dp, n)
	if new(big.Int).Mod(dc, g).Sign() != 0 {
		return nil, nil
	}
	if g.Cmp(big.NewInt(MaxCandidates)) > 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "%s candidate multipliers exceed the limit of %d", g, MaxCandidates)
	}

	step := new(big.Int).Quo(n, g)
	inv, err := modarith.MultiplicativeInverse(new(big.Int).Quo(dp, g), step)
	if err != nil {
		return nil, basiccrypto.WrapError(op, err)
	}
	a := new(big.Int).Quo(dc, g)
	a.Mul(a, inv).Mod(a, step)

	var keys []Key
	for j := int64(0); j < g.Int64(); j++ {
		if a.Bit(0) == 1 {
			b := new(big.Int).Mul(a, first.Plain)
			b.Sub(first.Cipher, b).Mod(b, n)
			keys = append(keys, Key{A: new(big.Int).Set(a), B: b})
		}
		a.Add(a, step)
	}
	return keys, nil
}

// Candidate is a key that decrypts the ciphertext to acceptable text.
type Candidate struct {
	Key       Key
	Plaintext string
}

// CrackOptions configures Crack.
type CrackOptions struct {
	// Crib is known plaintext at the start of the message.
	Crib string

	// GuessTail pairs the first crib block with every possible final block
	// holding one byte followed by padding, v*256^(k-1) for v in 1..255.
	// Needed when the crib covers fewer than two blocks.
	GuessTail bool

	// Accept, if set, filters decodings.
	Accept func(plaintext string) bool

	// Logger receives debug progress. Nil discards.
	Logger logging.Logger
}

// Crack recovers affine keys from ciphertext using a known-plaintext crib.
// When the crib spans two full blocks the first two ciphertext blocks are
// paired with it; with GuessTail set the final block is guessed as well.
// A candidate must decode to UTF-8 that starts with the crib and passes
// Accept.
func Crack(ctx context.Context, ciphertext []*big.Int, blockSize int, opts CrackOptions) ([]Candidate, error) {
	const op = "affine.Crack"
	log := logging.OrDiscard(opts.Logger).With("op", op, "block_size", blockSize)

	codec, err := blockcodec.New(blockSize)
	if err != nil {
		return nil, basiccrypto.WrapError(op, err)
	}
	crib := codec.Encode(opts.Crib)
	if len(opts.Crib)%blockSize != 0 {
		crib = crib[:len(crib)-1]
	}

	var pairs [][2]KnownPair
	if len(crib) >= 2 && len(ciphertext) >= 2 {
		pairs = append(pairs, [2]KnownPair{
			{Plain: crib[0], Cipher: ciphertext[0]},
			{Plain: crib[1], Cipher: ciphertext[1]},
		})
	}
	if opts.GuessTail && len(crib) >= 1 && len(ciphertext) >= 2 {
		unit := new(big.Int).Lsh(big.NewInt(1), uint(8*(blockSize-1)))
		for v := int64(1); v < 256; v++ {
			pairs = append(pairs, [2]KnownPair{
				{Plain: crib[0], Cipher: ciphertext[0]},
				{Plain: new(big.Int).Mul(unit, big.NewInt(v)), Cipher: ciphertext[len(ciphertext)-1]},
			})
		}
	}
	if len(pairs) == 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter,
			"crib of %d bytes and %d ciphertext blocks give no known pairs", len(opts.Crib), len(ciphertext))
	}
	log.Debug(ctx, "solving known pairs", "pairs", len(pairs))

	seen := make(map[string]bool)
	var out []Candidate
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		keys, err := SolveKeys(pair[0], pair[1], blockSize)
		if err != nil {
			log.Debug(ctx, "skipping pair", "err", err)
			continue
		}
		for _, key := range keys {
			id := key.String()
			if seen[id] {
				continue
			}
			seen[id] = true

			c, err := New(key, blockSize)
			if err != nil {
				continue
			}
			text, err := c.DecryptMessage(ciphertext)
			if err != nil || !strings.HasPrefix(text, opts.Crib) {
				continue
			}
			if opts.Accept != nil && !opts.Accept(text) {
				continue
			}
			log.Debug(ctx, "candidate accepted", logging.Fingerprint("key", []byte(id)), "length", len(text))
			out = append(out, Candidate{Key: key, Plaintext: text})
		}
	}
	log.Debug(ctx, "affine crack finished", "candidates", len(out))
	return out, nil
}
