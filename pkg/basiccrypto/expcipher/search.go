package expcipher

import (
	"context"
	"math/big"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/blockcodec"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/logging"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/modarith"
)

// MaxSearchSpace is the largest p-1 Search will walk.
const MaxSearchSpace = 1 << 22

// SearchOptions configures Search.
type SearchOptions struct {
	// Accept, if set, filters decodings.
	Accept func(plaintext string) bool

	// Limit stops the search after this many candidates. Zero means no limit.
	Limit int

	// Logger receives debug progress. Nil discards.
	Logger logging.Logger
}

// Candidate is a key under which the ciphertext decodes to acceptable text.
type Candidate struct {
	// Key is the encryption exponent.
	Key *big.Int
	// DecryptionKey is Key^-1 mod (p-1).
	DecryptionKey *big.Int
	Plaintext     string
}

// Search tries every decryption exponent d in [1, p-1) coprime to p-1,
// decodes the result with the given block size and reports the keys whose
// plaintext passes Accept. Searches over more than MaxSearchSpace exponents
// are refused with basiccrypto.ErrInvalidParameter.
func Search(ctx context.Context, ciphertext []*big.Int, p *big.Int, blockSize int, opts SearchOptions) ([]Candidate, error) {
	const op = "expcipher.Search"
	if p == nil || p.Cmp(big.NewInt(3)) < 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "modulus must be at least 3")
	}
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	if pm1.Cmp(big.NewInt(MaxSearchSpace)) > 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "key space %s exceeds %d", pm1, MaxSearchSpace)
	}
	codec, err := blockcodec.New(blockSize)
	if err != nil {
		return nil, basiccrypto.WrapError(op, err)
	}
	log := logging.OrDiscard(opts.Logger).With("op", op, "modulus", p.String())

	space := pm1.Int64()
	var out []Candidate
	d := new(big.Int)
	for i := int64(1); i < space; i++ {
		if i&0x3ff == 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
		}
		d.SetInt64(i)
		if modarith.GCD(d, pm1).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		blocks, err := exp(op, ciphertext, d, p)
		if err != nil {
			return nil, err
		}
		text, err := codec.Decode(blocks)
		if err != nil {
			continue
		}
		if opts.Accept != nil && !opts.Accept(text) {
			continue
		}
		key, err := modarith.MultiplicativeInverse(d, pm1)
		if err != nil {
			return nil, basiccrypto.WrapError(op, err)
		}
		log.Debug(ctx, "candidate accepted", logging.Fingerprint("key", key.Bytes()), "length", len(text))
		out = append(out, Candidate{Key: key, DecryptionKey: new(big.Int).Set(d), Plaintext: text})
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	log.Debug(ctx, "exponent search finished", "candidates", len(out))
	return out, ctx.Err()
}
