// Package moduli provides prime moduli for the exponentiation cipher: the
// first prime above 256^k for a block size k, and a handful of well-known
// named primes.
package moduli

import (
	"crypto/elliptic"
	"math/big"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/blockcodec"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/primality"
)

// Preset names accepted by Named.
const (
	Fermat4        = "fermat4"
	Mersenne61     = "mersenne61"
	Mersenne89     = "mersenne89"
	Mersenne127    = "mersenne127"
	Secp256k1Field = "secp256k1-field"
	Secp256k1Order = "secp256k1-order"
	P256Field      = "p256-field"
)

// exactLimit is the largest block size for which ForBlockSize uses trial
// division.
const exactLimit = 3

// ForBlockSize returns the smallest prime greater than 256^blockSize, the
// natural modulus for exponentiation over blocks of that size. Block sizes
// up to 3 are searched exactly; larger ones use Miller–Rabin with the
// default rounds.
func ForBlockSize(blockSize int) (*big.Int, error) {
	return ForBlockSizeWith(blockSize, primality.NewTester())
}

// ForBlockSizeWith is ForBlockSize with a caller-configured Tester for the
// probabilistic range.
func ForBlockSizeWith(blockSize int, tester *primality.Tester) (*big.Int, error) {
	n, err := blockcodec.Modulus(blockSize)
	if err != nil {
		return nil, basiccrypto.WrapError("moduli.ForBlockSize", err)
	}
	n.Add(n, big.NewInt(1))
	if blockSize <= exactLimit {
		return primality.NextPrime(n), nil
	}
	return tester.NextProbablePrime(n), nil
}

func mersenne(p uint) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), p)
	return n.Sub(n, big.NewInt(1))
}

// Named returns a fresh copy of the preset modulus called name.
func Named(name string) (*big.Int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Fermat4:
		return big.NewInt(65537), nil
	case Mersenne61:
		return mersenne(61), nil
	case Mersenne89:
		return mersenne(89), nil
	case Mersenne127:
		return mersenne(127), nil
	case Secp256k1Field:
		return new(big.Int).Set(btcec.S256().Params().P), nil
	case Secp256k1Order:
		return new(big.Int).Set(btcec.S256().Params().N), nil
	case P256Field:
		return new(big.Int).Set(elliptic.P256().Params().P), nil
	default:
		return nil, basiccrypto.NewError("moduli.Named", basiccrypto.ErrInvalidParameter, "unknown modulus %q", name)
	}
}

// Names lists the presets understood by Named in sorted order.
func Names() []string {
	names := []string{Fermat4, Mersenne61, Mersenne89, Mersenne127, Secp256k1Field, Secp256k1Order, P256Field}
	sort.Strings(names)
	return names
}

// Resolve interprets spec as a preset name or a decimal integer. An empty
// spec selects ForBlockSize(blockSize). The result must be at least 2;
// primality is not checked for explicit integers.
func Resolve(spec string, blockSize int) (*big.Int, error) {
	const op = "moduli.Resolve"
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return ForBlockSize(blockSize)
	}
	if p, ok := new(big.Int).SetString(spec, 10); ok {
		if p.Cmp(big.NewInt(2)) < 0 {
			return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "modulus must be at least 2, got %s", p)
		}
		return p, nil
	}
	return Named(spec)
}
