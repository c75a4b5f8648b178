package expcipher

import (
	"math/big"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/modarith"
)

// Cipher is an exponentiation cipher with its decryption exponent cached.
type Cipher struct {
	key *big.Int
	inv *big.Int
	p   *big.Int
}

// New checks p >= 2, k >= 1 and gcd(k, p-1) = 1, then computes
// k^-1 mod (p-1). A key that shares a factor with p-1 fails with
// basiccrypto.ErrPrecondition. Primality of p is the caller's concern.
func New(k, p *big.Int) (*Cipher, error) {
	const op = "expcipher.New"
	if k == nil || p == nil {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "nil key or modulus")
	}
	if p.Cmp(big.NewInt(2)) < 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "modulus must be at least 2, got %s", p)
	}
	if k.Sign() <= 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "key must be positive, got %s", k)
	}
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	if g := modarith.GCD(k, pm1); g.Cmp(big.NewInt(1)) != 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrPrecondition, "gcd(%s, %s) = %s", k, pm1, g)
	}
	inv, err := modarith.MultiplicativeInverse(k, pm1)
	if err != nil {
		return nil, basiccrypto.WrapError(op, err)
	}
	return &Cipher{
		key: new(big.Int).Set(k),
		inv: inv,
		p:   new(big.Int).Set(p),
	}, nil
}

// Key returns a copy of the encryption exponent.
func (c *Cipher) Key() *big.Int { return new(big.Int).Set(c.key) }

// DecryptionKey returns a copy of k^-1 mod (p-1).
func (c *Cipher) DecryptionKey() *big.Int { return new(big.Int).Set(c.inv) }

// Modulus returns a copy of p.
func (c *Cipher) Modulus() *big.Int { return new(big.Int).Set(c.p) }

// Encrypt raises every block to the key modulo p.
func (c *Cipher) Encrypt(plaintext []*big.Int) ([]*big.Int, error) {
	return exp("expcipher.Cipher.Encrypt", plaintext, c.key, c.p)
}

// Decrypt raises every block to the inverse key modulo p.
func (c *Cipher) Decrypt(ciphertext []*big.Int) ([]*big.Int, error) {
	return exp("expcipher.Cipher.Decrypt", ciphertext, c.inv, c.p)
}

func exp(op string, blocks []*big.Int, e, p *big.Int) ([]*big.Int, error) {
	out := make([]*big.Int, len(blocks))
	for i, x := range blocks {
		if x == nil {
			return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "block %d is nil", i)
		}
		out[i] = new(big.Int).Exp(x, e, p)
	}
	return out, nil
}

// Encrypt computes x^k mod p for every block.
//
//	Encrypt([61599, 39041], 12345, 65537) // [59696, 1847]
func Encrypt(plaintext []*big.Int, k, p *big.Int) ([]*big.Int, error) {
	c, err := New(k, p)
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext)
}

// Decrypt inverts Encrypt for the same k and p.
func Decrypt(ciphertext []*big.Int, k, p *big.Int) ([]*big.Int, error) {
	c, err := New(k, p)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ciphertext)
}
