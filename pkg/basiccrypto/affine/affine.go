package affine

import (
	"math/big"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/blockcodec"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/modarith"
)

// Key is an affine key: multiplier A and offset B.
type Key struct {
	A *big.Int
	B *big.Int
}

// NewKey builds a Key from machine integers.
func NewKey(a, b int64) Key {
	return Key{A: big.NewInt(a), B: big.NewInt(b)}
}

func (k Key) String() string {
	return "(" + k.A.String() + ", " + k.B.String() + ")"
}

func (k Key) valid() bool {
	return k.A != nil && k.B != nil
}

// Encrypt maps every block p to (A*p + B) mod 256^blockSize. The key need not
// be invertible.
//
//	Encrypt([1685022522, 552640400, 3053453312], (123456789, 987654321), 4)
//	// [4115223155, 1183960961, 685664433]
func Encrypt(plaintext []*big.Int, key Key, blockSize int) ([]*big.Int, error) {
	const op = "affine.Encrypt"
	if !key.valid() {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "key has nil component")
	}
	n, err := blockcodec.Modulus(blockSize)
	if err != nil {
		return nil, basiccrypto.WrapError(op, err)
	}
	return apply(op, plaintext, key.A, key.B, n, false)
}

// Decrypt maps every block c to A^-1 * (c - B) mod 256^blockSize. It fails
// with basiccrypto.ErrDomain when A is not invertible.
func Decrypt(ciphertext []*big.Int, key Key, blockSize int) ([]*big.Int, error) {
	c, err := New(key, blockSize)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ciphertext)
}

// apply computes mul*(x + add) when subFirst is set and mul*x + add
// otherwise, reducing modulo n.
func apply(op string, blocks []*big.Int, mul, add, n *big.Int, subFirst bool) ([]*big.Int, error) {
	out := make([]*big.Int, len(blocks))
	for i, x := range blocks {
		if x == nil {
			return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "block %d is nil", i)
		}
		v := new(big.Int)
		if subFirst {
			v.Add(x, add).Mul(v, mul)
		} else {
			v.Mul(x, mul).Add(v, add)
		}
		out[i] = v.Mod(v, n)
	}
	return out, nil
}

// Cipher is an affine cipher with its inverse multiplier precomputed.
type Cipher struct {
	key   Key
	inv   *big.Int
	negB  *big.Int
	codec *blockcodec.Codec
}

// New validates key for blockSize and precomputes A^-1 mod 256^blockSize.
func New(key Key, blockSize int) (*Cipher, error) {
	const op = "affine.New"
	if !key.valid() {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "key has nil component")
	}
	codec, err := blockcodec.New(blockSize)
	if err != nil {
		return nil, basiccrypto.WrapError(op, err)
	}
	inv, err := modarith.MultiplicativeInverse(key.A, codec.Modulus())
	if err != nil {
		return nil, err
	}
	return &Cipher{
		key:   Key{A: new(big.Int).Set(key.A), B: new(big.Int).Set(key.B)},
		inv:   inv,
		negB:  new(big.Int).Neg(key.B),
		codec: codec,
	}, nil
}

// Key returns a copy of the cipher key.
func (c *Cipher) Key() Key {
	return Key{A: new(big.Int).Set(c.key.A), B: new(big.Int).Set(c.key.B)}
}

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int { return c.codec.BlockSize() }

// Encrypt encrypts integer blocks.
func (c *Cipher) Encrypt(plaintext []*big.Int) ([]*big.Int, error) {
	return apply("affine.Cipher.Encrypt", plaintext, c.key.A, c.key.B, c.codec.Modulus(), false)
}

// Decrypt inverts Encrypt.
func (c *Cipher) Decrypt(ciphertext []*big.Int) ([]*big.Int, error) {
	return apply("affine.Cipher.Decrypt", ciphertext, c.inv, c.negB, c.codec.Modulus(), true)
}

// EncryptMessage encodes message into blocks and encrypts them.
func (c *Cipher) EncryptMessage(message string) []*big.Int {
	out, _ := c.Encrypt(c.codec.Encode(message))
	return out
}

// DecryptMessage decrypts blocks and decodes the result. A wrong key shows
// up as basiccrypto.ErrDecode.
func (c *Cipher) DecryptMessage(ciphertext []*big.Int) (string, error) {
	blocks, err := c.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	return c.codec.Decode(blocks)
}
