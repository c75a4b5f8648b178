package blockcodec

import (
	"bytes"
	"math/big"
	"unicode/utf8"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
)

// Codec converts between text and fixed-size big-endian integer blocks.
// The zero value is not usable; construct one with New.
type Codec struct {
	blockSize int
	modulus   *big.Int
}

// New returns a Codec for blocks of blockSize bytes.
func New(blockSize int) (*Codec, error) {
	n, err := Modulus(blockSize)
	if err != nil {
		return nil, err
	}
	return &Codec{blockSize: blockSize, modulus: n}, nil
}

// Modulus returns 256^blockSize, the exclusive upper bound of a block.
func Modulus(blockSize int) (*big.Int, error) {
	if blockSize < 1 {
		return nil, basiccrypto.NewError("blockcodec.Modulus", basiccrypto.ErrInvalidParameter, "block size must be at least 1, got %d", blockSize)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(8*blockSize)), nil
}

// BlockSize returns the number of bytes per block.
func (c *Codec) BlockSize() int {
	return c.blockSize
}

// Modulus returns a copy of 256^BlockSize.
func (c *Codec) Modulus() *big.Int {
	return new(big.Int).Set(c.modulus)
}

// Encode UTF-8 encodes message, right-pads it with zero bytes to a multiple
// of the block size and returns one integer per block.
func (c *Codec) Encode(message string) []*big.Int {
	seq := []byte(message)
	if rem := len(seq) % c.blockSize; rem != 0 {
		seq = append(seq, make([]byte, c.blockSize-rem)...)
	}
	blocks := make([]*big.Int, 0, len(seq)/c.blockSize)
	for i := 0; i < len(seq); i += c.blockSize {
		blocks = append(blocks, new(big.Int).SetBytes(seq[i:i+c.blockSize]))
	}
	return blocks
}

// Decode reverses Encode. Trailing zero bytes are stripped from the last
// block only, so a message that itself ends in NUL bytes loses them.
func (c *Codec) Decode(blocks []*big.Int) (string, error) {
	const op = "blockcodec.Decode"
	if len(blocks) == 0 {
		return "", nil
	}
	seq := make([]byte, len(blocks)*c.blockSize)
	for i, b := range blocks {
		if b == nil {
			return "", basiccrypto.NewError(op, basiccrypto.ErrDecode, "block %d is nil", i)
		}
		if b.Sign() < 0 || b.Cmp(c.modulus) >= 0 {
			return "", basiccrypto.NewError(op, basiccrypto.ErrDecode, "block %d out of range [0, 256^%d)", i, c.blockSize)
		}
		b.FillBytes(seq[i*c.blockSize : (i+1)*c.blockSize])
	}
	last := len(seq) - c.blockSize
	seq = seq[:last+len(bytes.TrimRight(seq[last:], "\x00"))]
	if !utf8.Valid(seq) {
		return "", basiccrypto.NewError(op, basiccrypto.ErrDecode, "invalid UTF-8")
	}
	return string(seq), nil
}

// Encode is a convenience wrapper for New(blockSize) followed by Encode.
//
//	blocks, _ := blockcodec.Encode("dog: 🐶", 4)
//	// [1685022522 552640400 3053453312]
func Encode(message string, blockSize int) ([]*big.Int, error) {
	c, err := New(blockSize)
	if err != nil {
		return nil, err
	}
	return c.Encode(message), nil
}

// Decode is a convenience wrapper for New(blockSize) followed by Decode.
func Decode(blocks []*big.Int, blockSize int) (string, error) {
	c, err := New(blockSize)
	if err != nil {
		return "", err
	}
	return c.Decode(blocks)
}
