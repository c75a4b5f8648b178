package primality

import (
	"math/big"
)

// IsPrime reports whether n is prime using trial division by 2 and the odd
// numbers up to √n.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.IsUint64() {
		return isPrime64(n.Uint64())
	}
	if n.Bit(0) == 0 {
		return false
	}
	i, two := big.NewInt(3), big.NewInt(2)
	sq, r := new(big.Int), new(big.Int)
	for sq.Mul(i, i).Cmp(n) <= 0 {
		if r.Mod(n, i).Sign() == 0 {
			return false
		}
		i.Add(i, two)
	}
	return true
}

func isPrime64(n uint64) bool {
	if n == 2 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime >= n.
func NextPrime(n *big.Int) *big.Int {
	two := big.NewInt(2)
	if n.Cmp(two) <= 0 {
		return two
	}
	c := new(big.Int).Set(n)
	c.SetBit(c, 0, 1)
	for !IsPrime(c) {
		c.Add(c, two)
	}
	return c
}

// TwoAdic splits n > 0 into 2^e * m with m odd. For n <= 0 it returns
// (0, n).
func TwoAdic(n *big.Int) (e int, m *big.Int) {
	if n.Sign() <= 0 {
		return 0, new(big.Int).Set(n)
	}
	e = int(n.TrailingZeroBits())
	return e, new(big.Int).Rsh(n, uint(e))
}
