package modarith

import (
	"math/big"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
)

// GCD returns gcd(a, b) by the Euclidean algorithm. GCD(a, 0) is a and
// GCD(0, b) is b. Inputs are expected to be non-negative.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	r := new(big.Int)
	for y.Sign() != 0 {
		r.Mod(x, y)
		x, y, r = y, r, x
	}
	return x
}

// EGCD runs the extended Euclidean algorithm and returns g = gcd(a, b)
// together with Bézout coefficients x, y such that a*x + b*y = g.
//
// The coefficients follow the iterative recurrence that repeatedly replaces
// (a, b) with (b mod a, a), so EGCD(2024, 748) is (44, -7, 19).
func EGCD(a, b *big.Int) (g, x, y *big.Int) {
	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)
	x, y = big.NewInt(0), big.NewInt(1)
	nextX, nextY := big.NewInt(1), big.NewInt(0)

	q, r, t := new(big.Int), new(big.Int), new(big.Int)
	for a.Sign() != 0 {
		q.DivMod(b, a, r)
		b, a, r = a, r, b

		// (x, nextX) = (nextX, x - nextX*q)
		t.Mul(nextX, q)
		x.Sub(x, t)
		x, nextX = nextX, x

		t.Mul(nextY, q)
		y.Sub(y, t)
		y, nextY = nextY, y
	}
	return b, x, y
}

// MultiplicativeInverse returns the unique x in [0, n) with a*x ≡ 1 (mod n).
// It fails with basiccrypto.ErrDomain when gcd(a, n) != 1 and with
// basiccrypto.ErrInvalidParameter when n is not positive.
func MultiplicativeInverse(a, n *big.Int) (*big.Int, error) {
	const op = "modarith.MultiplicativeInverse"
	if a == nil || n == nil {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "nil operand")
	}
	if n.Sign() <= 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "modulus must be positive, got %s", n)
	}
	reduced := new(big.Int).Mod(a, n)
	if g := GCD(reduced, n); g.Cmp(big.NewInt(1)) != 0 {
		return nil, basiccrypto.NewError(op, basiccrypto.ErrDomain, "gcd(%s, %s) = %s", a, n, g)
	}
	_, _, y := EGCD(n, reduced)
	return y.Mod(y, n), nil
}

// Steps counts the division steps the Euclidean algorithm takes on (a, b),
// counting the final b == 0 check as a step. Steps(a, 0) is 1.
func Steps(a, b *big.Int) int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	r := new(big.Int)
	steps := 1
	for y.Sign() != 0 {
		r.Mod(x, y)
		x, y, r = y, r, x
		steps++
	}
	return steps
}
