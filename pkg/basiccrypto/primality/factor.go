package primality

import (
	"math/big"
	"strings"
)

// PrimePower is one term p^e of a factorization.
type PrimePower struct {
	Prime    *big.Int
	Exponent int
}

// Factorization is the prime decomposition of an integer, ordered by
// ascending prime. The empty factorization represents 1.
type Factorization []PrimePower

// Factor returns the prime factorization of n by trial division. Inputs
// n <= 1 yield an empty Factorization.
func Factor(n *big.Int) Factorization {
	var f Factorization
	if n.Cmp(big.NewInt(1)) <= 0 {
		return f
	}
	rest := new(big.Int).Set(n)
	if e := int(rest.TrailingZeroBits()); e > 0 {
		f = append(f, PrimePower{Prime: big.NewInt(2), Exponent: e})
		rest.Rsh(rest, uint(e))
	}

	i, two := big.NewInt(3), big.NewInt(2)
	sq, q, r := new(big.Int), new(big.Int), new(big.Int)
	for sq.Mul(i, i).Cmp(rest) <= 0 {
		e := 0
		for {
			q.QuoRem(rest, i, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			e++
		}
		if e > 0 {
			f = append(f, PrimePower{Prime: new(big.Int).Set(i), Exponent: e})
		}
		i.Add(i, two)
	}
	if rest.Cmp(big.NewInt(1)) > 0 {
		f = append(f, PrimePower{Prime: rest, Exponent: 1})
	}
	return f
}

// Product multiplies the factorization back out.
func (f Factorization) Product() *big.Int {
	out := big.NewInt(1)
	pe := new(big.Int)
	for _, t := range f {
		pe.Exp(t.Prime, big.NewInt(int64(t.Exponent)), nil)
		out.Mul(out, pe)
	}
	return out
}

// Exponent returns the multiplicity of p, or 0 if p does not divide.
func (f Factorization) Exponent(p *big.Int) int {
	for _, t := range f {
		if t.Prime.Cmp(p) == 0 {
			return t.Exponent
		}
	}
	return 0
}

// Primes returns the distinct primes in ascending order.
func (f Factorization) Primes() []*big.Int {
	out := make([]*big.Int, len(f))
	for i, t := range f {
		out[i] = new(big.Int).Set(t.Prime)
	}
	return out
}

// String renders the factorization as "2^2 * 5^2". Exponents of one are
// omitted and the empty factorization prints as "1".
func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}
	parts := make([]string, len(f))
	for i, t := range f {
		parts[i] = t.Prime.String()
		if t.Exponent > 1 {
			parts[i] += "^" + big.NewInt(int64(t.Exponent)).String()
		}
	}
	return strings.Join(parts, " * ")
}

// EulerPhi returns the number of integers in [1, n] coprime to n, computed
// from the product formula over the distinct prime factors. EulerPhi(1) is 1
// and any n <= 0 yields 0.
func EulerPhi(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}
	phi := new(big.Int).Set(n)
	pm1 := new(big.Int)
	for _, t := range Factor(n) {
		phi.Quo(phi, t.Prime)
		phi.Mul(phi, pm1.Sub(t.Prime, big.NewInt(1)))
	}
	return phi
}
