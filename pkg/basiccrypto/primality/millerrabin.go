package primality

import (
	"math/big"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
)

// Witness selects the strong pseudoprime check used by a Tester.
type Witness int

const (
	// WitnessFull runs the complete Miller–Rabin squaring ladder.
	WitnessFull Witness = iota
	// WitnessFirstStep accepts only when base^m is 1 or n-1.
	WitnessFirstStep
)

// String returns the configuration spelling of w.
func (w Witness) String() string {
	switch w {
	case WitnessFull:
		return "full"
	case WitnessFirstStep:
		return "first-step"
	default:
		return "unknown"
	}
}

// ParseWitness maps "full" and "first-step" to their Witness. The empty
// string selects WitnessFull.
func ParseWitness(s string) (Witness, bool) {
	switch s {
	case "", "full":
		return WitnessFull, true
	case "first-step":
		return WitnessFirstStep, true
	default:
		return WitnessFull, false
	}
}

func (w Witness) test(n, base *big.Int) bool {
	if w == WitnessFirstStep {
		return PassesFirstStep(n, base)
	}
	return IsStrongPseudoprime(n, base)
}

// IsStrongPseudoprime reports whether odd n passes the Miller–Rabin test to
// the given base: with n-1 = 2^e*m and m odd, either base^m ≡ 1 or
// base^(2^r*m) ≡ -1 (mod n) for some 0 <= r < e. Every odd prime passes for
// every base coprime to it. Even n > 2 and n < 2 never pass.
func IsStrongPseudoprime(n, base *big.Int) bool {
	ok, x, nm1, e := firstStep(n, base)
	if ok || x == nil {
		return ok
	}
	for r := 1; r < e; r++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nm1) == 0 {
			return true
		}
		if x.Cmp(big.NewInt(1)) == 0 {
			return false
		}
	}
	return false
}

// PassesFirstStep reports whether base^m mod n is 1 or n-1 where
// n-1 = 2^e*m with m odd. This is the first rung of IsStrongPseudoprime and
// rejects primes whose witnesses only appear later in the ladder.
func PassesFirstStep(n, base *big.Int) bool {
	ok, _, _, _ := firstStep(n, base)
	return ok
}

// firstStep computes x = base^m mod n. When the outcome is already decided
// x is nil and ok carries the answer.
func firstStep(n, base *big.Int) (ok bool, x, nm1 *big.Int, e int) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return false, nil, nil, 0
	}
	if n.Bit(0) == 0 {
		return n.Cmp(big.NewInt(2)) == 0, nil, nil, 0
	}
	nm1 = new(big.Int).Sub(n, big.NewInt(1))
	e, m := TwoAdic(nm1)
	x = new(big.Int).Exp(base, m, n)
	if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(nm1) == 0 {
		return true, nil, nil, 0
	}
	return false, x, nm1, e
}

// FirstPseudoprime returns the smallest odd composite >= from that passes
// the witness test for base. With base 2 this is 2047 = 23 * 89. The base
// must be at least 2.
func FirstPseudoprime(base, from *big.Int, w Witness) (*big.Int, error) {
	if base == nil || base.Cmp(big.NewInt(2)) < 0 {
		return nil, basiccrypto.NewError("primality.FirstPseudoprime", basiccrypto.ErrInvalidParameter, "base must be at least 2")
	}
	n := big.NewInt(9)
	if from.Cmp(n) > 0 {
		n.Set(from)
	}
	n.SetBit(n, 0, 1)
	for IsPrime(n) || !w.test(n, base) {
		n.Add(n, big.NewInt(2))
	}
	return n, nil
}
