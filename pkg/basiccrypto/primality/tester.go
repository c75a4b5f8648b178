package primality

import (
	"crypto/rand"
	"io"
	"math/big"
)

const (
	// DefaultRounds is the number of random bases tried when none is given.
	DefaultRounds = 40
	// MaxRounds caps the rounds of a Tester. Forty bases bound the false
	// positive rate by 4^-40 regardless of the size of n.
	MaxRounds = 40
)

// Tester runs the Miller–Rabin test with random bases.
type Tester struct {
	rounds  int
	witness Witness
	rand    io.Reader
}

// Option configures a Tester.
type Option func(*Tester)

// WithRounds sets the number of bases. Values <= 0 select DefaultRounds and
// values above MaxRounds are capped.
func WithRounds(rounds int) Option {
	return func(t *Tester) { t.rounds = clampRounds(rounds) }
}

// WithWitness selects the strong pseudoprime check.
func WithWitness(w Witness) Option {
	return func(t *Tester) { t.witness = w }
}

// WithRand replaces crypto/rand.Reader as the source of bases. Tests pass a
// seeded reader for reproducible runs.
func WithRand(r io.Reader) Option {
	return func(t *Tester) {
		if r != nil {
			t.rand = r
		}
	}
}

// NewTester returns a Tester using DefaultRounds, WitnessFull and
// crypto/rand.Reader unless overridden.
func NewTester(opts ...Option) *Tester {
	t := &Tester{rounds: DefaultRounds, witness: WitnessFull, rand: rand.Reader}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func clampRounds(rounds int) int {
	switch {
	case rounds <= 0:
		return DefaultRounds
	case rounds > MaxRounds:
		return MaxRounds
	default:
		return rounds
	}
}

// Rounds returns the number of bases tried per candidate.
func (t *Tester) Rounds() int { return t.rounds }

// Witness returns the configured check.
func (t *Tester) Witness() Witness { return t.witness }

// IsProbablyPrime tests n against Rounds bases drawn uniformly from
// [2, n-2] and rejects on the first failure. It returns false for n < 2 and
// even n > 2, and true for 2 and 3.
func (t *Tester) IsProbablyPrime(n *big.Int) bool {
	if n.Cmp(big.NewInt(2)) < 0 {
		return false
	}
	if n.Cmp(big.NewInt(3)) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	span := new(big.Int).Sub(n, big.NewInt(3))
	for i := 0; i < t.rounds; i++ {
		if !t.witness.test(n, t.base(i, span)) {
			return false
		}
	}
	return true
}

// base returns a base in [2, n-2]. If the random source fails it walks the
// range deterministically from 2.
func (t *Tester) base(i int, span *big.Int) *big.Int {
	b, err := rand.Int(t.rand, span)
	if err != nil {
		b = new(big.Int).Mod(big.NewInt(int64(i)), span)
	}
	return b.Add(b, big.NewInt(2))
}

// NextProbablePrime returns the first integer >= n that passes
// IsProbablyPrime: 2 for n <= 2, 3 for n == 3, otherwise the first odd
// candidate.
func (t *Tester) NextProbablePrime(n *big.Int) *big.Int {
	if n.Cmp(big.NewInt(2)) <= 0 {
		return big.NewInt(2)
	}
	if n.Cmp(big.NewInt(3)) == 0 {
		return big.NewInt(3)
	}
	c := new(big.Int).Set(n)
	c.SetBit(c, 0, 1)
	for !t.IsProbablyPrime(c) {
		c.Add(c, big.NewInt(2))
	}
	return c
}

// IsProbablyPrime runs a Tester with the given rounds and WitnessFull.
func IsProbablyPrime(n *big.Int, rounds int) bool {
	return NewTester(WithRounds(rounds)).IsProbablyPrime(n)
}

// NextProbablePrime returns the first integer >= n passing IsProbablyPrime
// with DefaultRounds.
func NextProbablePrime(n *big.Int) *big.Int {
	return NewTester().NextProbablePrime(n)
}
