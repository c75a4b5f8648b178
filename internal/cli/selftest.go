package cli

import (
	"fmt"
	"math/big"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/affine"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/blockcodec"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/expcipher"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/modarith"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/primality"
)

type check struct {
	name string
	run  func() (got, want string, err error)
}

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func listResult(blocks []*big.Int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return blockcodec.FormatList(blocks), nil
}

func selfChecks() []check {
	key := affine.NewKey(123456789, 987654321)
	plain := ints(1685022522, 552640400, 3053453312)
	cipher := ints(4115223155, 1183960961, 685664433)

	return []check{
		{"block_encode", func() (string, string, error) {
			got, err := listResult(blockcodec.Encode("dog: 🐶", 4))
			return got, "[1685022522, 552640400, 3053453312]", err
		}},
		{"block_decode", func() (string, string, error) {
			got, err := blockcodec.Decode(plain, 4)
			return got, "dog: 🐶", err
		}},
		{"affine_encrypt", func() (string, string, error) {
			got, err := listResult(affine.Encrypt(plain, key, 4))
			return got, blockcodec.FormatList(cipher), err
		}},
		{"gcd", func() (string, string, error) {
			return modarith.GCD(big.NewInt(2024), big.NewInt(748)).String(), "44", nil
		}},
		{"egcd", func() (string, string, error) {
			g, x, y := modarith.EGCD(big.NewInt(2024), big.NewInt(748))
			return fmt.Sprintf("(%s, %s, %s)", g, x, y), "(44, -7, 19)", nil
		}},
		{"multiplicative_inverse", func() (string, string, error) {
			inv, err := modarith.MultiplicativeInverse(big.NewInt(33), big.NewInt(256))
			if err != nil {
				return "", "225", err
			}
			return inv.String(), "225", nil
		}},
		{"affine_decrypt", func() (string, string, error) {
			got, err := listResult(affine.Decrypt(cipher, key, 4))
			return got, blockcodec.FormatList(plain), err
		}},
		{"exp_encrypt", func() (string, string, error) {
			got, err := listResult(expcipher.Encrypt(ints(61599, 39041), big.NewInt(12345), big.NewInt(65537)))
			return got, "[59696, 1847]", err
		}},
		{"exp_decrypt", func() (string, string, error) {
			got, err := listResult(expcipher.Decrypt(ints(59696, 1847), big.NewInt(12345), big.NewInt(65537)))
			return got, "[61599, 39041]", err
		}},
		{"euler_phi", func() (string, string, error) {
			return primality.EulerPhi(big.NewInt(100)).String(), "40", nil
		}},
		{"first_pseudoprime", func() (string, string, error) {
			n, err := primality.FirstPseudoprime(big.NewInt(2), big.NewInt(0), primality.WitnessFull)
			if err != nil {
				return "", "2047", err
			}
			return n.String(), "2047", nil
		}},
	}
}

// runSelftest runs every check, reporting failures without stopping.
func runSelftest(e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	checks := selfChecks()
	failed := 0
	for _, c := range checks {
		got, want, err := c.run()
		switch {
		case err != nil:
			failed++
			e.printf("FAIL %s: %v\n", c.name, err)
		case got != want:
			failed++
			e.printf("FAIL %s: got %s, want %s\n", c.name, got, want)
		default:
			e.printf("ok   %s\n", c.name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	e.printf("All %d checks passed!\n", len(checks))
	return nil
}
