// Package basiccrypto is the root of a small toolkit for classical
// number-theoretic ciphers. It holds the pieces shared by every subpackage:
// the error taxonomy, the YAML configuration and build metadata.
//
// The algorithms live in subpackages:
//
//   - modarith: gcd, extended gcd and modular inverses
//   - blockcodec: text to big-endian integer blocks and back
//   - primality: trial division, factoring, totient and Miller-Rabin
//   - affine: the affine block cipher and known-plaintext key recovery
//   - expcipher: the exponentiation cipher and exhaustive key search
//   - substitution: Caesar shifts and monoalphabetic substitution
//   - moduli: prime moduli for the exponentiation cipher
//
// None of these ciphers are secure. They exist to be broken.
//
// # Errors
//
// Every failure wraps one of ErrDomain, ErrDecode, ErrPrecondition or
// ErrInvalidParameter in an *Error naming the failing operation:
//
//	inv, err := modarith.MultiplicativeInverse(big.NewInt(4), big.NewInt(256))
//	if errors.Is(err, basiccrypto.ErrDomain) {
//	    // 4 has no inverse mod 256
//	}
package basiccrypto
