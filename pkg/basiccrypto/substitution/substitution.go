// Package substitution implements the Caesar shift and general
// monoalphabetic substitution over the lowercase letters a through z.
// Any other rune, including uppercase letters, passes through unchanged.
package substitution

import (
	"strings"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
)

const alphabetSize = 26

func inAlphabet(r rune) bool { return r >= 'a' && r <= 'z' }

// Shift moves every letter s places forward, wrapping around the alphabet.
// Negative shifts move backward.
func Shift(message string, s int) string {
	s = ((s % alphabetSize) + alphabetSize) % alphabetSize
	return strings.Map(func(r rune) rune {
		if !inAlphabet(r) {
			return r
		}
		return 'a' + (r-'a'+rune(s))%alphabetSize
	}, message)
}

// Unshift undoes Shift(message, s).
func Unshift(message string, s int) string {
	return Shift(message, -(s % alphabetSize))
}

// validate checks that key is a permutation of a..z.
func validate(op, key string) error {
	if len(key) != alphabetSize {
		return basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "key must have %d letters, got %d bytes", alphabetSize, len(key))
	}
	var seen [alphabetSize]bool
	for _, r := range key {
		if !inAlphabet(r) {
			return basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "key contains %q", r)
		}
		if seen[r-'a'] {
			return basiccrypto.NewError(op, basiccrypto.ErrInvalidParameter, "key repeats %q", r)
		}
		seen[r-'a'] = true
	}
	return nil
}

// Substitute replaces the i-th letter of the alphabet with key[i].
func Substitute(message, key string) (string, error) {
	if err := validate("substitution.Substitute", key); err != nil {
		return "", err
	}
	return substitute(message, key), nil
}

func substitute(message, key string) string {
	return strings.Map(func(r rune) rune {
		if !inAlphabet(r) {
			return r
		}
		return rune(key[r-'a'])
	}, message)
}

// Invert returns the key that undoes key.
func Invert(key string) (string, error) {
	if err := validate("substitution.Invert", key); err != nil {
		return "", err
	}
	return invert(key), nil
}

func invert(key string) string {
	undo := make([]byte, alphabetSize)
	for i := 0; i < alphabetSize; i++ {
		undo[key[i]-'a'] = byte('a' + i)
	}
	return string(undo)
}

// Unsubstitute undoes Substitute(message, key).
func Unsubstitute(message, key string) (string, error) {
	if err := validate("substitution.Unsubstitute", key); err != nil {
		return "", err
	}
	return substitute(message, invert(key)), nil
}
