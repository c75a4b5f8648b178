package cli

import (
	"errors"
	"flag"
	"math/big"
	"strings"
	"unicode"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/affine"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/blockcodec"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/expcipher"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/modarith"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/moduli"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/primality"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/substitution"
)

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}

func runEncode(e *env, args []string) error {
	fs := e.newFlags("encode")
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	msg, err := joinArgs(fs.Args())
	if err != nil {
		return err
	}
	blocks, err := blockcodec.Encode(msg, *k)
	if err != nil {
		return err
	}
	e.printf("%s\n", blockcodec.FormatList(blocks))
	return nil
}

func runDecode(e *env, args []string) error {
	fs := e.newFlags("decode")
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	blocks, err := blockArgs(fs.Args())
	if err != nil {
		return err
	}
	msg, err := blockcodec.Decode(blocks, *k)
	if err != nil {
		return err
	}
	e.printf("%s\n", msg)
	return nil
}

// blockArgs reads a block list given as one bracketed argument or as
// several integer arguments.
func blockArgs(args []string) ([]*big.Int, error) {
	if len(args) == 0 {
		return nil, errUsage
	}
	return blockcodec.ParseList(strings.Join(args, " "))
}

func affineKeyFlags(fs *flag.FlagSet) (a, b *string) {
	return fs.String("a", "", "multiplier"), fs.String("b", "", "offset")
}

func parseAffineKey(a, b string) (affine.Key, error) {
	if a == "" || b == "" {
		return affine.Key{}, errUsage
	}
	av, err := parseInt("a", a)
	if err != nil {
		return affine.Key{}, err
	}
	bv, err := parseInt("b", b)
	if err != nil {
		return affine.Key{}, err
	}
	return affine.Key{A: av, B: bv}, nil
}

func runAffineEncrypt(e *env, args []string) error {
	fs := e.newFlags("affine-encrypt")
	a, b := affineKeyFlags(fs)
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	key, err := parseAffineKey(*a, *b)
	if err != nil {
		return err
	}
	msg, err := joinArgs(fs.Args())
	if err != nil {
		return err
	}
	blocks, err := blockcodec.Encode(msg, *k)
	if err != nil {
		return err
	}
	ct, err := affine.Encrypt(blocks, key, *k)
	if err != nil {
		return err
	}
	e.printf("%s\n", blockcodec.FormatList(ct))
	return nil
}

func runAffineDecrypt(e *env, args []string) error {
	fs := e.newFlags("affine-decrypt")
	a, b := affineKeyFlags(fs)
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	key, err := parseAffineKey(*a, *b)
	if err != nil {
		return err
	}
	ct, err := blockArgs(fs.Args())
	if err != nil {
		return err
	}
	c, err := affine.New(key, *k)
	if err != nil {
		return err
	}
	msg, err := c.DecryptMessage(ct)
	if err != nil {
		return err
	}
	e.printf("%s\n", msg)
	return nil
}

func runAffineCrack(e *env, args []string) error {
	fs := e.newFlags("affine-crack")
	crib := fs.String("crib", "", "known plaintext prefix")
	tail := fs.Bool("tail", false, "guess a one-byte final block")
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *crib == "" {
		return errUsage
	}
	ct, err := blockArgs(fs.Args())
	if err != nil {
		return err
	}
	found, err := affine.Crack(e.ctx, ct, *k, affine.CrackOptions{Crib: *crib, GuessTail: *tail, Logger: e.log})
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return basiccrypto.NewError("affine-crack", basiccrypto.ErrDecode, "no key decodes the ciphertext")
	}
	for _, c := range found {
		e.printf("key %s: %s\n", c.Key, c.Plaintext)
	}
	return nil
}

// expModulus resolves -p, falling back to the configured modulus and then
// to the first prime above 256^k.
func (e *env) expModulus(flagValue string, k int) (*big.Int, error) {
	spec := flagValue
	if spec == "" {
		spec = e.cfg.Modulus
	}
	return moduli.Resolve(spec, k)
}

func runExpEncrypt(e *env, args []string) error {
	fs := e.newFlags("exp-encrypt")
	keyFlag := fs.String("key", "", "exponent")
	pFlag := fs.String("p", "", "prime modulus or preset name")
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *keyFlag == "" {
		return errUsage
	}
	key, err := parseInt("key", *keyFlag)
	if err != nil {
		return err
	}
	msg, err := joinArgs(fs.Args())
	if err != nil {
		return err
	}
	p, err := e.expModulus(*pFlag, *k)
	if err != nil {
		return err
	}
	blocks, err := blockcodec.Encode(msg, *k)
	if err != nil {
		return err
	}
	ct, err := expcipher.Encrypt(blocks, key, p)
	if err != nil {
		return err
	}
	e.printf("%s\n", blockcodec.FormatList(ct))
	return nil
}

func runExpDecrypt(e *env, args []string) error {
	fs := e.newFlags("exp-decrypt")
	keyFlag := fs.String("key", "", "exponent used to encrypt")
	pFlag := fs.String("p", "", "prime modulus or preset name")
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *keyFlag == "" {
		return errUsage
	}
	key, err := parseInt("key", *keyFlag)
	if err != nil {
		return err
	}
	ct, err := blockArgs(fs.Args())
	if err != nil {
		return err
	}
	p, err := e.expModulus(*pFlag, *k)
	if err != nil {
		return err
	}
	pt, err := expcipher.Decrypt(ct, key, p)
	if err != nil {
		return err
	}
	msg, err := blockcodec.Decode(pt, *k)
	if err != nil {
		return err
	}
	e.printf("%s\n", msg)
	return nil
}

func printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func runExpSearch(e *env, args []string) error {
	fs := e.newFlags("exp-search")
	pFlag := fs.String("p", "", "prime modulus or preset name")
	ascii := fs.Bool("ascii", false, "only accept printable text")
	limit := fs.Int("limit", 0, "stop after this many candidates")
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	ct, err := blockArgs(fs.Args())
	if err != nil {
		return err
	}
	p, err := e.expModulus(*pFlag, *k)
	if err != nil {
		return err
	}
	opts := expcipher.SearchOptions{Limit: *limit, Logger: e.log}
	if *ascii {
		opts.Accept = printable
	}
	found, err := expcipher.Search(e.ctx, ct, p, *k, opts)
	if err != nil {
		return err
	}
	for _, c := range found {
		e.printf("key %s: %s\n", c.Key, c.Plaintext)
	}
	return nil
}

func runGCD(e *env, args []string) error {
	v, err := parseInts(args, "a", "b")
	if err != nil {
		return err
	}
	e.printf("%s\n", modarith.GCD(v[0], v[1]))
	return nil
}

func runEGCD(e *env, args []string) error {
	v, err := parseInts(args, "a", "b")
	if err != nil {
		return err
	}
	g, x, y := modarith.EGCD(v[0], v[1])
	e.printf("%s %s %s\n", g, x, y)
	return nil
}

func runInverse(e *env, args []string) error {
	v, err := parseInts(args, "a", "n")
	if err != nil {
		return err
	}
	inv, err := modarith.MultiplicativeInverse(v[0], v[1])
	if err != nil {
		return err
	}
	e.printf("%s\n", inv)
	return nil
}

func runSteps(e *env, args []string) error {
	v, err := parseInts(args, "a", "b")
	if err != nil {
		return err
	}
	e.printf("%d\n", modarith.Steps(v[0], v[1]))
	return nil
}

func runIsPrime(e *env, args []string) error {
	fs := e.newFlags("isprime")
	probable := fs.Bool("probable", false, "use Miller-Rabin instead of trial division")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	v, err := parseInts(fs.Args(), "n")
	if err != nil {
		return err
	}
	var ok bool
	if *probable {
		ok = e.tester().IsProbablyPrime(v[0])
	} else {
		ok = primality.IsPrime(v[0])
	}
	e.printf("%t\n", ok)
	return nil
}

func runNextPrime(e *env, args []string) error {
	fs := e.newFlags("nextprime")
	probable := fs.Bool("probable", false, "use Miller-Rabin instead of trial division")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	v, err := parseInts(fs.Args(), "n")
	if err != nil {
		return err
	}
	if *probable {
		e.printf("%s\n", e.tester().NextProbablePrime(v[0]))
	} else {
		e.printf("%s\n", primality.NextPrime(v[0]))
	}
	return nil
}

func runPseudoprime(e *env, args []string) error {
	fs := e.newFlags("pseudoprime")
	base := fs.Int64("base", 2, "witness base")
	from := fs.Int64("from", 0, "search start")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return errUsage
	}
	w, _ := primality.ParseWitness(e.cfg.Witness)
	n, err := primality.FirstPseudoprime(big.NewInt(*base), big.NewInt(*from), w)
	if err != nil {
		return err
	}
	e.printf("%s = %s\n", n, primality.Factor(n))
	return nil
}

func runFactor(e *env, args []string) error {
	v, err := parseInts(args, "n")
	if err != nil {
		return err
	}
	e.printf("%s\n", primality.Factor(v[0]))
	return nil
}

func runPhi(e *env, args []string) error {
	v, err := parseInts(args, "n")
	if err != nil {
		return err
	}
	e.printf("%s\n", primality.EulerPhi(v[0]))
	return nil
}

func runModulus(e *env, args []string) error {
	fs := e.newFlags("modulus")
	list := fs.Bool("list", false, "list the named presets")
	k := e.blockSizeFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *list {
		for _, name := range moduli.Names() {
			p, err := moduli.Named(name)
			if err != nil {
				return err
			}
			e.printf("%-16s %s\n", name, p)
		}
		return nil
	}
	if fs.NArg() > 1 {
		return errUsage
	}
	p, err := e.expModulus(fs.Arg(0), *k)
	if err != nil {
		return err
	}
	e.printf("%s\n", p)
	return nil
}

func runShift(e *env, args []string) error {
	fs := e.newFlags("shift")
	undo := fs.Bool("undo", false, "reverse the shift")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errUsage
	}
	s, err := parseInt("s", fs.Arg(0))
	if err != nil {
		return err
	}
	shift := int(new(big.Int).Mod(s, big.NewInt(26)).Int64())
	msg := strings.Join(fs.Args()[1:], " ")
	if *undo {
		e.printf("%s\n", substitution.Unshift(msg, shift))
	} else {
		e.printf("%s\n", substitution.Shift(msg, shift))
	}
	return nil
}

func runSubstitute(e *env, args []string) error {
	fs := e.newFlags("substitute")
	undo := fs.Bool("undo", false, "reverse the substitution")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errUsage
	}
	key, msg := fs.Arg(0), strings.Join(fs.Args()[1:], " ")
	var out string
	var err error
	if *undo {
		out, err = substitution.Unsubstitute(msg, key)
	} else {
		out, err = substitution.Substitute(msg, key)
	}
	if err != nil {
		return err
	}
	e.printf("%s\n", out)
	return nil
}

func runVersion(e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	e.printf("basiccrypto %s\n", basiccrypto.BuildInfo())
	return nil
}
