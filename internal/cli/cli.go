// Package cli implements the basiccrypto command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"

	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/logging"
	"github.com/agniv-the-marker/basic-cryptography/pkg/basiccrypto/primality"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	args    string
	summary string
	run     func(e *env, args []string) error
}

func commands() []command {
	cmds := []command{
		{"encode", "[-k n] message", "encode text into integer blocks", runEncode},
		{"decode", "[-k n] blocks", "decode integer blocks into text", runDecode},
		{"affine-encrypt", "-a a -b b [-k n] message", "encrypt text with the affine cipher", runAffineEncrypt},
		{"affine-decrypt", "-a a -b b [-k n] blocks", "decrypt affine ciphertext", runAffineDecrypt},
		{"affine-crack", "-crib text [-tail] [-k n] blocks", "recover affine keys from a known prefix", runAffineCrack},
		{"exp-encrypt", "-key k [-p p] [-k n] message", "encrypt text with the exponentiation cipher", runExpEncrypt},
		{"exp-decrypt", "-key k [-p p] [-k n] blocks", "decrypt exponentiation ciphertext", runExpDecrypt},
		{"exp-search", "[-p p] [-k n] [-ascii] [-limit n] blocks", "try every exponent key", runExpSearch},
		{"gcd", "a b", "greatest common divisor", runGCD},
		{"egcd", "a b", "extended gcd: prints g x y with a*x + b*y = g", runEGCD},
		{"inverse", "a n", "multiplicative inverse of a modulo n", runInverse},
		{"steps", "a b", "division steps taken by the Euclidean algorithm", runSteps},
		{"isprime", "[-probable] n", "primality test", runIsPrime},
		{"nextprime", "[-probable] n", "smallest prime >= n", runNextPrime},
		{"pseudoprime", "[-base b] [-from n]", "smallest strong pseudoprime to a base", runPseudoprime},
		{"factor", "n", "prime factorization by trial division", runFactor},
		{"phi", "n", "Euler's totient", runPhi},
		{"modulus", "[-list] [name|integer]", "resolve an exponentiation modulus", runModulus},
		{"shift", "[-undo] s message", "Caesar shift over a-z", runShift},
		{"substitute", "[-undo] key message", "monoalphabetic substitution over a-z", runSubstitute},
		{"selftest", "", "replay the reference checks", runSelftest},
		{"version", "", "print build information", runVersion},
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].name < cmds[j].name })
	return cmds
}

type env struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
	cfg    basiccrypto.Config
	log    logging.Logger
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.stdout, format, args...)
}

// tester builds a primality tester from the configured rounds and witness.
func (e *env) tester() *primality.Tester {
	w, _ := primality.ParseWitness(e.cfg.Witness)
	return primality.NewTester(primality.WithRounds(e.cfg.Rounds), primality.WithWitness(w))
}

// Run executes the command line in args (without the program name) and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("basiccrypto", flag.ContinueOnError)
	global.SetOutput(stderr)
	var (
		configPath = global.String("config", "", "path to a YAML configuration file")
		logLevel   = global.String("log-level", "", "debug, info, warn or error")
		blockSize  = global.Int("block-size", 0, "default block size in bytes")
		rounds     = global.Int("rounds", -1, "Miller-Rabin rounds")
		witness    = global.String("witness", "", "full or first-step")
		modulus    = global.String("modulus", "", "exponentiation modulus: integer or preset name")
	)
	global.Usage = func() { usage(stderr, global) }
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	cfg := basiccrypto.DefaultConfig()
	if *configPath != "" {
		loaded, err := basiccrypto.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "basiccrypto: load config: %v\n", err)
			return ExitFailure
		}
		cfg = *loaded
	}
	overrideConfig(&cfg, *logLevel, *blockSize, *rounds, *witness, *modulus)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "basiccrypto: %v\n", err)
		return ExitUsage
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)

	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr, global)
		return ExitUsage
	}
	name := rest[0]
	if name == "help" {
		usage(stdout, global)
		return ExitOK
	}
	var cmd *command
	for _, c := range commands() {
		if c.name == name {
			cmd = &c
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "basiccrypto: unknown command %q\n", name)
		usage(stderr, global)
		return ExitUsage
	}

	e := &env{
		ctx:    ctx,
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		log:    logging.NewText(stderr, level).With("command", name),
	}
	e.log.Debug(ctx, "running command", "block_size", cfg.BlockSize, "rounds", cfg.Rounds, "witness", cfg.Witness)

	if err := cmd.run(e, rest[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "usage: basiccrypto %s %s\n", cmd.name, cmd.args)
			return ExitUsage
		}
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "basiccrypto %s: %v\n", name, err)
		return ExitFailure
	}
	return ExitOK
}

func overrideConfig(cfg *basiccrypto.Config, logLevel string, blockSize, rounds int, witness, modulus string) {
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if blockSize != 0 {
		cfg.BlockSize = blockSize
	}
	if rounds >= 0 {
		cfg.Rounds = rounds
	}
	if witness != "" {
		cfg.Witness = witness
	}
	if modulus != "" {
		cfg.Modulus = modulus
	}
}

func usage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprintln(w, "usage: basiccrypto [global flags] <command> [flags] args...")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commands() {
		fmt.Fprintf(w, "  %-15s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w, "\nglobal flags:")
	global.SetOutput(w)
	global.PrintDefaults()
}

// newFlags returns a FlagSet for a subcommand that reports errors to stderr.
func (e *env) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// blockSizeFlag registers -k defaulting to the configured block size.
func (e *env) blockSizeFlag(fs *flag.FlagSet) *int {
	return fs.Int("k", e.cfg.BlockSize, "block size in bytes")
}

func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, basiccrypto.NewError("cli", basiccrypto.ErrInvalidParameter, "%s: not an integer: %q", name, s)
	}
	return v, nil
}

// parseInts parses exactly len(names) positional integers.
func parseInts(args []string, names ...string) ([]*big.Int, error) {
	if len(args) != len(names) {
		return nil, errUsage
	}
	out := make([]*big.Int, len(names))
	for i, n := range names {
		v, err := parseInt(n, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// joinArgs joins the remaining positional arguments into one message.
func joinArgs(args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}
	return strings.Join(args, " "), nil
}
