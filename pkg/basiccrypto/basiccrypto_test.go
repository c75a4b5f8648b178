package basiccrypto

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestVersionFallback(t *testing.T) {
	if got := ToolkitVersion(); got != "v0.0.0-in-progress" {
		t.Fatalf("expected fallback version, got %q", got)
	}
	if got := BuildInfo(); got != "v0.0.0-in-progress (unknown)" {
		t.Fatalf("unexpected build info %q", got)
	}
}

func TestErrorWrapsSentinel(t *testing.T) {
	err := NewError("modarith.MultiplicativeInverse", ErrDomain, "gcd(%d, %d) = %d", 4, 256, 4)
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain in chain: %v", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Fatalf("unexpected ErrDecode in chain: %v", err)
	}
	var opErr *Error
	if !errors.As(err, &opErr) || opErr.Op != "modarith.MultiplicativeInverse" {
		t.Fatalf("expected *Error with op, got %#v", err)
	}
	want := "modarith.MultiplicativeInverse: no modular inverse: gcd(4, 256) = 4"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}

	bare := NewError("blockcodec.Decode", ErrDecode, "")
	if bare.Error() != "blockcodec.Decode: malformed block sequence" {
		t.Fatalf("unexpected message %q", bare.Error())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError("op", nil) != nil {
		t.Fatalf("nil should stay nil")
	}
	inner := NewError("inner", ErrInvalidParameter, "")
	if got := WrapError("outer", inner); got != inner {
		t.Fatalf("errors that already carry an op should pass through, got %v", got)
	}
	plain := errors.New("boom")
	wrapped := WrapError("outer", plain)
	if !errors.Is(wrapped, plain) || !strings.HasPrefix(wrapped.Error(), "outer: ") {
		t.Fatalf("unexpected wrap %v", wrapped)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"block size", func(c *Config) { c.BlockSize = 0 }},
		{"rounds", func(c *Config) { c.Rounds = -1 }},
		{"witness", func(c *Config) { c.Witness = "half" }},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	data := "block_size: 4\nrounds: 12\nwitness: first-step\nmodulus: fermat4\n"
	if err := os.WriteFile("toolkit.yaml", []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("toolkit.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BlockSize != 4 || cfg.Rounds != 12 || cfg.Witness != WitnessFirstStep || cfg.Modulus != "fermat4" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("missing fields should keep defaults, got log level %q", cfg.LogLevel)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("bad.yaml", []byte("block_size: [1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("invalid.yaml", []byte("block_size: -2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig("bad.yaml"); err == nil || !strings.Contains(err.Error(), "unmarshal YAML") {
		t.Fatalf("expected YAML error, got %v", err)
	}
	if _, err := LoadConfig("invalid.yaml"); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := LoadConfig("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := LoadConfig("../outside.yaml"); err == nil || !strings.Contains(err.Error(), "escapes working directory") {
		t.Fatalf("expected path escape error, got %v", err)
	}
}

func TestSecurePath(t *testing.T) {
	if _, err := SecurePath(""); err == nil {
		t.Fatalf("empty path should be rejected")
	}
	if _, err := SecurePath("a/../../b"); err == nil {
		t.Fatalf("escaping path should be rejected")
	}
	if _, err := SecurePath("a/b/../c.yaml"); err != nil {
		t.Fatalf("nested path rejected: %v", err)
	}
}
