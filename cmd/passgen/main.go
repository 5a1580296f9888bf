// Command passgen generates passwords from the terminal, either from flags or
// through an interactive form.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

// Config holds the parsed CLI flags.
type Config struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
	Count   int
	Seed    uint64
}

// ParseFlags registers and parses command-line flags on fs.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config

	fs.IntVar(&cfg.Length, "length", 8, fmt.Sprintf("Password length (%d-%d)", form.MinLength, form.MaxLength))
	fs.IntVar(&cfg.Length, "l", 8, "Password length (shorthand)")

	fs.BoolVar(&cfg.Lower, "lower", true, "Include lowercase letters")
	fs.BoolVar(&cfg.Upper, "upper", false, "Include uppercase letters")
	fs.BoolVar(&cfg.Upper, "u", false, "Include uppercase letters (shorthand)")

	fs.BoolVar(&cfg.Digits, "digits", false, "Include digits (0-9)")
	fs.BoolVar(&cfg.Digits, "n", false, "Include digits (shorthand)")

	fs.BoolVar(&cfg.Symbols, "symbols", false, "Include special characters "+crypto.SymbolChars)
	fs.BoolVar(&cfg.Symbols, "s", false, "Include special characters (shorthand)")

	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&cfg.Count, "c", 1, "Number of passwords (shorthand)")

	fs.Uint64Var(&cfg.Seed, "seed", 0, "Deterministic seed, for reproducible output only (0 uses crypto/rand)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func sourceFor(seed uint64) crypto.RandomSource {
	if seed == 0 {
		return crypto.CryptoSource{}
	}
	return crypto.NewSeededSource(seed)
}

// Run generates passwords from cfg and writes one per line to w.
func Run(cfg Config, w io.Writer) error {
	svc := service.NewGeneratorService(sourceFor(cfg.Seed))

	resp, err := svc.Generate(model.GenerateRequest{
		Length:    &cfg.Length,
		Lowercase: &cfg.Lower,
		Uppercase: &cfg.Upper,
		Digits:    &cfg.Digits,
		Symbols:   &cfg.Symbols,
		Count:     cfg.Count,
	})
	if err != nil {
		return err
	}

	passwords := resp.Passwords
	if len(passwords) == 0 {
		passwords = []string{resp.Password}
	}
	for _, pw := range passwords {
		fmt.Fprintln(w, pw)
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		pterm.Warning.Printfln("could not read .env: %s", err)
	}

	// No arguments: interactive form.
	if len(os.Args) < 2 {
		sessions := service.NewSessionService(repository.NewSessionRepository(time.Hour), crypto.CryptoSource{})
		if err := RunForm(context.Background(), sessions, ptermPrompter{}); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		return
	}

	cfg, err := ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := Run(cfg, os.Stdout); err != nil {
		var verr form.ValidationError
		if errors.As(err, &verr) {
			pterm.Error.Printfln("-length: %s", verr.Message)
		} else {
			pterm.Error.Println(err)
		}
		os.Exit(1)
	}
}
