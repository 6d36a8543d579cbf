// Command pbkdf2pass hashes and verifies passwords from the command line.
//
// Usage:
//
//	pbkdf2pass hash [-cost N]              < password
//	pbkdf2pass verify -hash TOKEN          < password
//	pbkdf2pass info -hash TOKEN
//	pbkdf2pass needs-rehash -hash TOKEN [-cost N]
//
// Passwords are read from the first line of stdin. Settings come from .env
// and the environment (PASSWORD_WORK_FACTOR, PASSWORD_LOG_LEVEL).
//
// verify exits 0 on match, 1 on mismatch and 2 on a malformed hash or usage
// error.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hasbyte1/go-password/config"
	"github.com/hasbyte1/go-password/internal/logger"
	"github.com/hasbyte1/go-password/password"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	if err := logger.InitializeLogger(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	cfg.Apply()

	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	logger.Sync()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: pbkdf2pass <hash|verify|info|needs-rehash> [flags]")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "hash":
		return runHash(args[1:], stdin, stdout, stderr)
	case "verify":
		return runVerify(args[1:], stdin, stdout, stderr)
	case "info":
		return runInfo(args[1:], stdout, stderr)
	case "needs-rehash":
		return runNeedsRehash(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runHash(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet("hash", stderr)
	cost := fs.Int("cost", 0, "work factor (log2 iterations); 0 uses the configured default")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	raw, err := readPassword(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	workFactor := *cost
	if workFactor == 0 {
		workFactor = password.DefaultWorkFactor()
	}
	p, err := password.HashWithWorkFactor(raw, workFactor)
	if err != nil {
		logger.Error("hashing failed", logger.LoggerOptions{Key: "error", Data: err},
			logger.LoggerOptions{Key: "work_factor", Data: workFactor})
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger.Info("password hashed", logger.LoggerOptions{Key: "work_factor", Data: workFactor})
	fmt.Fprintln(stdout, p.String())
	return exitOK
}

func runVerify(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet("verify", stderr)
	hash := fs.String("hash", "", "encoded hash to verify against")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *hash == "" {
		fmt.Fprintln(stderr, "verify: -hash is required")
		return exitUsage
	}
	raw, err := readPassword(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	ok, err := password.New(*hash).Match(raw)
	if errors.Is(err, password.ErrMalformedHash) {
		logger.Warning("malformed password hash", logger.LoggerOptions{Key: "error", Data: err})
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if !ok {
		logger.Info("password mismatch")
		fmt.Fprintln(stdout, "mismatch")
		return exitMismatch
	}
	logger.Info("password verified")
	fmt.Fprintln(stdout, "match")
	return exitOK
}

func runInfo(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("info", stderr)
	hash := fs.String("hash", "", "encoded hash to inspect")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	p := password.New(*hash)
	wf, err := p.WorkFactor()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	fmt.Fprintf(stdout, "scheme=pbkdf2-sha256 work_factor=%d iterations=%d\n", wf, 1<<wf)
	return exitOK
}

func runNeedsRehash(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("needs-rehash", stderr)
	hash := fs.String("hash", "", "encoded hash to inspect")
	cost := fs.Int("cost", 0, "target work factor; 0 uses the configured default")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	workFactor := *cost
	if workFactor == 0 {
		workFactor = password.DefaultWorkFactor()
	}
	needs, err := password.New(*hash).NeedsRehash(workFactor)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	fmt.Fprintln(stdout, needs)
	return exitOK
}

// readPassword returns the first line of r without its line terminator.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if err != nil && line == "" {
		return "", errors.New("reading password: no input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
