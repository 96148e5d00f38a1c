// Command wacli decodes a WeakAuras import/export string and prints the
// resulting value tree. It is example tooling, not part of the library's
// public API.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/weakauras/wacodec"
)

func main() {
	var (
		inPath  = flag.String("in", "", "path to a file holding the WeakAuras string (default: stdin)")
		verbose = flag.Bool("v", false, "log pipeline stage diagnostics and total decode time")
		maxSize = flag.Int("max-size", 0, "cap on decompressed bytes, 0 uses the library default")
	)
	flag.Parse()

	if err := run(*inPath, *verbose, *maxSize, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "wacli:", err)
		os.Exit(1)
	}
}

func run(inPath string, verbose bool, maxSize int, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	if inPath != "" {
		data, err = os.ReadFile(inPath)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var opts []wacodec.Option
	if maxSize > 0 {
		opts = append(opts, wacodec.WithMaxSize(maxSize))
	}
	if verbose {
		logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, wacodec.WithLogger(logger))
	}

	start := time.Now()
	v, err := wacodec.Decode(data, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if v == nil {
		fmt.Fprintln(stdout, "<empty>")
		return nil
	}

	fmt.Fprintf(stdout, "%#v\n", v)
	if verbose {
		fmt.Fprintf(stdout, "decoded in %s\n", elapsed)
	}
	return nil
}
