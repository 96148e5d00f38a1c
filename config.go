package wacodec

import (
	"log/slog"

	"github.com/weakauras/wacodec/compress"
	"github.com/weakauras/wacodec/format"
	"github.com/weakauras/wacodec/internal/options"
)

// OutputVersion selects the prefix and serializer Encode uses.
type OutputVersion = format.StringVersion

const (
	// OutputDeflate produces a `!`-prefixed string: DEFLATE over the
	// textual (V1) serializer.
	OutputDeflate = format.VersionDeflate
	// OutputV2 produces a `!WA:2!`-prefixed string: DEFLATE over the
	// dense binary (V2) serializer.
	OutputV2 = format.VersionV2
)

// Config holds the runtime-tunable knobs Decode and Encode accept through
// functional Option values. Every field has a documented default reached
// via DefaultConfig, so a bare call with no options is always valid.
type Config struct {
	// MaxSize caps the number of decompressed bytes Decode will accept
	// before failing with ErrDataExceedsMaxSize.
	MaxSize int

	// Logger receives structured events for each pipeline stage
	// transition. Defaults to a handler that discards everything, so the
	// hot path never builds a slog.Record unless a caller opts in.
	Logger *slog.Logger

	// BorrowStrings, when true (the default), lets Decode hand the
	// decompressed bytes straight to the deserializer; when false, Decode
	// first makes an independent copy of them. The deserializers copy
	// every string's bytes into a new Go string either way, so decoded
	// strings never alias the input or Decode's scratch buffers.
	BorrowStrings bool
}

// DefaultConfig returns the Config Decode and Encode use when no options
// are given: a 16 MiB decompression cap, a discarding logger, and
// BorrowStrings set to true.
func DefaultConfig() *Config {
	return &Config{
		MaxSize:       compress.DefaultMaxDecompressedSize,
		Logger:        slog.New(slog.DiscardHandler),
		BorrowStrings: true,
	}
}

// Option configures a Config; see WithMaxSize, WithLogger, and
// WithBorrowStrings.
type Option = options.Option[*Config]

// WithMaxSize overrides the decompressed-size cap.
func WithMaxSize(n int) Option {
	return options.NoError(func(c *Config) {
		c.MaxSize = n
	})
}

// WithLogger installs a *slog.Logger to receive pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.Logger = logger
	})
}

// WithBorrowStrings sets Config.BorrowStrings, which toggles the copy of
// the decompressed bytes Decode makes before deserializing.
func WithBorrowStrings(borrow bool) Option {
	return options.NoError(func(c *Config) {
		c.BorrowStrings = borrow
	})
}

func applyOptions(opts []Option) (*Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
