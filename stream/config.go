package stream

import (
	"fmt"

	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
	"github.com/arloliu/base16384/group"
	"github.com/arloliu/base16384/internal/options"
)

// Chunk capacities. Both are performance knobs only; any value in range
// produces the same output.
const (
	// ENCBUFSZ is the default number of raw bytes read per encode chunk.
	ENCBUFSZ = group.RawSize * 64 * 1024
	// DECBUFSZ is the default number of encoded bytes read per decode chunk.
	DECBUFSZ = group.EncodedSize * 64 * 1024
	// MaxBufferSize bounds both chunk capacities.
	MaxBufferSize = 64 * 1024 * 1024
)

// Config holds the tunables shared by both codec variants.
type Config struct {
	encodeBufferSize int
	decodeBufferSize int
	flags            format.Flag
}

// Option configures a codec.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		encodeBufferSize: ENCBUFSZ,
		decodeBufferSize: DECBUFSZ,
	}
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EncodeBufferSize returns the encode chunk capacity in raw bytes.
func (c *Config) EncodeBufferSize() int { return c.encodeBufferSize }

// DecodeBufferSize returns the decode chunk capacity in encoded bytes.
func (c *Config) DecodeBufferSize() int { return c.decodeBufferSize }

// Flags returns the integrity flags.
func (c *Config) Flags() format.Flag { return c.flags }

// WithEncodeBufferSize sets the number of raw bytes read per encode chunk.
// The size is rounded down to a multiple of 7 and must be in [7, MaxBufferSize].
func WithEncodeBufferSize(n int) Option {
	return options.Named("WithEncodeBufferSize", func(c *Config) error {
		if n < group.RawSize || n > MaxBufferSize {
			return fmt.Errorf("%w: encode buffer size %d out of range [%d, %d]", errs.ErrInvalidOption, n, group.RawSize, MaxBufferSize)
		}
		c.encodeBufferSize = n / group.RawSize * group.RawSize

		return nil
	})
}

// WithDecodeBufferSize sets the number of encoded bytes read per decode chunk.
// The size is rounded down to a multiple of 8 and must be in [8, MaxBufferSize].
func WithDecodeBufferSize(n int) Option {
	return options.Named("WithDecodeBufferSize", func(c *Config) error {
		if n < group.EncodedSize || n > MaxBufferSize {
			return fmt.Errorf("%w: decode buffer size %d out of range [%d, %d]", errs.ErrInvalidOption, n, group.EncodedSize, MaxBufferSize)
		}
		c.decodeBufferSize = n / group.EncodedSize * group.EncodedSize

		return nil
	})
}

// WithFlags replaces the integrity flags. FlagNoHeader is ignored by the
// codecs, whose Encode takes an explicit writeHead argument.
func WithFlags(f format.Flag) Option {
	return options.Named("WithFlags", func(c *Config) error {
		const known = format.FlagNoHeader | format.FlagSumCheckOnRemain | format.FlagDoSumCheckForcely
		if f&^known != 0 {
			return fmt.Errorf("%w: unknown flag bits %#x", errs.ErrInvalidOption, uint8(f&^known))
		}
		c.flags = f

		return nil
	})
}

// WithSumCheckOnRemain enables a checksum trailer over the tail group.
func WithSumCheckOnRemain() Option {
	return options.NoError(func(c *Config) {
		c.flags |= format.FlagSumCheckOnRemain
	})
}

// WithSumCheckForcely enables a checksum trailer over the whole stream.
func WithSumCheckForcely() Option {
	return options.NoError(func(c *Config) {
		c.flags |= format.FlagDoSumCheckForcely
	})
}
