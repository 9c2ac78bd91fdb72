package main

import (
	"fmt"
	"os"

	"github.com/arloliu/base16384/format"
	"github.com/arloliu/base16384/stream"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options shared by every subcommand
type globalOptions struct {
	sumRemain bool
	sumForce  bool
	safe      bool
	buffer    int
	compress  string
	verbose   bool
}

func (o *globalOptions) register(flags *pflag.FlagSet) {
	flags.BoolVar(&o.sumRemain, "sum-remain", false, "Checksum the tail group")
	flags.BoolVar(&o.sumForce, "sum-force", false, "Checksum the whole stream")
	flags.BoolVar(&o.safe, "safe", true, "Validate every symbol while decoding")
	flags.IntVar(&o.buffer, "buffer", 0, "Chunk size in bytes, 0 for the default")
	flags.StringVar(&o.compress, "compress", "none", "Pre-compression: none, zstd, s2 or lz4")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Print debug logs")
}

func (o *globalOptions) flags() format.Flag {
	var f format.Flag
	if o.sumRemain {
		f |= format.FlagSumCheckOnRemain
	}
	if o.sumForce {
		f |= format.FlagDoSumCheckForcely
	}

	return f
}

func (o *globalOptions) compression() (format.CompressionType, error) {
	ct, ok := format.ParseCompressionType(o.compress)
	if !ok {
		return 0, fmt.Errorf("unknown compression %q", o.compress)
	}

	return ct, nil
}

// codec builds the stream codec selected by the flags.
func (o *globalOptions) codec() (stream.Codec, error) {
	opts := []stream.Option{stream.WithFlags(o.flags())}
	if o.buffer > 0 {
		opts = append(opts,
			stream.WithEncodeBufferSize(o.buffer),
			stream.WithDecodeBufferSize(o.buffer),
		)
	}

	return stream.CreateCodec(o.safe, opts...)
}

func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "b14",
		Short: "Encode binary data as base16384 UTF-16BE text",
		Long: `b14 converts binary data to base16384 text and back.

Every 7 bytes become 4 UTF-16BE code units drawn from U+4E00..U+8DFF, so
the text is 8/7 the size of the input. The checksum flags must match on
both sides; the header written by --head is detected automatically.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging(opts.verbose)
		},
	}
	opts.register(root.PersistentFlags())

	root.AddCommand(newEncodeCommand(opts), newDecodeCommand(opts))

	return root
}
