package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/base16384/compress"
	"github.com/arloliu/base16384/format"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEncodeCommand(opts *globalOptions) *cobra.Command {
	var writeHead bool

	cmd := &cobra.Command{
		Use:   "encode [input] [output]",
		Short: "Encode binary data to base16384 text",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return withFiles(args, func(in io.Reader, out io.Writer) error {
				return runEncode(opts, writeHead, in, out)
			})
		},
	}
	cmd.Flags().BoolVar(&writeHead, "head", false, "Prefix the output with the UTF-16BE byte order mark")

	return cmd
}

func runEncode(opts *globalOptions, writeHead bool, in io.Reader, out io.Writer) error {
	codec, err := opts.codec()
	if err != nil {
		return err
	}
	ct, err := opts.compression()
	if err != nil {
		return err
	}

	src := in
	if ct != format.CompressionNone {
		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		packed, cstats, err := compress.CompressWithStats(ct, raw)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"algorithm": ct,
			"original":  cstats.OriginalSize,
			"packed":    cstats.CompressedSize,
			"savings":   fmt.Sprintf("%.1f%%", cstats.SpaceSavings()),
		}).Debug("compressed input")
		src = bytes.NewReader(packed)
	}

	stats, err := codec.Encode(src, out, writeHead, 0)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"read":     stats.BytesRead,
		"written":  stats.BytesWritten,
		"ratio":    fmt.Sprintf("%.3f", stats.ExpansionRatio()),
		"checksum": stats.Checksum,
		"flags":    opts.flags(),
	}).Debug("encoded")

	return nil
}
