package main

import (
	"bytes"
	"errors"
	"io"

	"github.com/arloliu/base16384/compress"
	"github.com/arloliu/base16384/errs"
	"github.com/arloliu/base16384/format"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDecodeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [input] [output]",
		Short: "Decode base16384 text to binary data",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return withFiles(args, func(in io.Reader, out io.Writer) error {
				return runDecode(opts, in, out)
			})
		},
	}
}

func runDecode(opts *globalOptions, in io.Reader, out io.Writer) error {
	codec, err := opts.codec()
	if err != nil {
		return err
	}
	ct, err := opts.compression()
	if err != nil {
		return err
	}

	// compressed payloads are decoded in memory, then inflated
	sink := out
	var packed bytes.Buffer
	if ct != format.CompressionNone {
		sink = &packed
	}

	stats, err := codec.Decode(in, sink, 0)
	fields := logrus.Fields{
		"read":     stats.BytesRead,
		"written":  stats.BytesWritten,
		"checksum": stats.Checksum,
	}
	if errors.Is(err, errs.ErrChecksumFailed) {
		logrus.WithFields(fields).Warn("checksum mismatch, output may be corrupted")
		return err
	}
	if err != nil {
		return err
	}
	logrus.WithFields(fields).Debug("decoded")

	if ct == format.CompressionNone {
		return nil
	}

	decompressor, err := compress.GetCodec(ct)
	if err != nil {
		return err
	}
	raw, err := decompressor.Decompress(packed.Bytes())
	if err != nil {
		return err
	}
	_, err = out.Write(raw)

	return err
}
