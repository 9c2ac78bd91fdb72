package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const stdioPath = "-"

// openInput opens the input named by args[0], or stdin.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == stdioPath {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(args[0])
}

// createOutput creates the output named by args[1], or stdout.
func createOutput(args []string) (io.WriteCloser, error) {
	if len(args) < 2 || args[1] == stdioPath {
		return nopWriteCloser{os.Stdout}, nil
	}

	return os.Create(args[1])
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// withFiles opens the input and output for fn and closes both afterwards.
func withFiles(args []string, fn func(in io.Reader, out io.Writer) error) (err error) {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logrus.WithError(cerr).Debug("closing input")
		}
	}()

	out, err := createOutput(args)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(in, out)
}
