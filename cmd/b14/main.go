// Command b14 encodes files to base16384 text and back.
//
//	b14 encode [flags] [input] [output]
//	b14 decode [flags] [input] [output]
//
// A missing path or "-" selects stdin or stdout.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("b14 failed")
		os.Exit(1)
	}
}
