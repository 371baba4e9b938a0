// Command bytewords converts between binary data and checksummed bytewords text.
//
//	bytewords encode secret.bin
//	bytewords decode --style uri able-tied-also-webs-lung | xxd
//	echo 00010280ff | bytewords encode --hex --style minimal
package main

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Debug("command_failed")
		os.Exit(1)
	}
}
