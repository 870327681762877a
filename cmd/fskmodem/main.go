// Command fskmodem encodes and decodes audio frequency-shift keyed bit
// streams.
//
// Usage:
//
//	fskmodem encode 10110010 --output message.wav
//	fskmodem decode message.wav
//	fskmodem analyze unknown.wav
//	fskmodem spectrum message.wav --tones 4
//
// The modulation parameters are shared flags on every subcommand and
// default to a 10 kHz carrier with 500 Hz deviation at 100 baud and a
// 44.1 kHz sample rate. A YAML preset file can supply them instead.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
