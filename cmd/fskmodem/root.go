package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fsk/fsk"
)

var (
	logLevel   string
	quiet      bool
	paramsFile string

	frequency  float64
	deviation  float64
	baudRate   float64
	sampleRate float64
)

var rootCmd = &cobra.Command{
	Use:   "fskmodem",
	Short: "Audio FSK modem",
	Long: `fskmodem turns bit strings into audio frequency-shift keyed waveforms
and recovers bit strings from recordings.

Bit 0 is transmitted at frequency-deviation, bit 1 at
frequency+deviation. The decoder assumes the recording starts on a bit
boundary and was produced with the same parameters; use the analyze
subcommand when they are unknown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&paramsFile, "params", "", "YAML file with modulation parameters; explicit flags win")

	defaults := fsk.DefaultParams()
	pf.Float64Var(&frequency, "frequency", defaults.CenterFreq, "carrier center frequency in Hz")
	pf.Float64Var(&deviation, "deviation", defaults.Deviation, "frequency deviation in Hz")
	pf.Float64Var(&baudRate, "baud-rate", defaults.BaudRate, "bits per second")
	pf.Float64Var(&sampleRate, "sample-rate", defaults.SampleRate, "sample rate in Hz")
}

func setupLogging() error {
	if quiet {
		log.SetLevel(log.ErrorLevel)
		return nil
	}

	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", logLevel)
	}
	log.SetLevel(lvl)

	return nil
}

// flagChanged reports whether a persistent flag was set on the command line.
func flagChanged(name string) bool {
	f := rootCmd.PersistentFlags().Lookup(name)
	return f != nil && f.Changed
}

// loadParams merges the flag values with the optional preset file.
// Explicitly set flags override preset values, which override the
// defaults. The second result reports whether the sample rate was pinned
// by flag or preset rather than left at its default.
func loadParams() (fsk.Params, bool, error) {
	p := fsk.Params{
		CenterFreq: frequency,
		Deviation:  deviation,
		BaudRate:   baudRate,
		SampleRate: sampleRate,
	}

	rateSet := flagChanged("sample-rate")

	if paramsFile == "" {
		return p, rateSet, nil
	}

	preset, err := loadPreset(paramsFile)
	if err != nil {
		return fsk.Params{}, false, err
	}

	apply := func(flag string, dst *float64, src *float64) {
		if src != nil && !flagChanged(flag) {
			*dst = *src
		}
	}
	apply("frequency", &p.CenterFreq, preset.Frequency)
	apply("deviation", &p.Deviation, preset.Deviation)
	apply("baud-rate", &p.BaudRate, preset.BaudRate)
	apply("sample-rate", &p.SampleRate, preset.SampleRate)

	return p, rateSet || preset.SampleRate != nil, nil
}

func logParams(p fsk.Params) {
	log.Info("parameters",
		"frequency", p.CenterFreq,
		"deviation", p.Deviation,
		"baud", p.BaudRate,
		"rate", p.SampleRate,
		"samples/bit", p.SamplesPerBit())
}
