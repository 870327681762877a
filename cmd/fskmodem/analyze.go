package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fsk/measure/tones"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Estimate FSK parameters from a recording",
	Long: `Analyze estimates carrier center frequency and deviation of a recording
from its two strongest spectral tones, without knowing the transmission
parameters. The recording must contain at least one 0 and one 1 bit.

The baud rate cannot be recovered this way and must still be passed to
decode.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	params, ratePinned, err := loadParams()
	if err != nil {
		return err
	}

	samples, rate, err := readSamples(args[0], params.SampleRate, ratePinned)
	if err != nil {
		return err
	}

	est, err := tones.EstimateFSK(samples, rate)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "space\t%s\n", formatFrequency(est.SpaceFreq))
	fmt.Fprintf(tw, "mark\t%s\n", formatFrequency(est.MarkFreq))
	fmt.Fprintf(tw, "center\t%s\n", formatFrequency(est.CenterFreq))
	fmt.Fprintf(tw, "deviation\t%s\n", formatFrequency(est.Deviation))

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\ntry: fskmodem decode --frequency %.0f --deviation %.0f %s\n",
		est.CenterFreq, est.Deviation, args[0])

	return nil
}
