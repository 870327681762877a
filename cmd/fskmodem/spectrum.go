package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fsk/dsp/spectrum"
	"github.com/cwbudde/algo-fsk/dsp/window"
	"github.com/cwbudde/algo-fsk/measure/tones"
	freqstats "github.com/cwbudde/algo-fsk/stats/frequency"
)

var (
	spectrumTones  int
	spectrumMinSep float64
	spectrumWindow string
)

var windowTypesByName = map[string]window.Type{
	"rectangular":     window.TypeRectangular,
	"hann":            window.TypeHann,
	"hamming":         window.TypeHamming,
	"blackman":        window.TypeBlackman,
	"blackman-harris": window.TypeBlackmanHarris,
	"flat-top":        window.TypeFlatTop,
}

var spectrumCmd = &cobra.Command{
	Use:   "spectrum <file>",
	Short: "List the dominant tones of a recording",
	Long: `Spectrum transforms the whole recording and lists its strongest spectral
components together with spectral shape statistics. For CSV input the
sample rate comes from --sample-rate.`,
	Args: cobra.ExactArgs(1),
	RunE: runSpectrum,
}

func init() {
	flags := spectrumCmd.Flags()
	flags.IntVarP(&spectrumTones, "tones", "n", 10, "number of dominant tones to list")
	flags.Float64Var(&spectrumMinSep, "min-separation", 0, "minimum spacing between listed tones in Hz (default twice the spectral resolution)")
	flags.StringVar(&spectrumWindow, "window", "hann", "analysis window: "+strings.Join(windowNames(), ", "))

	rootCmd.AddCommand(spectrumCmd)
}

func windowNames() []string {
	names := make([]string, 0, len(windowTypesByName))
	for name := range windowTypesByName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	params, ratePinned, err := loadParams()
	if err != nil {
		return err
	}

	samples, rate, err := readSamples(args[0], params.SampleRate, ratePinned)
	if err != nil {
		return err
	}

	typ, ok := windowTypesByName[strings.ToLower(spectrumWindow)]
	if !ok {
		return fmt.Errorf("unknown window %q (available: %s)",
			spectrumWindow, strings.Join(windowNames(), ", "))
	}

	result, err := tones.Analyze(samples, tones.Config{
		SampleRate:    rate,
		MaxTones:      spectrumTones,
		MinSeparation: spectrumMinSep,
		WindowType:    typ,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tFrequency\tMagnitude\n")

	for i, tone := range result.Tones {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, formatFrequency(tone.Frequency), formatMagnitude(tone.Magnitude))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	st := freqstats.Calculate(result.Magnitudes, rate)

	fmt.Fprintln(out)

	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "peak\t%s\n", formatFrequency(spectrum.BinFrequency(st.MaxBin, result.FFTSize, rate)))
	fmt.Fprintf(tw, "centroid\t%s\n", formatFrequency(st.Centroid))
	fmt.Fprintf(tw, "spread\t%s\n", formatFrequency(st.Spread))
	fmt.Fprintf(tw, "flatness\t%.4f\n", st.Flatness)
	fmt.Fprintf(tw, "rolloff\t%s\n", formatFrequency(st.Rolloff))
	fmt.Fprintf(tw, "resolution\t%s\n", formatFrequency(result.BinHz))

	return tw.Flush()
}
