package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fsk/fsk"
	"github.com/cwbudde/algo-fsk/stats/timedomain"
)

var (
	decodeNoPrefilter bool
	decodeOrder       int
	decodeGoertzel    bool
	decodeWindow      int
	decodeHop         int
	decodeMargin      float64
	decodeTrace       string
	decodeVerbose     bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Recover the bit string from an FSK recording",
	Long: `Decode reads a WAV or CSV recording and prints the recovered bit string
on standard output. The modulation parameter flags must match the
transmitter; analyze estimates them when unknown.

Bit periods without a usable analysis frame, usually from a recording
cut off mid-bit, are printed as '?' and decode exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	flags := decodeCmd.Flags()
	flags.BoolVar(&decodeNoPrefilter, "no-prefilter", false, "skip the bandpass prefilter")
	flags.IntVar(&decodeOrder, "order", 4, "bandpass prefilter order")
	flags.BoolVar(&decodeGoertzel, "goertzel", false, "per-bit Goertzel tone detection instead of the spectral pipeline")
	flags.IntVar(&decodeWindow, "window", 0, "analysis window size, a power of two (default fits the bit period)")
	flags.IntVar(&decodeHop, "hop", 0, "analysis frame advance (default window/4)")
	flags.Float64Var(&decodeMargin, "margin", 0, "peak search margin around the tone pair in Hz")
	flags.StringVar(&decodeTrace, "trace", "", "write per-frame and per-bit decisions to a CSV file")
	flags.BoolVarP(&decodeVerbose, "verbose", "v", false, "log time-domain input statistics")

	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	params, ratePinned, err := loadParams()
	if err != nil {
		return err
	}

	samples, rate, err := readSamples(args[0], params.SampleRate, ratePinned)
	if err != nil {
		return err
	}
	params.SampleRate = rate

	logParams(params)

	if decodeVerbose {
		st := timedomain.Calculate(samples)
		log.Info("input",
			"samples", st.Length,
			"duration", fmt.Sprintf("%.4fs", float64(st.Length)/rate),
			"rms", fmt.Sprintf("%.4f", st.RMS),
			"peak", fmt.Sprintf("%.4f", st.Peak),
			"dc", fmt.Sprintf("%.5f", st.DC),
			"zero-crossings", st.ZeroCrossings)
	}

	var opts []fsk.DemodOption
	if !decodeNoPrefilter {
		opts = append(opts, fsk.WithBandpass(decodeOrder))
	}

	if decodeGoertzel {
		opts = append(opts, fsk.WithDiscriminator(fsk.DiscriminatorGoertzel))
	}

	if cmd.Flags().Changed("window") {
		opts = append(opts, fsk.WithWindowSize(decodeWindow))
	}

	if cmd.Flags().Changed("hop") {
		opts = append(opts, fsk.WithHopSize(decodeHop))
	}

	if cmd.Flags().Changed("margin") {
		opts = append(opts, fsk.WithSearchMargin(decodeMargin))
	}

	var trace *traceObserver
	if decodeTrace != "" {
		f, err := os.Create(decodeTrace)
		if err != nil {
			return err
		}
		defer f.Close()

		trace = newTraceObserver(f, params.SamplesPerBit())
		opts = append(opts, fsk.WithObserver(trace))
	}

	dem, err := fsk.NewDemodulator(params, opts...)
	if err != nil {
		return err
	}

	bits, err := dem.Demodulate(samples)

	if trace != nil {
		if err := trace.flush(); err != nil {
			log.Warn("trace file incomplete", "err", err)
		}
	}

	var incomplete *fsk.IncompleteDecodeError
	if errors.As(err, &incomplete) {
		fmt.Fprintln(cmd.OutOrStdout(), placeholderPattern(incomplete))
		return err
	}

	if err != nil {
		return err
	}

	log.Info("decoded", "bits", len(bits))
	fmt.Fprintln(cmd.OutOrStdout(), bits.String())

	return nil
}

// placeholderPattern renders a partial decode with '?' at the positions
// that had no analysis frames.
func placeholderPattern(e *fsk.IncompleteDecodeError) string {
	out := make([]byte, e.BitCount)
	for i := range out {
		out[i] = '?'
	}

	for _, d := range e.Decisions {
		out[d.Index] = '0' + d.Bit
	}

	return string(out)
}

// traceObserver streams demodulation events to CSV, one row per analysis
// frame and per bit decision, interleaved in processing order.
type traceObserver struct {
	w   *csv.Writer
	spb int
}

func newTraceObserver(w io.Writer, samplesPerBit int) *traceObserver {
	t := &traceObserver{w: csv.NewWriter(w), spb: samplesPerBit}
	_ = t.w.Write([]string{"record", "offset", "center", "index", "frequency", "magnitude", "frames", "bit"})

	return t
}

func (t *traceObserver) Frame(f fsk.FrequencyFrame) {
	_ = t.w.Write([]string{
		"frame",
		strconv.Itoa(f.Offset),
		strconv.Itoa(f.Center),
		strconv.Itoa(f.Center / t.spb),
		strconv.FormatFloat(f.Frequency, 'f', 3, 64),
		strconv.FormatFloat(f.Magnitude, 'g', 6, 64),
		"", "",
	})
}

func (t *traceObserver) Decision(d fsk.BitDecision) {
	_ = t.w.Write([]string{
		"decision",
		"", "",
		strconv.Itoa(d.Index),
		strconv.FormatFloat(d.Frequency, 'f', 3, 64),
		"",
		strconv.Itoa(d.Frames),
		strconv.Itoa(int(d.Bit)),
	})
}

func (t *traceObserver) flush() error {
	t.w.Flush()

	return t.w.Error()
}
