package audiofile

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// WriteCSV stores samples as "time,amplitude" rows with a header, one row
// per sample.
func WriteCSV(path string, samples []float64, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return ErrInvalidSampleRate
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}

	w := csv.NewWriter(f)

	records := make([][]string, 0, len(samples)+1)
	records = append(records, []string{"time", "amplitude"})

	for i, s := range samples {
		records = append(records, []string{
			strconv.FormatFloat(float64(i)/sampleRate, 'f', 6, 64),
			strconv.FormatFloat(s, 'g', -1, 64),
		})
	}

	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: write csv: %w", err)
	}

	return f.Close()
}

// ReadCSV loads amplitudes from a CSV file. The last column of each row is
// parsed; a leading header row is skipped.
func ReadCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("audiofile: read csv: %w", err)
	}

	samples := make([]float64, 0, len(records))

	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(rec[len(rec)-1]), 64)
		if err != nil {
			if i == 0 {
				continue
			}

			return nil, fmt.Errorf("audiofile: csv row %d: %w", i+1, err)
		}

		samples = append(samples, v)
	}

	return samples, nil
}
