package main

import "fmt"

// formatFrequency renders a frequency in the most readable unit.
func formatFrequency(hz float64) string {
	switch {
	case hz >= 1e6:
		return fmt.Sprintf("%.2f MHz", hz/1e6)
	case hz >= 1e3:
		return fmt.Sprintf("%.2f kHz", hz/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", hz)
	}
}

// formatMagnitude renders a spectral magnitude with K/M suffixes.
func formatMagnitude(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.4f M", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.4f K", v/1e3)
	default:
		return fmt.Sprintf("%.4f", v)
	}
}
