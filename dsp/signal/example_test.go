package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-fsk/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(1000)
	x, err := g.Sine(125, 1, 5)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0.00 0.71 1.00 0.71 0.00
}

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}
