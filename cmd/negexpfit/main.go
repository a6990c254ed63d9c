// negexpfit reports how closely the damper's e^-x approximation tracks the
// real function and optionally searches for better coefficients.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/learnedmm/internal/approx"
	"github.com/Faultbox/learnedmm/internal/logger"
)

func main() {
	lo := flag.Float64("lo", 0, "Start of the sampled range")
	hi := flag.Float64("hi", 10, "End of the sampled range")
	n := flag.Int("n", 1001, "Number of samples")
	fit := flag.Bool("fit", false, "Search for coefficients with a smaller max error")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	for _, named := range []struct {
		name string
		c    approx.Coeffs
	}{
		{"shipped", approx.Shipped},
		{"taylor", approx.Taylor},
	} {
		report, err := approx.Measure(named.c, *lo, *hi, *n)
		if err != nil {
			logger.Fatal("measuring", zap.Error(err))
		}
		fmt.Printf("%-8s A=%.6f B=%.6f  %s\n", named.name, named.c.A, named.c.B, report)
	}

	if !*fit {
		return
	}

	logger.Debug("fitting", zap.Float64("lo", *lo), zap.Float64("hi", *hi), zap.Int("n", *n))
	c, report, err := approx.Fit(*lo, *hi, *n)
	if err != nil {
		logger.Fatal("fitting", zap.Error(err))
	}
	fmt.Printf("%-8s A=%.6f B=%.6f  %s\n", "fitted", c.A, c.B, report)
}
