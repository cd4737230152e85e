// Package graph renders numeric series as character-cell line graphs.
//
// Every terminal character covers a 2x2 block of logical pixels, so a grid of
// n by m cells has 2n by 2m pixels. Series are projected onto the pixel grid
// through "nice" axis scales and composed into one string together with the
// axis labels and a colored legend.
package graph

import (
	"fmt"
	"math"
	"strconv"
)

// Scale is an axis scale derived from a data range.
type Scale struct {
	// Magnitude is the order of magnitude of the range (floor of log10 of its span).
	Magnitude int
	// Factor is 10^Magnitude, the rounding unit for Low and High.
	Factor float64
	// Low and High are the data bounds rounded outward to multiples of Factor.
	Low, High float64
	// Span is High - Low.
	Span float64
	// Ticks are the labeled values, strictly ascending.
	Ticks []float64
	// Min and Max are the first and last tick; all coordinate mapping uses them.
	Min, Max float64
}

// NewScale builds the tick scale for [min, max]. It fails with
// ErrDegenerateRange unless max > min, both are finite, and the range is
// neither too wide nor too narrow to be represented as a float64.
func NewScale(min, max float64) (Scale, error) {
	if !finite(min, max, max-min) || max <= min {
		return Scale{}, fmt.Errorf("%w: [%v, %v]", ErrDegenerateRange, min, max)
	}

	magnitude := orderOfMagnitude(max - min)
	factor := math.Pow(10, float64(magnitude))
	low := math.Floor(min/factor) * factor
	high := math.Ceil(max/factor) * factor
	span := high - low
	if factor == 0 || !finite(factor, low, high, span) {
		return Scale{}, fmt.Errorf("%w: [%v, %v] out of float range", ErrDegenerateRange, min, max)
	}

	count := math.Round(span / factor)
	if count == 1 {
		// Both bounds sit on an exact decade: count in tenths instead.
		magnitude--
		factor /= 10
		count = 10
	}
	steps := count

	switch {
	case count == 10:
		count, steps = 5, 5
	case count == 2:
		count, steps = 4, 4
	case count > 6:
		count = count/2 + 0.5
		steps = steps / 2
	}

	ticks := make([]float64, 0, int(count)+1)
	for i := 0.0; i <= count; i++ {
		ticks = append(ticks, roundTo(low+i*span/steps, magnitude-1))
	}

	for i, v := range ticks {
		if !finite(v) || (i > 0 && v <= ticks[i-1]) {
			return Scale{}, fmt.Errorf("%w: [%v, %v] out of float range", ErrDegenerateRange, min, max)
		}
	}
	if !finite(ticks[len(ticks)-1] - ticks[0]) {
		return Scale{}, fmt.Errorf("%w: [%v, %v] out of float range", ErrDegenerateRange, min, max)
	}

	return Scale{
		Magnitude: magnitude,
		Factor:    factor,
		Low:       low,
		High:      high,
		Span:      span,
		Ticks:     ticks,
		Min:       ticks[0],
		Max:       ticks[len(ticks)-1],
	}, nil
}

// Labels returns the tick values formatted for display.
func (s Scale) Labels() []string {
	labels := make([]string, len(s.Ticks))
	for i, v := range s.Ticks {
		labels[i] = FormatTick(v)
	}
	return labels
}

// FormatTick formats a tick value with the shortest exact decimal form.
func FormatTick(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// orderOfMagnitude returns floor(log10(d)), corrected so that
// 10^m <= d < 10^(m+1) holds despite floating point error in Log10.
func orderOfMagnitude(d float64) int {
	m := int(math.Floor(math.Log10(d)))
	if math.Pow(10, float64(m+1)) <= d {
		m++
	} else if math.Pow(10, float64(m)) > d {
		m--
	}
	return m
}

// roundTo rounds v to the decimal digit at position digit: the nearest
// 10^digit when digit >= 1, otherwise -digit decimal places.
func roundTo(v float64, digit int) float64 {
	if digit < 1 {
		p := math.Pow(10, float64(-digit))
		return math.Round(v*p) / p
	}
	f := math.Pow(10, float64(digit))
	return math.Round(v/f) * f
}
