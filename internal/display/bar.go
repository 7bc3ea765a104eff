package display

import (
	"fmt"
	"strings"
)

const defaultBarWidth = 20

// Bar renders a progress fraction as a fixed-width text bar with a
// percentage, e.g. "[=====>              ]  28%".
func Bar(fraction float64) string {
	return BarWidth(fraction, defaultBarWidth)
}

// BarWidth renders a progress bar of the given inner width. Fractions
// outside [0, 1] are clamped.
func BarWidth(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if width < 1 {
		width = 1
	}

	filled := int(fraction * float64(width))
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			b.WriteByte('=')
		case i == filled && fraction < 1:
			b.WriteByte('>')
		default:
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return fmt.Sprintf("%s %3.0f%%", b.String(), fraction*100)
}

// HealthBar renders a current/max pair as a bar with the raw numbers,
// e.g. "[========            ]  40/100".
func HealthBar(current, max int) string {
	frac := 0.0
	if max > 0 {
		frac = float64(current) / float64(max)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(frac * defaultBarWidth)
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < defaultBarWidth; i++ {
		if i < filled {
			b.WriteByte('=')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return fmt.Sprintf("%s %d/%d", b.String(), current, max)
}
