package viz

import (
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
)

// SpectrumPlot renders the spectral density over its wavelength window.
// Values are normalized to the peak so the axis stays readable across
// the many orders of magnitude S(k,ω) spans between regimes.
func SpectrumPlot(skw []float64, width, height int, caption string) string {
	if len(skw) == 0 {
		return ""
	}
	data := Normalized(skw)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Normalized returns skw scaled so the peak is 1. A flat-zero input
// comes back unchanged.
func Normalized(skw []float64) []float64 {
	out := make([]float64, len(skw))
	copy(out, skw)
	peak := floats.Max(out)
	if peak > 0 {
		floats.Scale(1/peak, out)
	}
	return out
}

// SeriesPlot renders an arbitrary series, used for lnΛ-versus-density
// sweeps.
func SeriesPlot(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
