package export

import (
	"fmt"
	"strings"
)

// SpectrumToSVG renders the spectrum as an SVG polyline on a dark
// background. Wavelengths map to x and skw to y, each padded by 10% of
// its range.
func SpectrumToSVG(wavelengths, skw []float64, width, height int, strokeColor string) string {
	if len(wavelengths) < 2 || len(wavelengths) != len(skw) {
		return ""
	}

	minX, maxX := wavelengths[0], wavelengths[0]
	minY, maxY := skw[0], skw[0]
	for i := range wavelengths {
		if wavelengths[i] < minX {
			minX = wavelengths[i]
		}
		if wavelengths[i] > maxX {
			maxX = wavelengths[i]
		}
		if skw[i] < minY {
			minY = skw[i]
		}
		if skw[i] > maxY {
			maxY = skw[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range wavelengths {
		x := (wavelengths[i] - minX) / rangeX * float64(width)
		y := float64(height) - (skw[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
