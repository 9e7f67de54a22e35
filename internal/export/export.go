// Package export writes stored spectrum runs to interchange formats:
// CSV, indented JSON, and a standalone SVG plot.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/plasmakit/plasmakit/internal/store"
)

// SpectrumData is the JSON export shape: run metadata plus the sampled
// spectrum.
type SpectrumData struct {
	Meta        store.RunMetadata `json:"meta"`
	Wavelengths []float64         `json:"wavelengths_m"`
	Skw         []float64         `json:"skw_s_per_rad"`
}

func WriteJSON(w io.Writer, meta store.RunMetadata, wavelengths, skw []float64) error {
	data := SpectrumData{
		Meta:        meta,
		Wavelengths: wavelengths,
		Skw:         skw,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func WriteCSV(w io.Writer, wavelengths, skw []float64) error {
	if len(wavelengths) != len(skw) {
		return fmt.Errorf("export: %d wavelengths vs %d samples", len(wavelengths), len(skw))
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"wavelength_m", "skw_s_per_rad"}); err != nil {
		return err
	}
	for i := range wavelengths {
		row := []string{
			strconv.FormatFloat(wavelengths[i], 'e', 9, 64),
			strconv.FormatFloat(skw[i], 'e', 9, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
