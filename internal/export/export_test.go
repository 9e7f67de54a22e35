package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/plasmakit/plasmakit/internal/store"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	wavelengths := []float64{530e-9, 532e-9}
	skw := []float64{1e-14, 2e-13}
	if err := WriteCSV(&buf, wavelengths, skw); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "wavelength_m,skw_s_per_rad" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[2], "5.320000000e-07,") {
		t.Errorf("unexpected row: %s", lines[2])
	}
}

func TestWriteCSVMismatched(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	meta := store.RunMetadata{ID: "spectrum_1", Scenario: "spectrum", Alpha: 0.55}
	if err := WriteJSON(&buf, meta, []float64{532e-9}, []float64{2e-13}); err != nil {
		t.Fatalf("write json failed: %v", err)
	}

	var back SpectrumData
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if back.Meta.ID != "spectrum_1" {
		t.Errorf("expected id spectrum_1, got %s", back.Meta.ID)
	}
	if len(back.Skw) != 1 || back.Skw[0] != 2e-13 {
		t.Errorf("unexpected skw: %v", back.Skw)
	}
}

func TestSpectrumToSVG(t *testing.T) {
	wavelengths := []float64{530e-9, 531e-9, 532e-9}
	skw := []float64{1e-14, 2e-13, 1e-14}

	svg := SpectrumToSVG(wavelengths, skw, 640, 480, "#00ff00")
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("expected svg envelope")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("expected stroke color in path")
	}
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments, got %d", strings.Count(svg, " L"))
	}
}

func TestSpectrumToSVGDegenerate(t *testing.T) {
	if SpectrumToSVG([]float64{1}, []float64{1}, 100, 100, "#fff") != "" {
		t.Error("expected empty string for single point")
	}
	if SpectrumToSVG([]float64{1, 2}, []float64{1}, 100, 100, "#fff") != "" {
		t.Error("expected empty string for mismatched lengths")
	}
}
