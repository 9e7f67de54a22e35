// Package store persists spectrum runs under a data directory: one
// directory per run holding metadata.json and samples.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`
	ProbeNM   float64   `json:"probe_nm"`
	AngleDeg  float64   `json:"angle_deg"`
	Density   float64   `json:"density"`
	TeEV      []float64 `json:"te_ev"`
	TiEV      []float64 `json:"ti_ev"`
	Ions      []string  `json:"ions"`
	Alpha     float64   `json:"alpha"`
	Samples   int       `json:"samples"`
	PeakNM    float64   `json:"peak_nm"`
	PeakSkw   float64   `json:"peak_skw"`
}

// Save writes a run directory and returns its ID. Wavelengths are in
// meters and skw in s/rad; the two slices must be the same length.
func (s *Store) Save(meta RunMetadata, wavelengths, skw []float64) (string, error) {
	if len(wavelengths) != len(skw) {
		return "", fmt.Errorf("store: %d wavelengths vs %d samples", len(wavelengths), len(skw))
	}

	runID := fmt.Sprintf("%s_%d", meta.Scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Samples = len(skw)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"wavelength_m", "skw_s_per_rad"}); err != nil {
		return "", err
	}
	for i := range wavelengths {
		row := []string{
			strconv.FormatFloat(wavelengths[i], 'e', 9, 64),
			strconv.FormatFloat(skw[i], 'e', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads the stored spectrum back as aligned wavelength and
// skw slices.
func (s *Store) LoadSamples(runID string) (wavelengths, skw []float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	wavelengths = make([]float64, 0, len(records)-1)
	skw = make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		wl, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		wavelengths = append(wavelengths, wl)
		skw = append(skw, v)
	}

	return wavelengths, skw, nil
}
