package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/plasmakit/plasmakit/internal/collisions"
	"github.com/plasmakit/plasmakit/internal/config"
	"github.com/plasmakit/plasmakit/internal/export"
	"github.com/plasmakit/plasmakit/internal/quantity"
	"github.com/plasmakit/plasmakit/internal/store"
	"github.com/plasmakit/plasmakit/internal/thomson"
	"github.com/plasmakit/plasmakit/internal/validate"
	"github.com/plasmakit/plasmakit/internal/viz"
)

var (
	dataDir string

	// spectrum / live
	probeNM    float64
	angleDeg   float64
	minNM      float64
	maxNM      float64
	samples    int
	density    float64
	teEV       []float64
	tiEV       []float64
	efract     []float64
	ifract     []float64
	ions       []string
	configFile string
	preset     string
	save       bool
	name       string

	// coulomb / transport
	tempEV     float64
	testPart   string
	fieldPart  string
	zMean      float64
	velocity   float64
	method     string
	allMethods bool
	sweep      bool
	lengthM    float64

	// export
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plasmakit",
		Short: "Thomson scattering and Coulomb collision calculator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".plasmakit", "data directory")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "compute a Thomson scattering spectrum",
		RunE:  runSpectrum,
	}
	addScenarioFlags(spectrumCmd)
	spectrumCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")
	spectrumCmd.Flags().StringVar(&name, "name", "spectrum", "scenario name for saved runs")

	coulombCmd := &cobra.Command{
		Use:   "coulomb",
		Short: "Coulomb logarithm and impact parameters for a species pair",
		RunE:  runCoulomb,
	}
	coulombCmd.Flags().Float64Var(&tempEV, "temp", 86.17, "temperature (eV)")
	coulombCmd.Flags().Float64Var(&density, "density", 1e19, "electron density (m^-3)")
	coulombCmd.Flags().StringVar(&testPart, "test", "e-", "test particle")
	coulombCmd.Flags().StringVar(&fieldPart, "field", "p+", "field particle")
	coulombCmd.Flags().Float64Var(&zMean, "zmean", math.NaN(), "mean ionization state")
	coulombCmd.Flags().Float64Var(&velocity, "velocity", math.NaN(), "relative velocity (m/s), default thermal")
	coulombCmd.Flags().StringVar(&method, "method", "classical", "Coulomb logarithm method")
	coulombCmd.Flags().BoolVar(&allMethods, "all", false, "tabulate all seven methods")
	coulombCmd.Flags().BoolVar(&sweep, "sweep", false, "plot ln Lambda against density, three decades either side of --density")

	transportCmd := &cobra.Command{
		Use:   "transport",
		Short: "collision frequency and composed transport quantities",
		RunE:  runTransport,
	}
	transportCmd.Flags().Float64Var(&tempEV, "temp", 86.17, "temperature (eV)")
	transportCmd.Flags().Float64Var(&density, "density", 1e19, "electron density (m^-3)")
	transportCmd.Flags().StringVar(&testPart, "test", "e-", "test particle")
	transportCmd.Flags().StringVar(&fieldPart, "field", "p+", "field particle")
	transportCmd.Flags().Float64Var(&zMean, "zmean", math.NaN(), "mean ionization state")
	transportCmd.Flags().Float64Var(&velocity, "velocity", math.NaN(), "relative velocity (m/s), default thermal")
	transportCmd.Flags().StringVar(&method, "method", "classical", "Coulomb logarithm method")
	transportCmd.Flags().Float64Var(&lengthM, "length", 1.0, "characteristic length for Knudsen number (m)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved spectrum",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved spectrum to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved spectrum to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a saved spectrum to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive spectrum viewer",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	rootCmd.AddCommand(spectrumCmd, coulombCmd, transportCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&probeNM, "probe-nm", config.DefaultProbeNM, "probe wavelength (nm)")
	cmd.Flags().Float64Var(&angleDeg, "angle", config.DefaultAngleDeg, "scattering angle (degrees)")
	cmd.Flags().Float64Var(&minNM, "min-nm", 520, "window lower bound (nm)")
	cmd.Flags().Float64Var(&maxNM, "max-nm", 545, "window upper bound (nm)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of wavelength samples")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "total electron density (m^-3)")
	cmd.Flags().Float64SliceVar(&teEV, "te", []float64{config.DefaultTeEV}, "electron temperatures (eV)")
	cmd.Flags().Float64SliceVar(&tiEV, "ti", []float64{config.DefaultTiEV}, "ion temperatures (eV)")
	cmd.Flags().Float64SliceVar(&efract, "efract", nil, "electron population fractions")
	cmd.Flags().Float64SliceVar(&ifract, "ifract", nil, "ion population fractions")
	cmd.Flags().StringSliceVar(&ions, "ion", []string{config.DefaultIon}, "ion species")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset scenario")
}

// buildScenario layers preset, config file, and changed flags, in that
// order of increasing precedence.
func buildScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		copied := *p
		cfg = &copied
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("probe-nm") {
		cfg.Probe.WavelengthNM = probeNM
	}
	if cmd.Flags().Changed("angle") {
		cfg.Probe.AngleDeg = angleDeg
		cfg.Probe.Scatter = [3]float64{}
	}
	if cmd.Flags().Changed("min-nm") {
		cfg.Window.MinNM = minNM
	}
	if cmd.Flags().Changed("max-nm") {
		cfg.Window.MaxNM = maxNM
	}
	if cmd.Flags().Changed("samples") {
		cfg.Window.Samples = samples
	}
	if cmd.Flags().Changed("density") {
		cfg.Plasma.Density = density
	}
	if cmd.Flags().Changed("te") {
		cfg.Plasma.TeEV = teEV
	}
	if cmd.Flags().Changed("ti") {
		cfg.Plasma.TiEV = tiEV
	}
	if cmd.Flags().Changed("efract") {
		cfg.Plasma.EFract = efract
	}
	if cmd.Flags().Changed("ifract") {
		cfg.Plasma.IFract = ifract
	}
	if cmd.Flags().Changed("ion") {
		cfg.Plasma.Ions = ions
	}

	return cfg, nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	in, err := cfg.ToInput()
	if err != nil {
		return err
	}

	alpha, skw, warns, err := thomson.SpectralDensity(in)
	if err != nil {
		return err
	}
	logWarnings(warns)

	regime := "non-collective"
	if alpha > 1 {
		regime = "collective"
	}

	peakIdx := floats.MaxIdx(skw)
	peakNM := in.Wavelengths[peakIdx] * 1e9

	fmt.Printf("alpha: %.4f (%s)\n", alpha, regime)
	fmt.Printf("peak: %.2f nm, S = %.4e s/rad\n\n", peakNM, skw[peakIdx])

	caption := fmt.Sprintf("S(k,w)/peak over %.1f-%.1f nm", cfg.Window.MinNM, cfg.Window.MaxNM)
	fmt.Println(viz.SpectrumPlot(skw, 80, 14, caption))

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		meta := store.RunMetadata{
			Scenario: name,
			ProbeNM:  cfg.Probe.WavelengthNM,
			AngleDeg: cfg.Probe.AngleDeg,
			Density:  cfg.Plasma.Density,
			TeEV:     cfg.Plasma.TeEV,
			TiEV:     cfg.Plasma.TiEV,
			Ions:     cfg.Plasma.Ions,
			Alpha:    alpha,
			PeakNM:   peakNM,
			PeakSkw:  skw[peakIdx],
		}
		runID, err := st.Save(meta, in.Wavelengths, skw)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func coulombQuery() (collisions.Query, error) {
	tempQ, err := quantity.Temperature(tempEV, "eV")
	if err != nil {
		return collisions.Query{}, err
	}
	tempK, err := quantity.Kelvins(tempQ)
	if err != nil {
		return collisions.Query{}, err
	}
	ne, err := quantity.SI(quantity.Density(density), quantity.PerCubicMeter, "density")
	if err != nil {
		return collisions.Query{}, err
	}
	v, err := quantity.SI(quantity.Velocity(velocity), quantity.MeterPerSecond, "velocity")
	if err != nil {
		return collisions.Query{}, err
	}

	q := collisions.NewQuery(tempK, []float64{ne}, testPart, fieldPart, method)
	q.ZMean = zMean
	q.V = v
	return q, nil
}

func runCoulomb(cmd *cobra.Command, args []string) error {
	q, err := coulombQuery()
	if err != nil {
		return err
	}

	base := q

	methods := []string{q.Method}
	if allMethods {
		methods = collisions.Methods()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tLN_LAMBDA\tBMIN (m)\tBMAX (m)")

	for _, m := range methods {
		q.Method = m
		bmin, bmax, _, err := collisions.ImpactParameters(q)
		if err != nil {
			if allMethods {
				fmt.Fprintf(w, "%s\terror: %v\n", m, err)
				continue
			}
			return err
		}
		lnL, warns, err := collisions.CoulombLogarithm(q)
		if err != nil {
			return err
		}
		logWarnings(warns)
		fmt.Fprintf(w, "%s\t%.6f\t%.4e\t%.4e\n", m, lnL[0], bmin[0], bmax[0])
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if sweep {
		const points = 85
		lo := base.Ne[0] / 1e3
		sq := base
		sq.Ne = make([]float64, points)
		for i := range sq.Ne {
			sq.Ne[i] = lo * math.Pow(10, 6*float64(i)/(points-1))
		}
		lnL, warns, err := collisions.CoulombLogarithm(sq)
		if err != nil {
			return err
		}
		logWarnings(warns)
		caption := fmt.Sprintf("ln Lambda over %.1e-%.1e m^-3 (%s)", sq.Ne[0], sq.Ne[points-1], sq.Method)
		fmt.Println()
		fmt.Println(viz.SeriesPlot(lnL, 80, 14, caption))
	}

	return nil
}

func runTransport(cmd *cobra.Command, args []string) error {
	q, err := coulombQuery()
	if err != nil {
		return err
	}

	freq, warns, err := collisions.CollisionFrequency(q)
	if err != nil {
		return err
	}
	logWarnings(warns)

	bPerp, _, err := collisions.PerpImpactParameter(q.T, q.Species, q.V)
	if err != nil {
		return err
	}
	mfp, _, err := collisions.MeanFreePath(q)
	if err != nil {
		return err
	}
	eta, _, err := collisions.SpitzerResistivity(q)
	if err != nil {
		return err
	}
	mob, _, err := collisions.Mobility(q)
	if err != nil {
		return err
	}
	length, err := quantity.SI(quantity.Length(lengthM), quantity.Meters, "length")
	if err != nil {
		return err
	}
	kn, _, err := collisions.KnudsenNumber(length, q)
	if err != nil {
		return err
	}
	gammaC, err := collisions.CouplingParameter(q.T, q.Ne, q.Species, q.ZMean, collisions.CouplingClassical)
	if err != nil {
		return err
	}
	gammaQ, err := collisions.CouplingParameter(q.T, q.Ne, q.Species, q.ZMean, collisions.CouplingQuantum)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "collision frequency\t%.6e s^-1\n", freq[0])
	fmt.Fprintf(w, "cross section\t%.6e m^2\n", collisions.CrossSection(bPerp))
	fmt.Fprintf(w, "mean free path\t%.6e m\n", mfp[0])
	fmt.Fprintf(w, "Spitzer resistivity\t%.6e ohm m\n", eta[0])
	fmt.Fprintf(w, "mobility\t%.6e m^2/(V s)\n", mob[0])
	fmt.Fprintf(w, "Knudsen number (L=%g m)\t%.6e\n", lengthM, kn[0])
	fmt.Fprintf(w, "coupling parameter (classical)\t%.6e\n", gammaC[0])
	fmt.Fprintf(w, "coupling parameter (quantum)\t%.6e\n", gammaQ[0])
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPROBE\tANGLE\tDENSITY\tALPHA\tPEAK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.0fnm\t%.0f°\t%.2e\t%.4f\t%.2fnm\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.ProbeNM,
			run.AngleDeg,
			run.Density,
			run.Alpha,
			run.PeakNM,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	wavelengths, skw, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(skw) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("alpha: %.4f\n", meta.Alpha)
	fmt.Printf("samples: %d\n\n", len(skw))

	caption := fmt.Sprintf("S(k,w)/peak over %.1f-%.1f nm",
		wavelengths[0]*1e9, wavelengths[len(wavelengths)-1]*1e9)
	fmt.Println(viz.SpectrumPlot(skw, 80, 14, caption))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	wavelengths, skw, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(skw) == 0 {
		return fmt.Errorf("no data to export")
	}
	return export.WriteCSV(os.Stdout, wavelengths, skw)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	wavelengths, skw, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, *meta, wavelengths, skw)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	wavelengths, skw, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	svg := export.SpectrumToSVG(wavelengths, skw, 800, 400, "#00ff88")
	if svg == "" {
		return fmt.Errorf("not enough data for an SVG plot")
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(cfg))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func logWarnings(warns []validate.Warning) {
	for _, w := range warns {
		log.Warn(w.Message)
	}
}
