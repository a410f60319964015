package analyzer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/penwyp/go-dormancy-report/internal/data/dataset"
	"github.com/penwyp/go-dormancy-report/internal/data/reshape"
	"github.com/penwyp/go-dormancy-report/internal/presentation/chart"
	"github.com/penwyp/go-dormancy-report/internal/presentation/formatter"
	"github.com/penwyp/go-dormancy-report/internal/util"
)

type Analyzer struct {
	config   *Config
	renderer *chart.Renderer
}

func New(config *Config) *Analyzer {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	return &Analyzer{
		config:   config,
		renderer: chart.NewRenderer(config.DPI),
	}
}

// Run builds the dataset, derives the long form and comparisons, renders the
// chart and writes the report. A DivisionUndefined condition does not stop
// the report; it is returned after everything has been written.
func (a *Analyzer) Run() error {
	startTime := time.Now()
	util.LogInfo("Starting dormancy treatment analysis")

	// Phase 1: Load dataset
	loadStart := time.Now()
	ds, err := a.loadDataset()
	if err != nil {
		return err
	}
	wide := ds.Table
	util.LogDebugf("Phase 1 - Dataset load duration: %v, %d treatments x %d time points",
		time.Since(loadStart), len(wide.Records), len(wide.TimePoints))

	referenceKey := ds.Reference
	if a.config.Reference != "" {
		referenceKey = a.config.Reference
	}
	reference, err := ResolveTimePoint(wide, referenceKey)
	if err != nil {
		return err
	}
	control := ds.Control
	if a.config.Control != "" {
		control = a.config.Control
	}

	// Phase 2: Reshape wide -> long
	reshapeStart := time.Now()
	long := reshape.Melt(wide)
	view := reshape.Filter(long)
	util.LogDebugf("Phase 2 - Reshape duration: %v, long rows: %d, absent: %d, plot rows: %d",
		time.Since(reshapeStart), long.Len(), long.AbsentCount(), view.Len())

	// Phase 3: Comparative percentages
	improvements, cmpErr := ComparativePercentages(wide, long, reference, control)
	if cmpErr != nil {
		if !errors.Is(cmpErr, ErrDivisionUndefined) {
			return cmpErr
		}
		util.LogWarn("Comparative percentages not computable",
			util.F("control", control), util.F("reference", reference.Label))
	}

	// Phase 4: Descriptive statistics and summary rows
	stats := Describe(wide)
	rows := BuildSummary(wide, improvements)

	// Phase 5: Render chart
	chartPath := ""
	if a.config.RenderChart {
		renderStart := time.Now()
		in := &chart.Input{
			Title:        ds.Title,
			Unit:         ds.Unit,
			TimePoints:   wide.TimePoints,
			Records:      wide.Records,
			Reference:    reference,
			Control:      control,
			Long:         long,
			View:         view,
			Improvements: improvements,
			Significance: ds.Significance,
			Colors:       ds.Colors,
		}
		if err := a.renderer.Render(in, a.config.ImagePath); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		chartPath = a.config.ImagePath
		util.LogDebugf("Phase 5 - Render duration: %v", time.Since(renderStart))
	}

	// Phase 6: Format and output
	report := &formatter.Report{
		Title:       ds.Title,
		Unit:        ds.Unit,
		Control:     control,
		Reference:   reference,
		TimePoints:  wide.TimePoints,
		Stats:       stats,
		Rows:        rows,
		Notes:       ds.Notes,
		Findings:    ds.Findings,
		Limitations: ds.Limitations,
		ChartPath:   chartPath,
	}
	if err := a.formatAndOutput(report); err != nil {
		return err
	}

	util.LogDebugf("Total duration: %v", time.Since(startTime))
	return cmpErr
}

func (a *Analyzer) loadDataset() (*dataset.Dataset, error) {
	if a.config.DatasetPath == "" {
		return dataset.Default(), nil
	}
	return dataset.Load(a.config.DatasetPath)
}

func (a *Analyzer) formatAndOutput(report *formatter.Report) error {
	f, err := formatter.New(a.config.OutputFormat, a.config.Out)
	if err != nil {
		return err
	}
	return f.Format(report)
}
