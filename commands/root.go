package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/penwyp/go-dormancy-report/internal/analyzer"
	"github.com/penwyp/go-dormancy-report/internal/data/watcher"
	"github.com/penwyp/go-dormancy-report/internal/presentation/chart"
	"github.com/penwyp/go-dormancy-report/internal/presentation/formatter"
	"github.com/penwyp/go-dormancy-report/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Input
	dataPath string
	watch    bool

	// Comparison
	reference string
	control   string

	// Output related
	imagePath    string
	dpi          int
	noChart      bool
	outputFormat string
	formatAlias  string

	rootCmd = &cobra.Command{
		Use:   "go-dormancy-report [flags]",
		Short: "Potato dormancy-breaking treatment report",
		Long: `go-dormancy-report analyzes sprouting counts of dormancy-breaking treatments.

It reshapes the treatment table into long form, compares every treatment with
the control at a reference time point, renders a four-panel chart and prints
descriptive statistics with a summary table.

Examples:
  go-dormancy-report                                   # Built-in trial, chart + report
  go-dormancy-report --image out.jpg --dpi 150         # Different image format and resolution
  go-dormancy-report --reference 9_DAT                 # Compare at 9 days after treatment
  go-dormancy-report --data trial.yaml --output json   # Own dataset, JSON report
  go-dormancy-report --data trial.json --watch         # Re-run whenever trial.json changes`,
		SilenceUsage: true,
		RunE:         runReport,
	}
)

const defaultLogFile = "~/.go-dormancy-report/logs/app.log"

func init() {
	// Input data configuration
	rootCmd.Flags().StringVar(&dataPath, "data", "",
		"Dataset file (.json, .yaml, .yml); built-in trial when empty")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Re-run the report whenever the dataset file changes (requires --data)")

	// Comparison
	rootCmd.Flags().StringVar(&reference, "reference", "",
		"Reference time point for comparisons (e.g. 17_DAT or \"17 DAT\")")
	rootCmd.Flags().StringVar(&control, "control", "",
		"Control treatment name (default: the dataset's control)")

	// Output configuration
	rootCmd.Flags().StringVar(&imagePath, "image", analyzer.DefaultImagePath,
		"Chart output path; format follows the extension (.png, .jpg, .tif)")
	rootCmd.Flags().IntVar(&dpi, "dpi", chart.DefaultDPI,
		"Chart resolution in dots per inch")
	rootCmd.Flags().BoolVar(&noChart, "no-chart", false,
		"Skip chart rendering")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", formatter.FormatReport,
		"Output format ("+strings.Join(formatter.SupportedFormats, ", ")+")")
	rootCmd.Flags().StringVar(&formatAlias, "format", "",
		"Alias for --output")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile,
		"Log file path")
}

func runReport(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	// Handle format alias
	if cmd.Flags().Changed("format") {
		outputFormat = formatAlias
	}

	// Initialize logging
	path := expandPath(logFile)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(logLevel, path, debug); err != nil {
		return err
	}

	config := &analyzer.Config{
		ImagePath:    imagePath,
		DPI:          dpi,
		RenderChart:  !noChart,
		OutputFormat: outputFormat,
		Reference:    reference,
		Control:      control,
		Out:          cmd.OutOrStdout(),
	}
	if dataPath != "" {
		config.DatasetPath = expandPath(dataPath)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if watch {
		if config.DatasetPath == "" {
			return errors.New("--watch requires --data")
		}
		return runWatch(cmd, config)
	}

	return analyzer.New(config).Run()
}

// runWatch reruns the report on every settled change to the dataset file
// until interrupted. Failed runs are reported and watching continues.
func runWatch(cmd *cobra.Command, config *analyzer.Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(config.DatasetPath, watcher.DefaultDebounce)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", config.DatasetPath, err)
	}
	defer fw.Close()

	runOnce := func() {
		if err := analyzer.New(config).Run(); err != nil {
			util.LogWarn("Report run failed", util.F("error", err.Error()))
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	runOnce()
	util.LogInfo("Watching dataset", util.F("path", config.DatasetPath))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events():
			if !ok {
				return nil
			}
			util.LogInfo("Dataset changed", util.F("op", ev.Operation))
			runOnce()
		}
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
