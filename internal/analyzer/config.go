package analyzer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-dormancy-report/internal/presentation/formatter"
)

const DefaultImagePath = "potato_dormancy_complete_analysis.png"

type Config struct {
	// DatasetPath is empty for the built-in trial.
	DatasetPath  string
	ImagePath    string
	DPI          int
	RenderChart  bool
	OutputFormat string
	// Reference and Control override the dataset's own choices when set.
	Reference string
	Control   string
	Out       io.Writer
}

// DefaultConfig reproduces a plain run with no flags.
func DefaultConfig() *Config {
	return &Config{
		ImagePath:    DefaultImagePath,
		DPI:          300,
		RenderChart:  true,
		OutputFormat: formatter.FormatReport,
		Out:          os.Stdout,
	}
}

func (c *Config) Validate() error {
	if c.RenderChart {
		if c.ImagePath == "" {
			return fmt.Errorf("image path must not be empty")
		}
		if c.DPI <= 0 {
			return fmt.Errorf("dpi must be positive, got %d", c.DPI)
		}
		switch strings.ToLower(filepath.Ext(c.ImagePath)) {
		case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		default:
			return fmt.Errorf("unsupported image extension %q (want .png, .jpg, .jpeg, .tif or .tiff)", filepath.Ext(c.ImagePath))
		}
	}

	valid := false
	for _, f := range formatter.SupportedFormats {
		if c.OutputFormat == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported output format %q (want one of %v)", c.OutputFormat, formatter.SupportedFormats)
	}
	return nil
}
