// Package chart renders the four-panel treatment comparison figure.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"github.com/penwyp/go-dormancy-report/internal/util"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Default canvas geometry
const (
	DefaultDPI    = 300
	DefaultWidth  = 15 * vg.Inch
	DefaultHeight = 12 * vg.Inch
)

// Input is the data behind the figure. View is the only source for the
// line panel; the bar panels read Long so absent cells become gaps.
type Input struct {
	Title        string
	Unit         string
	TimePoints   []model.TimePoint
	Records      []model.TreatmentRecord
	Reference    model.TimePoint
	Control      string
	Long         *model.LongTable
	View         *model.PlotView
	Improvements map[string]model.Improvement
	Significance map[string]string
	Colors       map[string]string
}

type Renderer struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

func NewRenderer(dpi int) *Renderer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Renderer{Width: DefaultWidth, Height: DefaultHeight, DPI: dpi}
}

// Render draws the figure and writes it to path, replacing any existing file.
// The image format follows the extension.
func (r *Renderer) Render(in *Input, path string) error {
	newWriter, err := writerFor(path)
	if err != nil {
		return err
	}

	plots, err := buildPanels(in)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(r.Width, r.Height),
		vgimg.UseDPI(r.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)

	titleHeight := vg.Points(36)
	drawTitle(dc, in.Title, titleHeight)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Points(24),
		PadY:      vg.Points(24),
		PadTop:    titleHeight,
		PadBottom: vg.Points(12),
		PadLeft:   vg.Points(12),
		PadRight:  vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, dc)
	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if _, err := newWriter(img).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file: %w", err)
	}

	util.LogDebug("Chart written", util.F("path", path), util.F("dpi", r.DPI))
	return nil
}

func buildPanels(in *Input) ([][]*plot.Plot, error) {
	reference, err := referenceBars(in, false)
	if err != nil {
		return nil, fmt.Errorf("reference panel: %w", err)
	}
	timeline, err := timelinePanel(in)
	if err != nil {
		return nil, fmt.Errorf("timeline panel: %w", err)
	}
	grouped, err := groupedBars(in)
	if err != nil {
		return nil, fmt.Errorf("grouped panel: %w", err)
	}
	effectiveness, err := referenceBars(in, true)
	if err != nil {
		return nil, fmt.Errorf("effectiveness panel: %w", err)
	}
	return [][]*plot.Plot{
		{reference, timeline},
		{grouped, effectiveness},
	}, nil
}

func drawTitle(dc draw.Canvas, title string, height vg.Length) {
	if title == "" {
		return
	}
	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(18)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	pt := vg.Point{X: dc.Center().X, Y: dc.Max.Y - height/2}
	dc.FillText(sty, pt, title)
}

// writerFor picks the raster encoder for the file extension.
func writerFor(path string) (func(*vgimg.Canvas) io.WriterTo, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return func(c *vgimg.Canvas) io.WriterTo { return vgimg.PngCanvas{Canvas: c} }, nil
	case ".jpg", ".jpeg":
		return func(c *vgimg.Canvas) io.WriterTo { return vgimg.JpegCanvas{Canvas: c} }, nil
	case ".tif", ".tiff":
		return func(c *vgimg.Canvas) io.WriterTo { return vgimg.TiffCanvas{Canvas: c} }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
