package analyzer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/penwyp/go-dormancy-report/internal/presentation/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) (*Config, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ImagePath = filepath.Join(t.TempDir(), "analysis.png")
	cfg.DPI = 10
	cfg.Out = &buf
	return cfg, &buf
}

func TestRunEndToEnd(t *testing.T) {
	cfg, buf := testConfig(t)

	require.NoError(t, New(cfg).Run())

	info, err := os.Stat(cfg.ImagePath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	entries, err := os.ReadDir(filepath.Dir(cfg.ImagePath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "exactly one image is produced")

	out := buf.String()
	assert.Contains(t, out, "+93.2%")
	assert.Contains(t, out, "+20.0%")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "Chart saved to: "+cfg.ImagePath)
}

func TestRunWithoutChart(t *testing.T) {
	cfg, buf := testConfig(t)
	cfg.RenderChart = false

	require.NoError(t, New(cfg).Run())

	_, err := os.Stat(cfg.ImagePath)
	assert.True(t, os.IsNotExist(err))
	assert.NotContains(t, buf.String(), "Chart saved to")
}

func TestRunJSONOutput(t *testing.T) {
	cfg, buf := testConfig(t)
	cfg.RenderChart = false
	cfg.OutputFormat = formatter.FormatJSON

	require.NoError(t, New(cfg).Run())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Water", decoded["control"])
}

func TestRunOverrides(t *testing.T) {
	cfg, buf := testConfig(t)
	cfg.RenderChart = false
	cfg.Reference = "9 DAT"
	cfg.Control = "Thiourea"

	require.NoError(t, New(cfg).Run())
	out := buf.String()
	assert.Contains(t, out, "Treatment Effectiveness at 9 DAT:")
	assert.Contains(t, out, "Thiourea (Control): 3.00 sprouted tubers")
	assert.Contains(t, out, "GA3: 4.67 sprouted tubers (+55.7% improvement)")
}

func TestRunDivisionUndefinedStillReports(t *testing.T) {
	dir := t.TempDir()
	data := `{"time_points":["9_DAT"],"treatments":[
		{"name":"Water","counts":{"9_DAT":0}},
		{"name":"GA3","counts":{"9_DAT":4}}]}`
	path := filepath.Join(dir, "zero.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, buf := testConfig(t)
	cfg.DatasetPath = path

	err := New(cfg).Run()
	assert.ErrorIs(t, err, ErrDivisionUndefined)
	assert.Contains(t, buf.String(), "improvement not computable")
	_, statErr := os.Stat(cfg.ImagePath)
	assert.NoError(t, statErr, "chart is still rendered")
}

func TestRunUnknownReference(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Reference = "40_DAT"
	assert.ErrorIs(t, New(cfg).Run(), ErrUnknownTimePoint)
}

func TestRunUnknownControl(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Control = "Sugar"
	assert.ErrorIs(t, New(cfg).Run(), ErrUnknownTreatment)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "jpeg", mutate: func(c *Config) { c.ImagePath = "out.JPEG" }},
		{name: "bad_extension", mutate: func(c *Config) { c.ImagePath = "out.svg" }, wantErr: true},
		{name: "bad_extension_ignored_without_chart", mutate: func(c *Config) { c.ImagePath = "out.svg"; c.RenderChart = false }},
		{name: "zero_dpi", mutate: func(c *Config) { c.DPI = 0 }, wantErr: true},
		{name: "empty_image", mutate: func(c *Config) { c.ImagePath = "" }, wantErr: true},
		{name: "bad_format", mutate: func(c *Config) { c.OutputFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
