package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"github.com/penwyp/go-dormancy-report/internal/util"
	"gopkg.in/yaml.v3"
)

// file is the on-disk layout shared by the JSON and YAML forms.
type file struct {
	Title       string          `json:"title" yaml:"title"`
	Unit        string          `json:"unit" yaml:"unit"`
	TimePoints  []string        `json:"time_points" yaml:"time_points"`
	Control     string          `json:"control" yaml:"control"`
	Reference   string          `json:"reference" yaml:"reference"`
	Treatments  []treatmentFile `json:"treatments" yaml:"treatments"`
	Notes       []string        `json:"notes" yaml:"notes"`
	Findings    []string        `json:"findings" yaml:"findings"`
	Limitations []string        `json:"limitations" yaml:"limitations"`
}

type treatmentFile struct {
	Name         string              `json:"name" yaml:"name"`
	ShortName    string              `json:"short_name" yaml:"short_name"`
	Color        string              `json:"color" yaml:"color"`
	Significance string              `json:"significance" yaml:"significance"`
	Counts       map[string]*float64 `json:"counts" yaml:"counts"`
}

// Load reads a dataset from a .json, .yaml or .yml file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = sonic.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: unsupported dataset extension %q", ErrInvalidDataset, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}

	ds, err := f.build()
	if err != nil {
		return nil, err
	}
	util.LogDebugf("Loaded dataset %s: %d treatments x %d time points",
		path, len(ds.Table.Records), len(ds.Table.TimePoints))
	return ds, nil
}

func (f *file) build() (*Dataset, error) {
	if len(f.TimePoints) == 0 {
		return nil, fmt.Errorf("%w: no time points", ErrInvalidDataset)
	}
	if len(f.Treatments) == 0 {
		return nil, fmt.Errorf("%w: no treatments", ErrInvalidDataset)
	}

	table := &model.WideTable{}
	seenKeys := make(map[string]bool, len(f.TimePoints))
	for _, raw := range f.TimePoints {
		tp, err := model.ParseTimePoint(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}
		if seenKeys[tp.Key] {
			return nil, fmt.Errorf("%w: duplicate time point %q", ErrInvalidDataset, raw)
		}
		seenKeys[tp.Key] = true
		table.TimePoints = append(table.TimePoints, tp)
	}

	ds := &Dataset{
		Title:        f.Title,
		Unit:         f.Unit,
		Table:        table,
		Control:      f.Control,
		Reference:    f.Reference,
		Colors:       make(map[string]string),
		Significance: make(map[string]string),
		Notes:        f.Notes,
		Findings:     f.Findings,
		Limitations:  f.Limitations,
	}

	seenNames := make(map[string]bool, len(f.Treatments))
	for _, t := range f.Treatments {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: treatment without a name", ErrInvalidDataset)
		}
		if seenNames[t.Name] {
			return nil, fmt.Errorf("%w: duplicate treatment %q", ErrInvalidDataset, t.Name)
		}
		seenNames[t.Name] = true

		rec := model.TreatmentRecord{
			Name:      t.Name,
			ShortName: t.ShortName,
			Counts:    make(map[string]model.Value, len(t.Counts)),
		}
		for rawKey, count := range t.Counts {
			tp, ok := table.TimePoint(rawKey)
			if !ok {
				return nil, fmt.Errorf("%w: treatment %q has a count for undeclared time point %q",
					ErrInvalidDataset, t.Name, rawKey)
			}
			rec.Counts[tp.Key] = model.FromPtr(count)
		}
		table.Records = append(table.Records, rec)

		if t.Color != "" {
			ds.Colors[t.Name] = t.Color
		}
		if t.Significance != "" {
			ds.Significance[t.Name] = t.Significance
		}
	}

	if ds.Title == "" {
		ds.Title = "Treatment Analysis"
	}
	if ds.Unit == "" {
		ds.Unit = "units"
	}
	if ds.Control == "" {
		ds.Control = table.Records[0].Name
	}
	if ds.Reference == "" {
		// Same convention as the built-in trial: compare at the second time point.
		ref := table.TimePoints[0]
		if len(table.TimePoints) > 1 {
			ref = table.TimePoints[1]
		}
		ds.Reference = ref.Key
	}

	return ds, nil
}
