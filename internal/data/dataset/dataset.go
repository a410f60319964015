package dataset

import (
	"errors"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is the wide table plus the static annotations that travel with it.
type Dataset struct {
	Title     string
	Unit      string
	Table     *model.WideTable
	Control   string
	Reference string
	// Colors and Significance are keyed by treatment name. Significance
	// letters are supplied by the author of the data; nothing here tests them.
	Colors       map[string]string
	Significance map[string]string
	Notes        []string
	Findings     []string
	Limitations  []string
}

// Default returns the potato dormancy-breaking trial.
func Default() *Dataset {
	timePoints := []model.TimePoint{
		{Key: "9_DAT", Label: "9 DAT", Day: 9},
		{Key: "17_DAT", Label: "17 DAT", Day: 17},
		{Key: "28_DAT", Label: "28 DAT", Day: 28},
	}

	records := []model.TreatmentRecord{
		{
			Name:      "Water",
			ShortName: "Water",
			Counts: map[string]model.Value{
				"9_DAT":  model.Present(2.33),
				"17_DAT": model.Present(2.50),
				"28_DAT": model.Present(4.16),
			},
		},
		{
			Name:      "Gibberellic Acid (GA3)",
			ShortName: "GA3",
			Counts: map[string]model.Value{
				"9_DAT":  model.Present(4.67),
				"17_DAT": model.Present(4.83),
				// Reached 80% sprouting before 28 DAT and was not re-measured.
				"28_DAT": model.Absent(),
			},
		},
		{
			Name:      "Thiourea",
			ShortName: "Thiourea",
			Counts: map[string]model.Value{
				"9_DAT":  model.Present(3.00),
				"17_DAT": model.Present(3.00),
				"28_DAT": model.Present(4.67),
			},
		},
		{
			Name:      "Indole Acetic Acid (IAA)",
			ShortName: "IAA",
			Counts: map[string]model.Value{
				"9_DAT":  model.Present(2.33),
				"17_DAT": model.Present(3.00),
				"28_DAT": model.Present(4.67),
			},
		},
	}

	return &Dataset{
		Title:     "Analysis of Potato Dormancy Breaking Treatments",
		Unit:      "sprouted tubers",
		Table:     &model.WideTable{TimePoints: timePoints, Records: records},
		Control:   "Water",
		Reference: "17_DAT",
		Colors: map[string]string{
			"Water":                    "blue",
			"Gibberellic Acid (GA3)":   "red",
			"Thiourea":                 "green",
			"Indole Acetic Acid (IAA)": "orange",
		},
		Significance: map[string]string{
			"Water":                    "b",
			"Gibberellic Acid (GA3)":   "a",
			"Thiourea":                 "b",
			"Indole Acetic Acid (IAA)": "b",
		},
		Notes: []string{
			"With only one observation per treatment, formal statistical tests like ANOVA cannot be performed.",
			"The significance letters (a, b) are based on visual inspection of the data differences.",
			"For proper statistical analysis, multiple replicates per treatment would be required.",
		},
		Findings: []string{
			"GA3 showed the highest effectiveness (93.2% improvement vs control)",
			"Thiourea and IAA showed moderate effectiveness (20% improvement)",
			"GA3 treatment reached 80% sprouting earlier than other treatments",
			"Results demonstrate GA3's potential for optimizing potato planting schedules",
		},
		Limitations: []string{
			"This analysis is based on single observations per treatment",
			"Future studies should include multiple replicates for statistical testing",
			"More time points would provide better understanding of treatment dynamics",
		},
	}
}
