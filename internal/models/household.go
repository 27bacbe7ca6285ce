package models

import (
	"incomeviz.dev/internal/income"
)

// HouseholdType is one entry of the category list.
type HouseholdType struct {
	Name string `json:"name" yaml:"name"`
	Rows int    `json:"rows" yaml:"rows"`
}

// SeriesPoint is one bar of a chart.
type SeriesPoint struct {
	IncomeSource string  `json:"incomeSource" yaml:"incomeSource"`
	Value        float64 `json:"value" yaml:"value"`
}

// HouseholdView is the filtered table plus both plot-ready series.
type HouseholdView struct {
	HouseholdType string                `json:"householdType" yaml:"householdType"`
	Empty         bool                  `json:"empty" yaml:"empty"`
	Unit          string                `json:"unit" yaml:"unit"`
	Columns       []string              `json:"columns" yaml:"columns"`
	Rows          []income.IncomeRecord `json:"rows" yaml:"rows"`
	MeanSeries    []SeriesPoint         `json:"meanSeries" yaml:"meanSeries"`
	MedianSeries  []SeriesPoint         `json:"medianSeries" yaml:"medianSeries"`
}

func NewHouseholdView(view income.FilteredView) HouseholdView {
	rows := view.Records
	if rows == nil {
		rows = []income.IncomeRecord{}
	}
	columns := view.Headers()
	if columns == nil {
		columns = []string{}
	}
	return HouseholdView{
		HouseholdType: view.HouseholdType,
		Empty:         view.Empty(),
		Unit:          IncomeUnit,
		Columns:       columns,
		Rows:          rows,
		MeanSeries:    NewSeries(view.MeanSeries()),
		MedianSeries:  NewSeries(view.MedianSeries()),
	}
}

func NewSeries(points []income.SeriesPoint) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPoint{IncomeSource: p.IncomeSource, Value: p.Value})
	}
	return out
}

// NewHouseholdTypes counts the rows of every category in table.
func NewHouseholdTypes(table *income.Table) []HouseholdType {
	counts := make(map[string]int)
	for _, rec := range table.Records {
		counts[rec.HouseholdType]++
	}
	categories := table.Categories()
	types := make([]HouseholdType, 0, len(categories))
	for _, name := range categories {
		types = append(types, HouseholdType{Name: name, Rows: counts[name]})
	}
	return types
}
