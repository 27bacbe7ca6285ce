package income

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SeriesPoint is one bar of a per-source chart.
type SeriesPoint struct {
	IncomeSource string  `json:"incomeSource" yaml:"incomeSource"`
	Value        float64 `json:"value" yaml:"value"`
}

// FilteredView is the subset of a table belonging to one household type.
type FilteredView struct {
	HouseholdType string
	Records       []IncomeRecord

	headers []string
	frame   dataframe.DataFrame
}

// SelectCategory returns the rows whose household type equals householdType
// exactly, in file order. An unknown household type yields an empty view.
func SelectCategory(table *Table, householdType string) FilteredView {
	view := FilteredView{
		HouseholdType: householdType,
		Records:       make([]IncomeRecord, 0),
	}
	if table == nil {
		return view
	}
	view.headers = table.Headers

	for _, rec := range table.Records {
		if rec.HouseholdType == householdType {
			view.Records = append(view.Records, rec)
		}
	}

	if len(view.Records) == 0 {
		view.frame = buildFrame(table.Headers, table.numeric, nil)
		return view
	}

	view.frame = table.frame.Filter(dataframe.F{
		Colname:    table.Schema.HouseholdColumn,
		Comparator: series.Eq,
		Comparando: householdType,
	})
	return view
}

// Empty reports whether no row matched.
func (v FilteredView) Empty() bool {
	return len(v.Records) == 0
}

// Len returns the number of matching rows.
func (v FilteredView) Len() int {
	return len(v.Records)
}

// MeanSeries maps income source to mean income, skipping rows without a mean.
func (v FilteredView) MeanSeries() []SeriesPoint {
	return v.points(func(rec IncomeRecord) *float64 { return rec.MeanIncome })
}

// MedianSeries maps income source to median income, skipping rows without a median.
func (v FilteredView) MedianSeries() []SeriesPoint {
	return v.points(func(rec IncomeRecord) *float64 { return rec.MedianIncome })
}

func (v FilteredView) points(metric func(IncomeRecord) *float64) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(v.Records))
	for _, rec := range v.Records {
		if val := metric(rec); val != nil {
			points = append(points, SeriesPoint{IncomeSource: rec.IncomeSource, Value: *val})
		}
	}
	return points
}

// Headers returns the normalized column names of the view.
func (v FilteredView) Headers() []string {
	return v.headers
}

// Frame returns the matching rows with every column of the source table.
func (v FilteredView) Frame() dataframe.DataFrame {
	return v.frame
}

// Rows renders Frame as strings. Missing amounts are empty strings.
func (v FilteredView) Rows() [][]string {
	if v.frame.Ncol() == 0 {
		return [][]string{}
	}
	return frameRows(v.frame)
}
