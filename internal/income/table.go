// Package income loads the household income CSV export and answers category
// queries against it.
package income

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// IncomeRecord is one row of the export. A nil amount means the source had no
// value for that statistic.
type IncomeRecord struct {
	HouseholdType string   `json:"householdType" yaml:"householdType"`
	IncomeSource  string   `json:"incomeSource" yaml:"incomeSource"`
	MeanIncome    *float64 `json:"meanIncome" yaml:"meanIncome"`
	MedianIncome  *float64 `json:"medianIncome" yaml:"medianIncome"`
}

// Table is the immutable result of a load.
type Table struct {
	Source   string
	Encoding string
	Schema   Schema
	Headers  []string
	Records  []IncomeRecord

	// LabelRows are repeated header rows found in the data section.
	LabelRows [][]string
	// Warnings holds recoverable *LoadError values of kind SchemaMismatch.
	Warnings []error

	numeric []bool
	frame   dataframe.DataFrame
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Categories returns the distinct non-empty household types in sorted order.
func (t *Table) Categories() []string {
	if t == nil {
		return []string{}
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, rec := range t.Records {
		if strings.TrimSpace(rec.HouseholdType) == "" {
			continue
		}
		if _, ok := seen[rec.HouseholdType]; ok {
			continue
		}
		seen[rec.HouseholdType] = struct{}{}
		categories = append(categories, rec.HouseholdType)
	}
	sort.Strings(categories)
	return categories
}

// HasColumn reports whether a normalized header exists.
func (t *Table) HasColumn(name string) bool {
	return columnIndex(t.Headers, name) >= 0
}

// NumericColumns lists the headers whose values were coerced to amounts.
func (t *Table) NumericColumns() []string {
	cols := make([]string, 0)
	for i, h := range t.Headers {
		if t.numeric[i] {
			cols = append(cols, h)
		}
	}
	return cols
}

// Frame returns a copy of the full table as a dataframe. Coerced columns are
// float series with NaN standing in for "no value".
func (t *Table) Frame() dataframe.DataFrame {
	return t.frame.Copy()
}

// WarningMessages renders Warnings as strings for logs and API payloads.
func (t *Table) WarningMessages() []string {
	msgs := make([]string, 0, len(t.Warnings))
	for _, w := range t.Warnings {
		msgs = append(msgs, w.Error())
	}
	return msgs
}

func buildFrame(headers []string, numeric []bool, cells [][]string) dataframe.DataFrame {
	columns := make([]series.Series, len(headers))
	for j, name := range headers {
		values := make([]string, len(cells))
		for i := range cells {
			values[i] = cells[i][j]
		}
		typ := series.String
		if numeric[j] {
			typ = series.Float
		}
		columns[j] = series.New(values, typ, name)
	}
	return dataframe.New(columns...)
}

// frameRows renders a dataframe for display. Missing amounts become "".
func frameRows(df dataframe.DataFrame) [][]string {
	nrow, ncol := df.Dims()
	rows := make([][]string, nrow)
	for i := range rows {
		rows[i] = make([]string, ncol)
	}

	for j := 0; j < ncol; j++ {
		col := df.Col(df.Names()[j])
		for i := 0; i < nrow; i++ {
			elem := col.Elem(i)
			switch {
			case col.Type() == series.Float && elem.IsNA():
				rows[i][j] = ""
			case col.Type() == series.Float:
				rows[i][j] = strconv.FormatFloat(elem.Float(), 'f', -1, 64)
			default:
				rows[i][j] = elem.String()
			}
		}
	}
	return rows
}
