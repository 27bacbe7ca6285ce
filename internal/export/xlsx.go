// Package export writes filtered household views to Excel workbooks.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"incomeviz.dev/internal/income"
	"incomeviz.dev/internal/logging"
)

const maxSheetNameLength = 31

var sheetNameReplacer = strings.NewReplacer(
	"[", "(", "]", ")", ":", "-", "*", "-", "?", "", "/", "-", "\\", "-",
)

// SheetName turns a household type into a valid, unique worksheet name.
func SheetName(householdType string, taken map[string]bool) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(householdType))
	if name == "" {
		name = "Sheet"
	}
	name = truncateRunes(name, maxSheetNameLength)

	candidate := name
	for i := 2; taken[candidate]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncateRunes(name, maxSheetNameLength-len([]rune(suffix))) + suffix
	}
	taken[candidate] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Workbook builds a workbook with one sheet per view: a header row followed by
// the view's rows. Coerced columns are written as numbers and missing amounts
// are left blank.
func Workbook(views ...income.FilteredView) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	taken := make(map[string]bool)

	for i, view := range views {
		sheet := SheetName(view.HouseholdType, taken)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("adding sheet %q: %w", sheet, err)
		}

		if err := writeView(f, sheet, view); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeView(f *excelize.File, sheet string, view income.FilteredView) error {
	headers := view.Headers()
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header of %q: %w", sheet, err)
	}

	numeric := numericColumns(view)
	for r, row := range view.Rows() {
		values := make([]interface{}, len(row))
		for c, cell := range row {
			values[c] = cellValue(cell, numeric[c])
		}
		cellName, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cellName, &values); err != nil {
			return fmt.Errorf("writing row %d of %q: %w", r+1, sheet, err)
		}
	}
	return nil
}

func numericColumns(view income.FilteredView) []bool {
	types := view.Frame().Types()
	numeric := make([]bool, len(view.Headers()))
	for i := range numeric {
		numeric[i] = i < len(types) && types[i] == series.Float
	}
	return numeric
}

func cellValue(cell string, numeric bool) interface{} {
	if cell == "" && numeric {
		return nil
	}
	if numeric {
		if v, ok := income.ParseAmount(cell, ""); ok {
			return v
		}
	}
	return cell
}

// WriteXLSX streams the workbook for views to w.
func WriteXLSX(w io.Writer, logger *slog.Logger, views ...income.FilteredView) (err error) {
	f, err := Workbook(views...)
	if err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "xlsx_close")

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook for views to path.
func SaveXLSX(path string, logger *slog.Logger, views ...income.FilteredView) (err error) {
	f, err := Workbook(views...)
	if err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "xlsx_close")

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
