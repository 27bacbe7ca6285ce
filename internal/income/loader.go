package income

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Load reads the CSV at path, decodes it with the named encoding and builds a
// Table according to schema. Missing mean or median columns are reported in
// Table.Warnings; every other problem is returned as a *LoadError.
func Load(path, encoding string, schema Schema) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newLoadError(KindFileNotFound, path, "data file does not exist", err)
		}
		return nil, newLoadError(KindReadError, path, "failed to read data file", err)
	}
	return parse(raw, path, encoding, schema)
}

// LoadReader is Load for an already opened source. name is only used in
// errors and as Table.Source.
func LoadReader(r io.Reader, name, encoding string, schema Schema) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, newLoadError(KindReadError, name, "failed to read data", err)
	}
	return parse(raw, name, encoding, schema)
}

func parse(raw []byte, source, encoding string, schema Schema) (*Table, error) {
	schema = schema.WithDefaults()
	if encoding == "" {
		encoding = DefaultEncoding
	}

	numericRe, err := schema.numericMatcher()
	if err != nil {
		return nil, newLoadError(KindSchemaMismatch, source, "schema is invalid", err)
	}

	text, err := decodeBytes(raw, encoding)
	if err != nil {
		return nil, newLoadError(KindDecodeError, source, fmt.Sprintf("cannot decode data file as %s", encoding), err)
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, newLoadError(KindDecodeError, source, "malformed delimited text", err)
	}
	if len(rows) == 0 {
		return nil, newLoadError(KindSchemaMismatch, source, "data file has no header row", nil)
	}

	headers := normalizeHeaders(rows[0])
	table := &Table{
		Source:   source,
		Encoding: encoding,
		Schema:   schema,
		Headers:  headers,
		Records:  make([]IncomeRecord, 0, len(rows)-1),
		numeric:  make([]bool, len(headers)),
	}

	householdIdx := columnIndex(headers, schema.HouseholdColumn)
	sourceIdx := columnIndex(headers, schema.SourceColumn)
	var missing []string
	if householdIdx < 0 {
		missing = append(missing, schema.HouseholdColumn)
	}
	if sourceIdx < 0 {
		missing = append(missing, schema.SourceColumn)
	}
	if len(missing) > 0 {
		return nil, newLoadError(KindSchemaMismatch, source,
			fmt.Sprintf("required columns %s not found in %s", quoteAll(missing), quoteAll(headers)), nil)
	}

	meanIdx := columnIndex(headers, schema.MeanColumn)
	medianIdx := columnIndex(headers, schema.MedianColumn)
	if meanIdx < 0 {
		table.Warnings = append(table.Warnings, newLoadError(KindSchemaMismatch, source,
			fmt.Sprintf("mean column %q not found; mean values are unavailable", schema.MeanColumn), nil))
	}
	if medianIdx < 0 {
		table.Warnings = append(table.Warnings, newLoadError(KindSchemaMismatch, source,
			fmt.Sprintf("median column %q not found; median values are unavailable", schema.MedianColumn), nil))
	}

	for i, h := range headers {
		table.numeric[i] = numericRe.MatchString(h) || i == meanIdx || i == medianIdx
	}

	cells := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		row = fitRow(row, len(headers))
		if strings.TrimSpace(row[householdIdx]) == schema.HouseholdColumn {
			table.LabelRows = append(table.LabelRows, row)
			continue
		}

		rec := IncomeRecord{
			HouseholdType: row[householdIdx],
			IncomeSource:  row[sourceIdx],
		}
		if meanIdx >= 0 {
			rec.MeanIncome = amountPtr(row[meanIdx], schema.MissingToken)
		}
		if medianIdx >= 0 {
			rec.MedianIncome = amountPtr(row[medianIdx], schema.MissingToken)
		}
		table.Records = append(table.Records, rec)

		out := make([]string, len(row))
		for j, cell := range row {
			if table.numeric[j] {
				out[j] = formatAmount(amountPtr(cell, schema.MissingToken))
			} else {
				out[j] = cell
			}
		}
		cells = append(cells, out)
	}

	if err := checkMetricLabels(schema, table.LabelRows, meanIdx, medianIdx, source); err != nil {
		return nil, err
	}

	table.frame = buildFrame(headers, table.numeric, cells)
	if table.frame.Err != nil {
		return nil, newLoadError(KindSchemaMismatch, source, "cannot build table", table.frame.Err)
	}

	return table, nil
}

// checkMetricLabels fails when a label row says the configured mean column
// holds medians, or the other way round.
func checkMetricLabels(schema Schema, labelRows [][]string, meanIdx, medianIdx int, source string) error {
	for _, row := range labelRows {
		if meanIdx >= 0 {
			label := row[meanIdx]
			if strings.Contains(label, schema.MedianMarker) && !strings.Contains(label, schema.MeanMarker) {
				return newLoadError(KindSchemaMismatch, source,
					fmt.Sprintf("mean column %q is labelled %q", schema.MeanColumn, label), nil)
			}
		}
		if medianIdx >= 0 {
			label := row[medianIdx]
			if strings.Contains(label, schema.MeanMarker) && !strings.Contains(label, schema.MedianMarker) {
				return newLoadError(KindSchemaMismatch, source,
					fmt.Sprintf("median column %q is labelled %q", schema.MedianColumn, label), nil)
			}
		}
	}
	return nil
}

// fitRow pads short rows with empty cells and drops cells beyond the header.
func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
