package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amount struct {
	Source string   `json:"source" yaml:"source"`
	Value  *float64 `json:"value" yaml:"value"`
}

type sourceList []amount

func (l sourceList) TableData() Data {
	rows := make([][]string, 0, len(l))
	for _, a := range l {
		cell := ""
		if a.Value != nil {
			cell = "x"
		}
		rows = append(rows, []string{a.Source, cell})
	}
	return Data{Headers: []string{"source", "value"}, Rows: rows}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"", "", false},
		{"wide", "", true},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "table, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatYAML, DetectFormat("YAML", &buf))
	assert.Equal(t, FormatJSON, DetectFormat("", &buf), "non-terminal writers default to JSON")
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	assert.IsType(t, &TableFormatter{}, NewFormatter("unknown"))
}

func TestJSONFormatterKeepsNullAndHangul(t *testing.T) {
	v := 250.0
	data := []amount{{Source: "근로소득", Value: &v}, {Source: "이전소득"}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, data))

	assert.Contains(t, buf.String(), "근로소득")
	assert.Contains(t, buf.String(), `"value": null`)

	var decoded []amount
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.NotNil(t, decoded[0].Value)
	assert.Equal(t, 250.0, *decoded[0].Value)
	assert.Nil(t, decoded[1].Value)
}

func TestYAMLFormatter(t *testing.T) {
	v := 3423.0
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, []amount{{Source: "가구소득", Value: &v}}))

	out := buf.String()
	assert.Contains(t, out, "source: 가구소득")
	assert.Contains(t, out, "value: 3423")
}

func TestTableFormatterRendersMissingCells(t *testing.T) {
	data := Data{
		Title:   "1인가구",
		Headers: []string{"source", "mean"},
		Rows:    [][]string{{"근로소득", "250"}, {"이전소득", ""}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "1인가구")
	assert.Contains(t, out, "근로소득")
	assert.Contains(t, out, "250")
	assert.Contains(t, out, "이전소득")
	assert.Contains(t, out, MissingCell)
}

func TestTableFormatterUsesTabular(t *testing.T) {
	v := 1.0
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, sourceList{{Source: "사업소득", Value: &v}, {Source: "재산소득"}}))

	out := buf.String()
	assert.Contains(t, out, "사업소득")
	assert.Contains(t, out, "재산소득")
	assert.NotContains(t, out, "{", "tabular values are not printed as JSON")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"rows": 20}))
	assert.JSONEq(t, `{"rows": 20}`, buf.String())
}

func TestTableFormatterMultipleTables(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatTable).Format(&buf, []Data{
		{Title: "first", Headers: []string{"a"}, Rows: [][]string{{"1"}}},
		{Title: "second", Headers: []string{"b"}, Rows: [][]string{{"2"}}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("first")), bytes.Index(buf.Bytes(), []byte("second")))
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}
