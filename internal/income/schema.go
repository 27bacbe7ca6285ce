package income

import (
	"fmt"
	"regexp"
)

// Schema declares which raw columns carry which meaning. Column identity is a
// data contract with the upstream export, so it is configured rather than
// guessed from cell contents.
type Schema struct {
	HouseholdColumn string `mapstructure:"household_column" yaml:"household_column" json:"householdColumn"`
	SourceColumn    string `mapstructure:"source_column" yaml:"source_column" json:"sourceColumn"`
	MeanColumn      string `mapstructure:"mean_column" yaml:"mean_column" json:"meanColumn"`
	MedianColumn    string `mapstructure:"median_column" yaml:"median_column" json:"medianColumn"`

	// NumericPattern selects the year-tagged columns that hold amounts.
	NumericPattern string `mapstructure:"numeric_pattern" yaml:"numeric_pattern" json:"numericPattern"`
	// MissingToken is the placeholder the export writes for suppressed values.
	MissingToken string `mapstructure:"missing_token" yaml:"missing_token" json:"missingToken"`

	// MeanMarker and MedianMarker are looked for in label rows to verify that
	// MeanColumn and MedianColumn were not swapped.
	MeanMarker   string `mapstructure:"mean_marker" yaml:"mean_marker" json:"meanMarker"`
	MedianMarker string `mapstructure:"median_marker" yaml:"median_marker" json:"medianMarker"`
}

// DefaultSchema matches the KOSIS "가구특성별 소득원천별 가구소득" export for 2024.
func DefaultSchema() Schema {
	return Schema{
		HouseholdColumn: "가구특성별",
		SourceColumn:    "원천별",
		MeanColumn:      "2024",
		MedianColumn:    "2024.1",
		NumericPattern:  "2024",
		MissingToken:    "-",
		MeanMarker:      "평균",
		MedianMarker:    "중앙",
	}
}

// WithDefaults fills every empty field from DefaultSchema.
func (s Schema) WithDefaults() Schema {
	d := DefaultSchema()
	if s.HouseholdColumn == "" {
		s.HouseholdColumn = d.HouseholdColumn
	}
	if s.SourceColumn == "" {
		s.SourceColumn = d.SourceColumn
	}
	if s.MeanColumn == "" {
		s.MeanColumn = d.MeanColumn
	}
	if s.MedianColumn == "" {
		s.MedianColumn = d.MedianColumn
	}
	if s.NumericPattern == "" {
		s.NumericPattern = d.NumericPattern
	}
	if s.MissingToken == "" {
		s.MissingToken = d.MissingToken
	}
	if s.MeanMarker == "" {
		s.MeanMarker = d.MeanMarker
	}
	if s.MedianMarker == "" {
		s.MedianMarker = d.MedianMarker
	}
	return s
}

func (s Schema) numericMatcher() (*regexp.Regexp, error) {
	re, err := regexp.Compile(s.NumericPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric pattern %q: %w", s.NumericPattern, err)
	}
	return re, nil
}
