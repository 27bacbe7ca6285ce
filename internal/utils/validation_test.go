package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHouseholdType(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "known category",
			value: "1인가구",
		},
		{
			name:  "category with space",
			value: "3인가구 이상",
		},
		{
			name:  "unknown category is still valid",
			value: "존재하지않는유형",
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
			errMsg:  "household type cannot be empty",
		},
		{
			name:    "blank",
			value:   "   ",
			wantErr: true,
			errMsg:  "household type cannot be empty",
		},
		{
			name:    "too long",
			value:   strings.Repeat("가", 101),
			wantErr: true,
			errMsg:  "household type too long (max 100 characters)",
		},
		{
			name:    "script tag",
			value:   "1인가구<script>",
			wantErr: true,
			errMsg:  "household type contains invalid characters",
		},
		{
			name:    "sql comment",
			value:   "1인가구'; DROP TABLE x; --",
			wantErr: true,
			errMsg:  "household type contains invalid characters",
		},
		{
			name:    "invalid utf-8",
			value:   "\xff\xfe",
			wantErr: true,
			errMsg:  "household type is not valid UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHouseholdType(tt.value)
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric(" Mean ")
	assert.NoError(t, err)
	assert.Equal(t, "mean", m)

	m, err = ParseMetric("median")
	assert.NoError(t, err)
	assert.Equal(t, "median", m)

	_, err = ParseMetric("mode")
	assert.EqualError(t, err, "metric must be one of mean, median")
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "1인가구", SanitizeInput("  <b>1인가구</b> "))
}

func TestValidateSelection(t *testing.T) {
	assert.Empty(t, ValidateSelection("1인가구", "mean"))
	assert.Empty(t, ValidateSelection("1인가구", ""))

	fieldErrors := ValidateSelection("", "mode")
	assert.Contains(t, fieldErrors, "type")
	assert.Contains(t, fieldErrors, "metric")
}
