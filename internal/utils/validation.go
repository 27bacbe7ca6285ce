package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxHouseholdTypeLength = 100

var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// Metric names accepted by the chart endpoints.
var validMetrics = []string{"mean", "median"}

// ValidateHouseholdType checks a household type taken from a request. It does
// not check membership: unknown types are a valid, empty selection.
func ValidateHouseholdType(householdType string) error {
	if strings.TrimSpace(householdType) == "" {
		return errors.New("household type cannot be empty")
	}

	if !utf8.ValidString(householdType) {
		return errors.New("household type is not valid UTF-8")
	}

	if utf8.RuneCountInString(householdType) > maxHouseholdTypeLength {
		return fmt.Errorf("household type too long (max %d characters)", maxHouseholdTypeLength)
	}

	if dangerousPattern.MatchString(householdType) {
		return errors.New("household type contains invalid characters")
	}

	return nil
}

// ParseMetric normalizes a chart metric name.
func ParseMetric(metric string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(metric))
	for _, valid := range validMetrics {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("metric must be one of %s", strings.Join(validMetrics, ", "))
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateSelection validates the path parameters of a chart or view request.
// metric is ignored when empty.
func ValidateSelection(householdType, metric string) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateHouseholdType(householdType); err != nil {
		fieldErrors["type"] = append(fieldErrors["type"], err.Error())
	}

	if metric != "" {
		if _, err := ParseMetric(metric); err != nil {
			fieldErrors["metric"] = append(fieldErrors["metric"], err.Error())
		}
	}

	return fieldErrors
}
