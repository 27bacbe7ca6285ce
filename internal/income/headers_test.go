package income

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeaders(t *testing.T) {
	t.Run("trims and renames repeated years", func(t *testing.T) {
		got := normalizeHeaders([]string{" 가구특성별 ", "원천별\t", "2024", "2024", "2024"})
		assert.Equal(t, []string{"가구특성별", "원천별", "2024", "2024.1", "2024.2"}, got)
	})

	t.Run("keeps already distinct names", func(t *testing.T) {
		got := normalizeHeaders([]string{"가구특성별", "원천별", "2024", "2024.1"})
		assert.Equal(t, []string{"가구특성별", "원천별", "2024", "2024.1"}, got)
	})

	t.Run("avoids collisions with existing suffixes", func(t *testing.T) {
		got := normalizeHeaders([]string{"a", "a", "a.1"})
		assert.Equal(t, []string{"a", "a.1", "a.1.1"}, got)
	})

	t.Run("names blank headers", func(t *testing.T) {
		got := normalizeHeaders([]string{"가구특성별", " ", "원천별"})
		assert.Equal(t, []string{"가구특성별", "Unnamed: 1", "원천별"}, got)
	})
}
