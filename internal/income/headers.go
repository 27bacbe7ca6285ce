package income

import (
	"fmt"
	"strings"
)

// normalizeHeaders trims every header and makes the names unique. A repeated
// name gets a ".N" suffix, so a year exported twice ("2024", "2024") becomes
// "2024" and "2024.1". Blank headers are named "Unnamed: <index>".
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	counts := make(map[string]int, len(raw))

	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		cur := counts[name]
		for cur > 0 {
			counts[name] = cur + 1
			name = fmt.Sprintf("%s.%d", name, cur)
			cur = counts[name]
		}
		counts[name] = cur + 1
		headers[i] = name
	}

	return headers
}

func columnIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}
