package income

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

// sampleCSV mirrors the layout of the KOSIS export: the year header repeated
// for mean and median, followed by a label row.
const sampleCSV = ` 가구특성별 , 원천별 ,2024,2024
가구특성별,원천별,평균소득 (만원),중앙값소득 (만원)
전체가구,가구소득,7427,5935
전체가구,근로소득,4834,4016
전체가구,사업소득,1182,-
1인가구,가구소득,3423,2600
1인가구,근로소득,250,-
1인가구,이전소득,-,-
2인가구,가구소득,5800,4300
2인가구,근로소득,2900,1800
`

// writeCP949 encodes content as CP949 and writes it into a temp dir.
func writeCP949(t *testing.T, content string) string {
	t.Helper()
	encoded, err := korean.EUCKR.NewEncoder().String(content)
	require.NoError(t, err)
	return writeRaw(t, []byte(encoded))
}

func writeRaw(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "가구특성별_소득원천별_가구소득_20251031184640.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func loadSample(t *testing.T) *Table {
	t.Helper()
	table, err := Load(writeCP949(t, sampleCSV), "cp949", DefaultSchema())
	require.NoError(t, err)
	return table
}
