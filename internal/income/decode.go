package income

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the code page KOSIS uses for CSV downloads.
const DefaultEncoding = "cp949"

var utf8BOM = []byte("\xef\xbb\xbf")

// LookupEncoding resolves an encoding label. The Windows code page names that
// Korean exports are usually described with are accepted alongside the WHATWG
// labels understood by htmlindex.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cp949", "ms949", "uhc", "euc-kr", "euckr":
		return korean.EUCKR, nil
	case "utf-8", "utf8":
		return unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}

func isUTF8Label(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8", "unicode-1-1-utf-8":
		return true
	}
	return false
}

// decodeBytes converts raw file contents to UTF-8. Legacy decoders substitute
// U+FFFD for byte sequences they cannot map, so a replacement rune in the
// output is treated as a decoding failure.
func decodeBytes(raw []byte, name string) ([]byte, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}

	if isUTF8Label(name) {
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("input is not valid UTF-8")
		}
		return bytes.TrimPrefix(raw, utf8BOM), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, err
	}
	if idx := bytes.IndexRune(decoded, utf8.RuneError); idx >= 0 {
		return nil, fmt.Errorf("invalid byte sequence for %s near decoded offset %d", name, idx)
	}
	return bytes.TrimPrefix(decoded, utf8BOM), nil
}
