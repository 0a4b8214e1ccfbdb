package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func readCSVRows(src io.Reader) ([][]string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	decoded, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode csv: %v", ErrMalformedInput, err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = detectDelimiter(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse csv: %v", ErrMalformedInput, err)
	}
	return rows, nil
}

// decodeText strips UTF-8/UTF-16 byte order marks and falls back to
// Windows-1252, the usual charset of spreadsheet CSV exports, when the bytes
// are not valid UTF-8.
func decodeText(data []byte) ([]byte, error) {
	hasUTF16BOM := bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF})
	if hasUTF16BOM || utf8.Valid(data) {
		out, _, err := transform.Bytes(xunicode.BOMOverride(transform.Nop), data)
		return out, err
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	return out, err
}

// detectDelimiter picks ';' when the header line uses it more than ','.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
