package sheet

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/liquidacion/backend/internal/models"
)

// normalizeHeader folds a column header to upper case without accents and
// with single spaces, so "Centro de Vinculacion " matches
// "CENTRO DE VINCULACIÓN".
func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\ufeff", "")
	// transform.Chain keeps state, build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(fold, h); err == nil {
		h = out
	}
	return strings.ToUpper(strings.Join(strings.Fields(h), " "))
}

// columnIndex maps each source column to its position in the header row.
type columnIndex map[string]int

func indexHeader(header []string) (columnIndex, error) {
	seen := map[string]int{}
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := seen[key]; !dup {
			seen[key] = i
		}
	}

	idx := columnIndex{}
	var missing []string
	for _, col := range models.SourceColumns {
		pos, ok := seen[normalizeHeader(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrMalformedInput, strings.Join(missing, ", "))
	}
	return idx, nil
}

func (c columnIndex) get(row []string, col string) string {
	pos, ok := c[col]
	if !ok || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}
