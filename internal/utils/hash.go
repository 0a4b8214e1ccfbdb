package utils

import (
	"fmt"
	"hash/fnv"

	"github.com/liquidacion/backend/internal/models"
)

// ReportFingerprint hashes the report cells in order. Equal reports give
// equal fingerprints.
func ReportFingerprint(report models.Report) string {
	h := fnv.New64a()
	for _, c := range report.Columns {
		fmt.Fprintf(h, "%s\x1f", c)
	}
	for _, r := range report.Rows {
		for _, v := range r.Values() {
			fmt.Fprintf(h, "%v\x1f", v)
		}
		_, _ = h.Write([]byte{'\x1e'})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
