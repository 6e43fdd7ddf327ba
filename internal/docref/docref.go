// Package docref formats and parses document references like
// "TRX-2025-001" used by transactions, payment orders, and debt
// installments.
package docref

import (
	"fmt"
	"strconv"
	"strings"
)

// Document kinds.
const (
	KindTransaction  = "TRX"
	KindPaymentOrder = "OPO"
	KindDebt         = "DEBT"
)

// Format returns a reference like "OPO-2025-001".
func Format(kind string, year, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", kind, year, seq)
}

// Parse splits a reference into kind, year, and sequence.
func Parse(ref string) (kind string, year, seq int, err error) {
	parts := strings.SplitN(ref, "-", 3)
	if len(parts) != 3 || parts[0] == "" {
		return "", 0, 0, fmt.Errorf("invalid reference format: %q", ref)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid year in reference %q: %w", ref, err)
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid sequence in reference %q: %w", ref, err)
	}
	return parts[0], year, seq, nil
}

// NextSeq returns one more than the highest sequence among refs that
// parse as the given kind and year. Unparseable refs are ignored.
func NextSeq(kind string, year int, refs []string) int {
	maxSeq := 0
	for _, ref := range refs {
		k, y, seq, err := Parse(ref)
		if err != nil || k != kind || y != year {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
