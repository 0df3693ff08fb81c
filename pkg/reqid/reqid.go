// Package reqid allocates request identifiers of the form REQ_<N>.
package reqid

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix is the fixed identifier prefix.
const Prefix = "REQ_"

// Next returns the next identifier given the set of existing ones. It parses
// the numeric suffix of every identifier matching REQ_<digits>, ignores
// anything that does not match, and returns REQ_ followed by max+1 padded to
// at least three digits. Width grows naturally past 999 (REQ_1000). An empty
// or entirely malformed set yields REQ_001. Next never fails.
//
// Allocation is read-then-write: callers that share an identifier set must
// hold the set's write lock across Next and the subsequent insert.
func Next(existing []string) string {
	highest := uint64(0)
	for _, id := range existing {
		n, ok := Parse(id)
		if ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", Prefix, highest+1)
}

// Parse extracts the numeric suffix of an identifier. ok is false when the
// identifier does not match the REQ_<digits> pattern.
func Parse(id string) (uint64, bool) {
	suffix, found := strings.CutPrefix(id, Prefix)
	if !found || suffix == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
