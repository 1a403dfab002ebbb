// Package schoolyear resolves the "Y/Y+1" academic year labels that scope
// payments and schedule entries. The school year turns over in September.
package schoolyear

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// StartMonth is the first month of a new school year.
const StartMonth = time.September

// CurrentLabel returns the label for the school year containing now:
// "2025/2026" from September 2025 through August 2026.
func CurrentLabel(now time.Time) string {
	year := now.Year()
	if now.Month() >= StartMonth {
		return fmt.Sprintf("%d/%d", year, year+1)
	}
	return fmt.Sprintf("%d/%d", year-1, year)
}

// AvailableLabels merges the current label with every label already present
// on persisted records, deduplicated and sorted descending (newest first,
// given the fixed "YYYY/YYYY" format). Blank labels are skipped; otherwise
// labels pass through unvalidated, matching what the store holds.
func AvailableLabels(now time.Time, persisted []string) []string {
	seen := map[string]struct{}{}
	labels := make([]string, 0, len(persisted)+1)

	add := func(label string) {
		label = strings.TrimSpace(label)
		if label == "" {
			return
		}
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	add(CurrentLabel(now))
	for _, label := range persisted {
		add(label)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(labels)))
	return labels
}
