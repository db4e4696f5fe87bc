package stats

import (
	"cmp"
	"slices"
	"strconv"
)

// MaxLanguages is the number of ranked languages kept.
const MaxLanguages = 5

// RankLanguages counts the non-empty tags and returns the top MaxLanguages
// by count, ties in first-seen order. Percentages are relative to the sum of
// the retained counts, so they add up to about 100 without an "Other" entry.
func RankLanguages(tags []string) []LanguageShare {
	counts := make(map[string]int)
	var order []string
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}
	if len(order) == 0 {
		return nil
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})
	if len(order) > MaxLanguages {
		order = order[:MaxLanguages]
	}

	total := 0
	for _, name := range order {
		total += counts[name]
	}

	shares := make([]LanguageShare, len(order))
	for i, name := range order {
		pct := float64(counts[name]) * 100 / float64(total)
		shares[i] = LanguageShare{
			Name:       name,
			Percentage: strconv.FormatFloat(pct, 'f', 1, 64),
			Count:      counts[name],
		}
	}
	return shares
}
