package scheduler

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseChapterSpec expands a chapter descriptor like "1-5", "1,2,3" or
// "intro, 2-4, appendix" into a flat ordered item list. Numeric ranges
// expand inclusively; any token that doesn't parse stays in the list as a
// literal, so non-numeric chapter labels survive unchanged.
func ParseChapterSpec(spec string) []string {
	tokens := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var items []string
	for _, tok := range tokens {
		if lo, hi, ok := parseRange(tok); ok {
			for n := lo; n <= hi; n++ {
				items = append(items, strconv.Itoa(n))
			}
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil {
			items = append(items, strconv.Itoa(n))
			continue
		}
		items = append(items, tok)
	}
	return items
}

// parseRange recognizes "a-b" with numeric, ascending bounds.
func parseRange(tok string) (lo, hi int, ok bool) {
	before, after, found := strings.Cut(tok, "-")
	if !found {
		return 0, 0, false
	}
	lo, errLo := strconv.Atoi(before)
	hi, errHi := strconv.Atoi(after)
	if errLo != nil || errHi != nil || lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// SpreadChapters distributes items across daysLeft buckets: perDay =
// ceil(items/days), buckets filled greedily from day one in original order.
// Trailing days stay empty when the items run out first.
func SpreadChapters(items []string, daysLeft int) [][]string {
	if daysLeft <= 0 || len(items) == 0 {
		return nil
	}

	perDay := (len(items) + daysLeft - 1) / daysLeft
	days := make([][]string, 0, daysLeft)
	for i := 0; i < len(items); i += perDay {
		end := i + perDay
		if end > len(items) {
			end = len(items)
		}
		days = append(days, items[i:end])
	}
	return days
}
