package parser

import (
	"fmt"
	"sort"
	"time"
)

// Grouping strategies accepted by GroupByDate.
const (
	GroupByMonth   = "month"
	GroupByQuarter = "quarter"
	GroupByYear    = "year"
)

// GroupByDate partitions emails into date buckets according to the given
// strategy. Groups are ordered by key ascending and the emails within each
// group by date ascending; the zero-padded key formats make lexicographic
// order chronological.
//
// Key formats:
//   - month:   "2008-01-January"
//   - quarter: "2008-Q1"
//   - year:    "2008"
func GroupByDate(emails []*Email, strategy string) ([]Group, error) {
	switch strategy {
	case GroupByMonth, GroupByQuarter, GroupByYear:
	default:
		return nil, fmt.Errorf("invalid grouping strategy: %q (must be %q, %q or %q)",
			strategy, GroupByMonth, GroupByQuarter, GroupByYear)
	}

	buckets := make(map[string][]*Email)
	for _, email := range emails {
		key := groupKey(email.Date, strategy)
		buckets[key] = append(buckets[key], email)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		sortByDate(buckets[key])
		groups = append(groups, Group{Key: key, Emails: buckets[key]})
	}
	return groups, nil
}

// groupKey formats the bucket key for a date under the given strategy.
func groupKey(date time.Time, strategy string) string {
	switch strategy {
	case GroupByMonth:
		return date.Format("2006-01-January")
	case GroupByQuarter:
		quarter := (int(date.Month())-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", date.Year(), quarter)
	default: // year
		return fmt.Sprintf("%d", date.Year())
	}
}
