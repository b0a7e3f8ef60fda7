package tracker

import (
	"math"
	"sort"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/timecalc"
	"github.com/manav03panchal/worklog/internal/validate"
)

// SummaryItem is one group's share of the summarized total.
type SummaryItem struct {
	Name       string  `json:"name"`
	Seconds    int     `json:"seconds"`
	Percentage float64 `json:"percentage"`
}

// Summary is a grouped duration report over a date range.
type Summary struct {
	TotalSeconds int           `json:"total_seconds"`
	Items        []SummaryItem `json:"items"`
}

// SummaryQuery describes a Summarize request. From and To are required
// and inclusive. GroupBy selects the partitioning label. The allow-lists
// are independent row-level filters: each restricts the entries that
// enter the summation regardless of the grouping dimension. Empty lists
// mean no restriction.
type SummaryQuery struct {
	From       model.Date
	To         model.Date
	GroupBy    model.LabelField
	Projects   []string
	Categories []string
}

// Summarize groups entries over the range by the chosen dimension, sums
// durations per group and computes each group's percentage share of the
// total. Items are ordered by seconds descending; equal sums are broken
// by name ascending in byte order. A range with no matching entries
// yields a zero total and an empty item list, never an error.
func (s *Service) Summarize(q SummaryQuery) (*Summary, error) {
	if err := validate.RequiredRange(q.From, q.To); err != nil {
		return nil, err
	}
	if q.GroupBy != model.FieldProject && q.GroupBy != model.FieldCategory {
		return nil, errors.NewValidationErrorWithField("group_by", string(q.GroupBy),
			"Invalid group_by value", "Use 'project' or 'category'")
	}

	entries, err := s.entries.ListRange(timecalc.Range{From: q.From, To: q.To})
	if err != nil {
		return nil, err
	}

	projectAllow := toSet(q.Projects)
	categoryAllow := toSet(q.Categories)

	seconds := make(map[string]int)
	total := 0
	for _, e := range entries {
		if projectAllow != nil && !projectAllow[e.ProjectName] {
			continue
		}
		if categoryAllow != nil && !categoryAllow[e.Category] {
			continue
		}
		seconds[q.GroupBy.Value(e)] += e.DurationSeconds
		total += e.DurationSeconds
	}

	summary := &Summary{TotalSeconds: total, Items: []SummaryItem{}}
	if total == 0 {
		// Nothing matched; an empty result, not an error.
		return summary, nil
	}

	for name, secs := range seconds {
		summary.Items = append(summary.Items, SummaryItem{
			Name:       name,
			Seconds:    secs,
			Percentage: roundPercentage(secs, total),
		})
	}

	sort.Slice(summary.Items, func(i, j int) bool {
		if summary.Items[i].Seconds != summary.Items[j].Seconds {
			return summary.Items[i].Seconds > summary.Items[j].Seconds
		}
		return summary.Items[i].Name < summary.Items[j].Name
	})

	return summary, nil
}

// roundPercentage computes part/total as a percentage rounded to one
// decimal place. total is guaranteed non-zero by the caller.
func roundPercentage(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// toSet builds a membership set, nil for an absent allow-list.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
