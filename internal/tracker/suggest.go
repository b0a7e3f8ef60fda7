package tracker

import (
	"sort"

	"github.com/manav03panchal/worklog/internal/model"
)

// RankSuggestions returns the distinct values of the given label field
// across all entries, ordered by descending occurrence count. Equal
// counts are broken by value ascending in byte order so the ordering is
// deterministic. No date filtering applies; zero entries yield an empty
// slice. Intended for autocomplete consumers.
func (s *Service) RankSuggestions(field model.LabelField) ([]string, error) {
	counts, err := s.entries.DistinctCounts(field)
	if err != nil {
		return nil, err
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})

	values := make([]string, len(counts))
	for i, vc := range counts {
		values[i] = vc.Value
	}
	return values, nil
}
