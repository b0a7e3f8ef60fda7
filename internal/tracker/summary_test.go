package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
)

// =============================================================================
// Summarize Tests
// =============================================================================

func summaryRange() (model.Date, model.Date) {
	return model.NewDate(2026, time.August, 1), model.NewDate(2026, time.August, 31)
}

func TestSummarizeEvenSplit(t *testing.T) {
	s := setupService(t)
	from, to := summaryRange()

	mustCreate(t, s, "Design", "X", "engineering",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))
	mustCreate(t, s, "Review", "Y", "engineering",
		model.NewDate(2026, time.August, 4), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))

	summary, err := s.Summarize(SummaryQuery{From: from, To: to, GroupBy: model.FieldProject})
	require.NoError(t, err)

	assert.Equal(t, 7200, summary.TotalSeconds)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, SummaryItem{Name: "X", Seconds: 3600, Percentage: 50.0}, summary.Items[0])
	assert.Equal(t, SummaryItem{Name: "Y", Seconds: 3600, Percentage: 50.0}, summary.Items[1])
}

func TestSummarizePercentagesRounded(t *testing.T) {
	s := setupService(t)
	from, to := summaryRange()

	// 1h, 1h, 1h across three projects: each is 33.3 after rounding.
	for i, project := range []string{"a", "b", "c"} {
		mustCreate(t, s, "Work", project, "engineering",
			model.NewDate(2026, time.August, 3+i), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))
	}

	summary, err := s.Summarize(SummaryQuery{From: from, To: to, GroupBy: model.FieldProject})
	require.NoError(t, err)

	sum := 0.0
	for _, item := range summary.Items {
		assert.Equal(t, 33.3, item.Percentage)
		sum += item.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.5)
}

func TestSummarizeOrdersBySecondsThenName(t *testing.T) {
	s := setupService(t)
	from, to := summaryRange()

	mustCreate(t, s, "Short", "zeta", "ops",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(9, 30, 0))
	mustCreate(t, s, "Long", "omega", "ops",
		model.NewDate(2026, time.August, 4), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(11, 0, 0))
	mustCreate(t, s, "Tie", "alpha", "ops",
		model.NewDate(2026, time.August, 5), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(9, 30, 0))

	summary, err := s.Summarize(SummaryQuery{From: from, To: to, GroupBy: model.FieldProject})
	require.NoError(t, err)

	require.Len(t, summary.Items, 3)
	assert.Equal(t, "omega", summary.Items[0].Name)
	// 1800s tie resolved by name in byte order.
	assert.Equal(t, "alpha", summary.Items[1].Name)
	assert.Equal(t, "zeta", summary.Items[2].Name)
}

func TestSummarizeGroupByCategory(t *testing.T) {
	s := setupService(t)
	from, to := summaryRange()

	mustCreate(t, s, "Standup", "backend", "meetings",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(9, 30, 0))
	mustCreate(t, s, "Implement", "backend", "engineering",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(10, 0, 0), model.NewTimeOfDay(11, 30, 0))

	summary, err := s.Summarize(SummaryQuery{From: from, To: to, GroupBy: model.FieldCategory})
	require.NoError(t, err)

	require.Len(t, summary.Items, 2)
	assert.Equal(t, "engineering", summary.Items[0].Name)
	assert.Equal(t, 75.0, summary.Items[0].Percentage)
	assert.Equal(t, "meetings", summary.Items[1].Name)
	assert.Equal(t, 25.0, summary.Items[1].Percentage)
}

func TestSummarizeEmptyRange(t *testing.T) {
	s := setupService(t)

	mustCreate(t, s, "Work", "backend", "engineering",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))

	summary, err := s.Summarize(SummaryQuery{
		From:    model.NewDate(2026, time.September, 1),
		To:      model.NewDate(2026, time.September, 30),
		GroupBy: model.FieldProject,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalSeconds)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
}

func TestSummarizeAllowListsFilterRows(t *testing.T) {
	s := setupService(t)
	from, to := summaryRange()

	mustCreate(t, s, "Implement", "backend", "engineering",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))
	mustCreate(t, s, "Standup", "backend", "meetings",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(10, 0, 0), model.NewTimeOfDay(10, 30, 0))
	mustCreate(t, s, "Design", "frontend", "engineering",
		model.NewDate(2026, time.August, 4), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))

	// Category allow-list applies even when grouping by project.
	summary, err := s.Summarize(SummaryQuery{
		From: from, To: to,
		GroupBy:    model.FieldProject,
		Categories: []string{"engineering"},
	})
	require.NoError(t, err)

	assert.Equal(t, 7200, summary.TotalSeconds)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, "backend", summary.Items[0].Name)
	assert.Equal(t, 3600, summary.Items[0].Seconds)

	// Both lists combine as an intersection of row filters.
	summary, err = s.Summarize(SummaryQuery{
		From: from, To: to,
		GroupBy:    model.FieldProject,
		Projects:   []string{"backend"},
		Categories: []string{"engineering"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3600, summary.TotalSeconds)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "backend", summary.Items[0].Name)
}

func TestSummarizeRejectsBadGroupBy(t *testing.T) {
	s := setupService(t)
	from, to := summaryRange()

	_, err := s.Summarize(SummaryQuery{From: from, To: to, GroupBy: model.FieldTask})
	assert.True(t, errors.IsValidation(err))
}

func TestSummarizeRequiresBothBounds(t *testing.T) {
	s := setupService(t)

	_, err := s.Summarize(SummaryQuery{From: model.NewDate(2026, time.August, 1), GroupBy: model.FieldProject})
	assert.True(t, errors.IsValidation(err))
}
