package tracker

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
)

// =============================================================================
// CSV Export Tests
// =============================================================================

func TestExportCSVTwelveMonthBoundary(t *testing.T) {
	s := setupService(t)

	// Exactly twelve months is allowed.
	data, err := s.ExportCSV(model.NewDate(2024, time.January, 1), model.NewDate(2025, time.January, 1))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	// One day over the cap is rejected before any retrieval happens.
	_, err = s.ExportCSV(model.NewDate(2024, time.January, 1), model.NewDate(2025, time.January, 2))
	assert.True(t, errors.IsRangeTooLarge(err))
}

func TestExportCSVRequiresBothBounds(t *testing.T) {
	s := setupService(t)

	_, err := s.ExportCSV(model.NewDate(2026, time.August, 1), model.Date{})
	assert.True(t, errors.IsValidation(err))
}

func TestExportCSVIncludesEntriesInRange(t *testing.T) {
	s := setupService(t)

	mustCreate(t, s, "Review", "backend", "engineering",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 30, 0))
	mustCreate(t, s, "Outside", "backend", "engineering",
		model.NewDate(2026, time.October, 1), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))

	data, err := s.ExportCSV(model.NewDate(2026, time.August, 1), model.NewDate(2026, time.August, 31))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Review,backend,engineering,2026-08-03,09:00,10:30,01:30:00")
	assert.NotContains(t, text, "Outside")
}
