package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
)

// =============================================================================
// Date Expression Tests
// =============================================================================

func TestParseDateCanonical(t *testing.T) {
	d, err := ParseDate("2026-08-03")
	require.NoError(t, err)
	assert.Equal(t, model.NewDate(2026, time.August, 3), d)
}

func TestParseDateEmptyMeansUnset(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseDate("   ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestParseDateToday(t *testing.T) {
	d, err := ParseDate("today")
	require.NoError(t, err)
	assert.Equal(t, model.DateOf(time.Now()), d)
}

func TestParseDateYesterday(t *testing.T) {
	d, err := ParseDate("yesterday")
	require.NoError(t, err)
	assert.Equal(t, model.DateOf(time.Now().AddDate(0, 0, -1)), d)
}

func TestParseDateGarbage(t *testing.T) {
	_, err := ParseDate("not a date at all xyzzy")
	assert.True(t, errors.IsValidation(err))
}

// =============================================================================
// Time Expression Tests
// =============================================================================

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, model.NewTimeOfDay(9, 30, 0), tod)

	tod, err = ParseTimeOfDay("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, model.NewTimeOfDay(23, 59, 59), tod)
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	_, err := ParseTimeOfDay("25:00")
	assert.True(t, errors.IsValidation(err))

	_, err = ParseTimeOfDay("")
	assert.True(t, errors.IsValidation(err))
}
