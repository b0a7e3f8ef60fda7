package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
)

func TestLabel(t *testing.T) {
	assert.NoError(t, Label("task_name", "Write docs"))
	assert.NoError(t, Label("category", "エンジニアリング"))

	assert.Error(t, Label("task_name", ""))
	assert.Error(t, Label("task_name", "   "))
	assert.Error(t, Label("task_name", strings.Repeat("x", 256)))
	assert.NoError(t, Label("task_name", strings.Repeat("x", 255)))
}

func TestLabelErrorsAreValidationErrors(t *testing.T) {
	err := Label("project_name", "")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestEntry(t *testing.T) {
	valid := model.NewWorkEntry("Review", "backend", "engineering",
		model.NewDate(2026, time.August, 3), model.NewTimeOfDay(9, 0, 0), model.NewTimeOfDay(10, 0, 0))
	assert.NoError(t, Entry(valid))

	missingDate := *valid
	missingDate.WorkDate = model.Date{}
	assert.Error(t, Entry(&missingDate))

	badTime := *valid
	badTime.EndTime = model.TimeOfDay(model.SecondsPerDay)
	assert.Error(t, Entry(&badTime))

	emptyCategory := *valid
	emptyCategory.Category = ""
	assert.Error(t, Entry(&emptyCategory))
}

func TestGroupBy(t *testing.T) {
	field, err := GroupBy("project")
	require.NoError(t, err)
	assert.Equal(t, model.FieldProject, field)

	field, err = GroupBy("category")
	require.NoError(t, err)
	assert.Equal(t, model.FieldCategory, field)

	_, err = GroupBy("task")
	assert.True(t, errors.IsValidation(err))

	_, err = GroupBy("")
	assert.Error(t, err)
}

func TestSuggestionField(t *testing.T) {
	tests := []struct {
		input string
		want  model.LabelField
	}{
		{"task", model.FieldTask},
		{"tasks", model.FieldTask},
		{"project", model.FieldProject},
		{"projects", model.FieldProject},
		{"category", model.FieldCategory},
		{"categories", model.FieldCategory},
	}
	for _, tt := range tests {
		field, err := SuggestionField(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, field)
	}

	_, err := SuggestionField("owner")
	assert.True(t, errors.IsValidation(err))
}

func TestRequiredRange(t *testing.T) {
	from := model.NewDate(2024, time.January, 1)
	to := model.NewDate(2024, time.January, 31)

	assert.NoError(t, RequiredRange(from, to))
	assert.NoError(t, RequiredRange(from, from))

	assert.Error(t, RequiredRange(model.Date{}, to))
	assert.Error(t, RequiredRange(from, model.Date{}))
	assert.Error(t, RequiredRange(to, from))
}
