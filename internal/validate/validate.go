// Package validate provides input validation helpers for Worklog.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
)

const (
	// MaxLabelLength is the maximum length for task, project and category labels.
	MaxLabelLength = 255
)

// Label validates a task, project or category label. Labels are
// case-sensitive and stored without normalization.
func Label(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationErrorWithField(field, value,
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	if utf8.RuneCountInString(value) > MaxLabelLength {
		return errors.NewValidationErrorWithField(field, value,
			field+" too long",
			"Labels must be 255 characters or fewer")
	}
	return nil
}

// Entry validates all labels and times of an entry before persistence.
func Entry(e *model.WorkEntry) error {
	if err := Label("task_name", e.TaskName); err != nil {
		return err
	}
	if err := Label("project_name", e.ProjectName); err != nil {
		return err
	}
	if err := Label("category", e.Category); err != nil {
		return err
	}
	if e.WorkDate.IsZero() {
		return errors.NewValidationError("work_date is required",
			"Provide a date in YYYY-MM-DD format")
	}
	if !e.StartTime.Valid() || !e.EndTime.Valid() {
		return errors.NewValidationError("invalid time of day",
			"Times must be between 00:00:00 and 23:59:59")
	}
	return nil
}

// GroupBy validates and parses a report grouping dimension.
func GroupBy(s string) (model.LabelField, error) {
	switch s {
	case "project":
		return model.FieldProject, nil
	case "category":
		return model.FieldCategory, nil
	default:
		return "", errors.NewValidationErrorWithField("group_by", s,
			"Invalid group_by value",
			"Use 'project' or 'category'")
	}
}

// SuggestionField validates and parses a suggestion ranking field.
func SuggestionField(s string) (model.LabelField, error) {
	switch s {
	case "task", "tasks":
		return model.FieldTask, nil
	case "project", "projects":
		return model.FieldProject, nil
	case "category", "categories":
		return model.FieldCategory, nil
	default:
		return "", errors.NewValidationErrorWithField("field", s,
			"Invalid suggestion field",
			"Use 'task', 'project' or 'category'")
	}
}

// RequiredRange validates that both bounds of a range are present and ordered.
func RequiredRange(from, to model.Date) error {
	if from.IsZero() || to.IsZero() {
		return errors.NewValidationError("from and to are required",
			"Provide both dates in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return errors.NewValidationErrorWithField("to", to.String(),
			"Range end precedes start",
			"Swap the from and to dates")
	}
	return nil
}
