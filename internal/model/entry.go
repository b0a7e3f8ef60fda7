package model

import (
	"fmt"
	"time"
)

// WorkEntry represents one recorded unit of work: a task on a project,
// within a category, on a given date with a start and end time.
type WorkEntry struct {
	Key             string    `json:"key"`
	ID              string    `json:"id"`
	TaskName        string    `json:"task_name" validate:"required,max=255"`
	ProjectName     string    `json:"project_name" validate:"required,max=255"`
	Category        string    `json:"category" validate:"required,max=255"`
	WorkDate        Date      `json:"work_date"`
	StartTime       TimeOfDay `json:"start_time"`
	EndTime         TimeOfDay `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SetKey sets the database key for this entry.
func (e *WorkEntry) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this entry.
func (e *WorkEntry) GetKey() string {
	return e.Key
}

// GenerateEntryKey generates a database key for an entry from its ID.
func GenerateEntryKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixEntry, id)
}

// NewWorkEntry creates a new entry with the given labels and times.
// DurationSeconds is left for the caller to derive; it is never supplied
// directly from the outside.
func NewWorkEntry(taskName, projectName, category string, workDate Date, start, end TimeOfDay) *WorkEntry {
	return &WorkEntry{
		TaskName:    taskName,
		ProjectName: projectName,
		Category:    category,
		WorkDate:    workDate,
		StartTime:   start,
		EndTime:     end,
	}
}

// EntryPatch is a partial update for a WorkEntry. Nil fields are left
// unchanged. Duration is deliberately absent: it is always recomputed
// from the merged start and end times.
type EntryPatch struct {
	TaskName    *string    `json:"task_name,omitempty"`
	ProjectName *string    `json:"project_name,omitempty"`
	Category    *string    `json:"category,omitempty"`
	WorkDate    *Date      `json:"work_date,omitempty"`
	StartTime   *TimeOfDay `json:"start_time,omitempty"`
	EndTime     *TimeOfDay `json:"end_time,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.TaskName == nil && p.ProjectName == nil && p.Category == nil &&
		p.WorkDate == nil && p.StartTime == nil && p.EndTime == nil
}

// Apply merges the patch into the entry field by field.
func (p EntryPatch) Apply(e *WorkEntry) {
	if p.TaskName != nil {
		e.TaskName = *p.TaskName
	}
	if p.ProjectName != nil {
		e.ProjectName = *p.ProjectName
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.WorkDate != nil {
		e.WorkDate = *p.WorkDate
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
}

// LabelField identifies one of the three label columns of an entry.
type LabelField string

const (
	FieldTask     LabelField = "task"
	FieldProject  LabelField = "project"
	FieldCategory LabelField = "category"
)

// Value returns the entry's value for the field.
func (f LabelField) Value(e *WorkEntry) string {
	switch f {
	case FieldTask:
		return e.TaskName
	case FieldProject:
		return e.ProjectName
	default:
		return e.Category
	}
}
