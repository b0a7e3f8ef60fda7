package storage

import (
	"sort"

	"github.com/google/uuid"

	apperrors "github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/timecalc"
)

// EntryRepo provides operations for WorkEntry records. It is the single
// store boundary the core depends on: atomic single-row writes, atomic
// range deletes and ordered range scans.
type EntryRepo struct {
	db *DB
}

// NewEntryRepo creates a new entry repository.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Create persists a new entry under a generated key.
func (r *EntryRepo) Create(entry *model.WorkEntry) error {
	// UUID v7 for time-sortable keys
	id, err := uuid.NewV7()
	if err != nil {
		return apperrors.NewStoreErrorWithOp("create", "id generation failed", err)
	}
	entry.ID = id.String()
	entry.Key = model.GenerateEntryKey(entry.ID)
	if err := r.db.Set(entry); err != nil {
		return apperrors.NewStoreErrorWithOp("create", "write failed", err)
	}
	return nil
}

// Get retrieves an entry by ID.
func (r *EntryRepo) Get(id string) (*model.WorkEntry, error) {
	entry := &model.WorkEntry{}
	if err := r.db.Get(model.GenerateEntryKey(id), entry); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.NewStoreErrorWithOp("get", "read failed", err)
	}
	return entry, nil
}

// Update overwrites an existing entry.
func (r *EntryRepo) Update(entry *model.WorkEntry) error {
	if err := r.db.Set(entry); err != nil {
		return apperrors.NewStoreErrorWithOp("update", "write failed", err)
	}
	return nil
}

// Delete removes an entry by ID. Deletion is permanent; there is no
// soft-delete.
func (r *EntryRepo) Delete(id string) error {
	key := model.GenerateEntryKey(id)
	exists, err := r.db.Exists(key)
	if err != nil {
		return apperrors.NewStoreErrorWithOp("delete", "read failed", err)
	}
	if !exists {
		return apperrors.ErrEntryNotFound
	}
	if err := r.db.Delete(key); err != nil {
		return apperrors.NewStoreErrorWithOp("delete", "write failed", err)
	}
	return nil
}

// DeleteRange removes every entry whose work date falls in the inclusive
// range, in one transaction, and returns the number removed.
func (r *EntryRepo) DeleteRange(rng timecalc.Range) (int, error) {
	count, err := DeleteMatchingByPrefix(r.db, model.PrefixEntry+":", newEntry, func(e *model.WorkEntry) bool {
		return rng.Contains(e.WorkDate)
	})
	if err != nil {
		return 0, apperrors.NewStoreErrorWithOp("delete_range", "transaction failed", err)
	}
	return count, nil
}

// ListRange retrieves entries whose work date falls in the range,
// ordered by work date ascending, then start time ascending.
func (r *EntryRepo) ListRange(rng timecalc.Range) ([]*model.WorkEntry, error) {
	entries, err := GetFilteredByPrefix(r.db, model.PrefixEntry+":", newEntry, func(e *model.WorkEntry) bool {
		return rng.Contains(e.WorkDate)
	})
	if err != nil {
		return nil, apperrors.NewStoreErrorWithOp("list", "scan failed", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].WorkDate.Equal(entries[j].WorkDate) {
			return entries[i].WorkDate.Before(entries[j].WorkDate)
		}
		return entries[i].StartTime < entries[j].StartTime
	})
	return entries, nil
}

// List retrieves all entries in work date/start time order.
func (r *EntryRepo) List() ([]*model.WorkEntry, error) {
	return r.ListRange(timecalc.Range{})
}

// ValueCount pairs a distinct label value with its occurrence count.
type ValueCount struct {
	Value string
	Count int
}

// DistinctCounts materializes all entries and counts the distinct values
// of the given label field. Ordering is left to the caller.
func (r *EntryRepo) DistinctCounts(field model.LabelField) ([]ValueCount, error) {
	entries, err := GetAllByPrefix(r.db, model.PrefixEntry+":", newEntry)
	if err != nil {
		return nil, apperrors.NewStoreErrorWithOp("distinct_counts", "scan failed", err)
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[field.Value(e)]++
	}

	result := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, ValueCount{Value: value, Count: count})
	}
	return result, nil
}

func newEntry() *model.WorkEntry {
	return &model.WorkEntry{}
}
