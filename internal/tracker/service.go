// Package tracker implements the query, aggregation and derivation core
// of Worklog over the entry store.
package tracker

import (
	"time"

	"github.com/manav03panchal/worklog/internal/logging"
	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/storage"
	"github.com/manav03panchal/worklog/internal/timecalc"
	"github.com/manav03panchal/worklog/internal/validate"
)

// Service exposes the core operations to the transport layer. It holds
// no state of its own beyond the injected store handle; concurrent
// invocations are independent.
type Service struct {
	entries *storage.EntryRepo
	now     func() time.Time
}

// New creates a service over the given entry repository.
func New(entries *storage.EntryRepo) *Service {
	return &Service{entries: entries, now: time.Now}
}

// ListFilter is the date filter for ListEntries. A non-zero WeekOf takes
// exclusive precedence over From and To.
type ListFilter struct {
	WeekOf model.Date
	From   model.Date
	To     model.Date
}

// ListEntries resolves the filter into a range and returns the matching
// entries ordered by work date, then start time.
func (s *Service) ListEntries(filter ListFilter) ([]*model.WorkEntry, error) {
	rng := timecalc.ResolveRange(filter.From, filter.To, filter.WeekOf)
	entries, err := s.entries.ListRange(rng)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.WorkEntry{}
	}
	return entries, nil
}

// CreateEntry validates the entry, derives its duration and persists it.
func (s *Service) CreateEntry(entry *model.WorkEntry) (*model.WorkEntry, error) {
	if err := validate.Entry(entry); err != nil {
		return nil, err
	}

	entry.DurationSeconds = timecalc.ComputeDuration(entry.StartTime, entry.EndTime)
	now := s.now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := s.entries.Create(entry); err != nil {
		return nil, err
	}

	logging.DebugLog("entry created",
		logging.KeyEntryID, entry.ID,
		logging.KeyProject, entry.ProjectName)
	return entry, nil
}

// GetEntry retrieves a single entry by ID.
func (s *Service) GetEntry(id string) (*model.WorkEntry, error) {
	return s.entries.Get(id)
}

// UpdateEntry applies a partial update to an entry. Unset patch fields
// keep their prior values. The duration is recomputed from the merged
// times no matter which fields changed, and UpdatedAt is refreshed.
// CreatedAt is immutable.
func (s *Service) UpdateEntry(id string, patch model.EntryPatch) (*model.WorkEntry, error) {
	entry, err := s.entries.Get(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(entry)
	if err := validate.Entry(entry); err != nil {
		return nil, err
	}

	entry.DurationSeconds = timecalc.ComputeDuration(entry.StartTime, entry.EndTime)
	entry.UpdatedAt = s.now().UTC()

	if err := s.entries.Update(entry); err != nil {
		return nil, err
	}

	logging.DebugLog("entry updated", logging.KeyEntryID, entry.ID)
	return entry, nil
}

// DeleteEntry removes an entry permanently.
func (s *Service) DeleteEntry(id string) error {
	if err := s.entries.Delete(id); err != nil {
		return err
	}
	logging.DebugLog("entry deleted", logging.KeyEntryID, id)
	return nil
}

// BulkDeleteResult reports the outcome of a range delete.
type BulkDeleteResult struct {
	DeletedCount int `json:"deleted_count"`
}

// BulkDelete removes every entry whose work date falls in the inclusive
// range. Atomicity is delegated to the store transaction: either all
// qualifying entries are removed or none.
func (s *Service) BulkDelete(from, to model.Date) (*BulkDeleteResult, error) {
	if err := validate.RequiredRange(from, to); err != nil {
		return nil, err
	}

	count, err := s.entries.DeleteRange(timecalc.Range{From: from, To: to})
	if err != nil {
		return nil, err
	}

	logging.Info("entries purged",
		logging.KeyFrom, from.String(),
		logging.KeyTo, to.String(),
		logging.KeyCount, count)
	return &BulkDeleteResult{DeletedCount: count}, nil
}
