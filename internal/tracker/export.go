package tracker

import (
	"github.com/manav03panchal/worklog/internal/config"
	"github.com/manav03panchal/worklog/internal/export"
	"github.com/manav03panchal/worklog/internal/logging"
	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/timecalc"
	"github.com/manav03panchal/worklog/internal/validate"
)

// ExportCSV renders the entries in the inclusive range as a complete
// CSV document. The span cap is enforced before any store access.
func (s *Service) ExportCSV(from, to model.Date) ([]byte, error) {
	if err := validate.RequiredRange(from, to); err != nil {
		return nil, err
	}
	if err := export.CheckSpan(from, to, config.Global.Export.SpanCapMonths); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListRange(timecalc.Range{From: from, To: to})
	if err != nil {
		return nil, err
	}

	data, err := export.Render(entries)
	if err != nil {
		return nil, err
	}

	logging.DebugLog("csv exported",
		logging.KeyFrom, from.String(),
		logging.KeyTo, to.String(),
		logging.KeyCount, len(entries))
	return data, nil
}
