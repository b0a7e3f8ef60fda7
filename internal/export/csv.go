// Package export renders entries into the CSV artifact consumed by
// spreadsheet applications.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/timecalc"
)

// bom is the UTF-8 byte-order mark. Excel needs it to pick the right
// encoding for the Japanese column labels.
var bom = []byte{0xEF, 0xBB, 0xBF}

// header holds the seven localized column labels, in column order.
var header = []string{
	"タスク名",
	"プロジェクト名",
	"カテゴリ",
	"作業日",
	"開始時刻",
	"終了時刻",
	"作業時間",
}

// CheckSpan enforces the export span cap: to must not exceed from plus
// capMonths calendar months. The check is month-based, not day-based.
func CheckSpan(from, to model.Date, capMonths int) error {
	if to.After(from.AddMonths(capMonths)) {
		return errors.ErrRangeTooLarge
	}
	return nil
}

// Render produces the complete CSV document for the given entries:
// UTF-8 with BOM, one header row, one row per entry. Entries are
// written in the order given; callers pass them ordered by work date,
// then start time.
func Render(entries []*model.WorkEntry) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(bom)

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, e := range entries {
		row := []string{
			e.TaskName,
			e.ProjectName,
			e.Category,
			e.WorkDate.String(),
			e.StartTime.HHMM(),
			e.EndTime.HHMM(),
			timecalc.FormatDurationHHMMSS(e.DurationSeconds),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the export filename convention for a range:
// time_tracking_YYYYMMDD_YYYYMMDD.csv.
func Filename(from, to model.Date) string {
	return fmt.Sprintf("time_tracking_%s_%s.csv", from.Compact(), to.Compact())
}
