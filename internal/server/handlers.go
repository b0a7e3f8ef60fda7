package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/export"
	"github.com/manav03panchal/worklog/internal/logging"
	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/tracker"
	"github.com/manav03panchal/worklog/internal/validate"
)

// entryRequest is the create payload. All fields are required.
type entryRequest struct {
	TaskName    string          `json:"task_name"`
	ProjectName string          `json:"project_name"`
	Category    string          `json:"category"`
	WorkDate    model.Date      `json:"work_date"`
	StartTime   model.TimeOfDay `json:"start_time"`
	EndTime     model.TimeOfDay `json:"end_time"`
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	weekOf, err := queryDate(r, "week_of")
	if err != nil {
		writeError(w, r, err)
		return
	}
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := s.service.ListEntries(tracker.ListFilter{WeekOf: weekOf, From: from, To: to})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.NewValidationError("malformed request body", "Send valid JSON"))
		return
	}

	entry := model.NewWorkEntry(req.TaskName, req.ProjectName, req.Category,
		req.WorkDate, req.StartTime, req.EndTime)
	created, err := s.service.CreateEntry(entry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.service.GetEntry(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	var patch model.EntryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, r, errors.NewValidationError("malformed request body", "Send valid JSON"))
		return
	}

	entry, err := s.service.UpdateEntry(r.PathValue("id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteEntry(r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.service.BulkDelete(from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	groupByParam := r.URL.Query().Get("group_by")
	if groupByParam == "" {
		groupByParam = "project"
	}
	groupBy, err := validate.GroupBy(groupByParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := s.service.Summarize(tracker.SummaryQuery{
		From:       from,
		To:         to,
		GroupBy:    groupBy,
		Projects:   splitList(r.URL.Query().Get("projects")),
		Categories: splitList(r.URL.Query().Get("categories")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	field, err := validate.SuggestionField(r.PathValue("field"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	values, err := s.service.RankSuggestions(field)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := s.service.ExportCSV(from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(from, to)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, name string) (model.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return model.Date{}, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, errors.NewValidationErrorWithField(name, raw,
			"Invalid date", "Use YYYY-MM-DD format")
	}
	return d, nil
}

// splitList parses a comma-separated allow-list parameter.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// errorBody mirrors the API error payload shape.
type errorBody struct {
	Detail     string `json:"detail"`
	Suggestion string `json:"suggestion,omitempty"`
}

// writeError maps the four core error kinds onto status codes:
// not-found 404, validation and range-too-large 400, store failures 503.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Detail: err.Error()}

	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
		body.Detail = "Entry not found"
	case errors.IsRangeTooLarge(err):
		status = http.StatusBadRequest
		body.Detail = "期間は12ヶ月以内で指定してください。"
	case errors.IsValidation(err):
		status = http.StatusBadRequest
		if ve, ok := errors.AsValidation(err); ok {
			body.Suggestion = ve.Suggestion
		}
	case errors.IsStore(err):
		status = http.StatusServiceUnavailable
		logging.ErrorContext(r.Context(), "store failure", logging.KeyError, err.Error())
	default:
		logging.ErrorContext(r.Context(), "request failed", logging.KeyError, err.Error())
	}

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("response encoding failed", logging.KeyError, err.Error())
	}
}
