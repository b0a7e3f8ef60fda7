// Package parser turns CLI date expressions into civil dates.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/model"
)

// ParseDate parses a date expression into a civil date. Accepts the
// canonical YYYY-MM-DD form first, then natural language ("today",
// "last monday", "3 days ago") via go-dateparser. An empty expression
// yields the zero date, meaning "unset".
func ParseDate(input string) (model.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return model.Date{}, nil
	}

	if d, err := model.ParseDate(input); err == nil {
		return d, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return model.Date{}, errors.NewValidationErrorWithField("date", input,
			"Unrecognized date",
			"Use YYYY-MM-DD or a phrase like 'last monday'")
	}
	return model.DateOf(result.Time), nil
}

// ParseTimeOfDay parses a clock expression in HH:MM or HH:MM:SS form.
func ParseTimeOfDay(input string) (model.TimeOfDay, error) {
	t, err := model.ParseTimeOfDay(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.NewValidationErrorWithField("time", input,
			"Unrecognized time of day",
			"Use HH:MM or HH:MM:SS")
	}
	return t, nil
}
