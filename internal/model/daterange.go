package model

import (
	"time"

	"sovinsight/internal/apperr"
)

// DateLayout is the minute-precision format every inbound date must use.
const DateLayout = "2006-01-02T15:04"

type DateRange struct {
	From string
	To   string
}

// Validate checks both bounds against DateLayout and rejects inverted
// ranges. It runs before any network call is issued.
func (r DateRange) Validate() error {
	from, err := time.Parse(DateLayout, r.From)
	if err != nil {
		return apperr.InvalidDateFormat()
	}
	to, err := time.Parse(DateLayout, r.To)
	if err != nil {
		return apperr.InvalidDateFormat()
	}
	if from.After(to) {
		return apperr.DateRangeInvalid()
	}
	return nil
}
