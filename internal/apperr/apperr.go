// Package apperr defines the error taxonomy shared across the insight
// pipeline and maps each kind to an HTTP status at the transport boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInvalidDateFormat Kind = iota
	KindDateRangeInvalid
	KindUpstreamUnavailable
	KindInvalidResponseShape
	KindGenerationUnavailable
)

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to the status reported to the caller. Date
// taxonomy errors are user errors; everything else means a collaborator
// behind this service failed.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidDateFormat, KindDateRangeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func InvalidDateFormat() error {
	return &Error{Kind: KindInvalidDateFormat, Detail: "Dates must be in 'YYYY-MM-DDTHH:MM' format"}
}

func DateRangeInvalid() error {
	return &Error{Kind: KindDateRangeInvalid, Detail: "from_date must be earlier than or equal to to_date"}
}

func UpstreamUnavailable(detail string, err error) error {
	return &Error{Kind: KindUpstreamUnavailable, Detail: detail, Err: err}
}

func InvalidResponseShape(detail string, err error) error {
	return &Error{Kind: KindInvalidResponseShape, Detail: detail, Err: err}
}

func GenerationUnavailable(err error) error {
	return &Error{Kind: KindGenerationUnavailable, Detail: "failed to generate report text", Err: err}
}

// KindOf reports the taxonomy kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// HTTPStatus resolves the status for any error surfaced by the pipeline.
// Errors outside the taxonomy are treated as internal.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
