package errors

import "errors"

var (
	ErrDataLoad             = errors.New("error loading dataset")
	ErrUnknownCity          = errors.New("unknown city")
	ErrMissingColumn        = errors.New("missing required column")
	ErrInvalidTripData      = errors.New("invalid trip data")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDurationType  = errors.New("invalid duration type")
	ErrInvalidBirthYear     = errors.New("invalid birth year")
	ErrInvalidCoordinates   = errors.New("invalid station coordinates")
	ErrInvalidFilter        = errors.New("invalid filter value")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInputClosed          = errors.New("input closed")
	ErrNoData               = errors.New("no data available for the selected filters")
	ErrPublisherUnavailable = errors.New("summary publisher unavailable")
)
