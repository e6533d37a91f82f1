package report

import "errors"

var (
	// ErrInvalidPeriod is raised before any data is read when the requested
	// month/year pair cannot identify a calendar month.
	ErrInvalidPeriod = errors.New("month must be between 1 and 12 and year must be a valid year")

	// ErrUpstreamFetch wraps failures while reading source data. An empty
	// period is not a fetch failure; it yields a zero report.
	ErrUpstreamFetch = errors.New("failed to fetch report source data")
)
