package absence

import "errors"

var (
	ErrAbsenceNotFound = errors.New("absence not found")
	ErrInvalidStatus   = errors.New("status must be approved or rejected")
)
