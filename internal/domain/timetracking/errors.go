package timetracking

import "errors"

var (
	ErrInvalidKind = errors.New("punch kind must be in or out")
)
