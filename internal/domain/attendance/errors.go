package attendance

import "errors"

// Attendance domain errors
var (
	// ErrShiftNotFound means the shift catalog has no shift for the
	// employee's configured shift id. Configuration error, not transient.
	ErrShiftNotFound = errors.New("no shift found for employee's shift id")

	// ErrShiftWindowInvalid means the resolved shift has a missing or
	// unparsable start/end time.
	ErrShiftWindowInvalid = errors.New("shift start or end time is missing or invalid")
)
