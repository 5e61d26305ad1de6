package model

import "fmt"

// ValidationError reports an input that violates the estimation invariants.
// Row is the 1-based position of the offending window entry, or 0 when the
// problem is in the configuration or the entry list as a whole. Callers can
// use Row and Field to highlight the bad value back to the user.
type ValidationError struct {
	Row    int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("entry %d: %s %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
