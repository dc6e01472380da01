package wizard

import "errors"

var (
	// ErrSubmitted is returned by any transition attempted after submission.
	ErrSubmitted = errors.New("wizard already submitted")
	// ErrFirstStep is returned by Back on the first step.
	ErrFirstStep = errors.New("already on the first step")
	// ErrLastStep is returned by Advance on the budget step; use Submit.
	ErrLastStep = errors.New("already on the last step, submit instead")
	// ErrNotReady is returned by Submit before the budget step is reached.
	ErrNotReady = errors.New("wizard is not on the budget step")
	// ErrUnknownCPU is returned when selecting an id that was never fetched.
	ErrUnknownCPU = errors.New("unknown cpu")
)

// ValidationError reports a required field that blocks a step transition.
type ValidationError struct {
	Field   string // dotted field path, e.g. "psu.wattage"
	Message string // user-facing alert text
}

func (e *ValidationError) Error() string {
	return e.Message + " (" + e.Field + ")"
}
