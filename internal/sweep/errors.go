package sweep

import "fmt"

// InvalidSpecError reports a malformed Spec: an empty value set, a
// duplicate parameter name, or a repetition count below one. It is
// raised before any trial runs.
type InvalidSpecError struct {
	Reason string
}

// Error implements the error interface for InvalidSpecError.
func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid sweep spec: %s", e.Reason)
}

// UnsupportedModelError reports that neither supported model shape (a
// plain function or a stateful model) was supplied to the adapter.
type UnsupportedModelError struct {
	Reason string
}

// Error implements the error interface for UnsupportedModelError.
func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("unsupported model: %s", e.Reason)
}

// ModelInvocationError wraps a failure raised by the model during a
// single trial. It is captured on the TrialResult rather than
// propagated, so one bad grid point never aborts the rest of the sweep.
type ModelInvocationError struct {
	Point      GridPoint
	Repetition int
	Err        error
}

// Error implements the error interface for ModelInvocationError.
func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model invocation failed at point %d repetition %d: %v", e.Point.Index, e.Repetition, e.Err)
}

// Unwrap exposes the underlying model error for errors.Is/As matching.
func (e *ModelInvocationError) Unwrap() error {
	return e.Err
}
