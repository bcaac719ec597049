package stub

import (
	"errors"
	"slices"
)

// ExpectArgs holds expected arguments of a dispatcher method, in declaration order.
// The gate's widest method is exec with three arguments.
type ExpectArgs = [3]any

// An Expect holds the ordered sequence of dispatcher calls a test expects.
type Expect struct {
	Calls []Call
}

// A Call holds expected arguments of a dispatcher call and its outcome.
type Call struct {
	// Name is the dispatcher method name.
	Name string
	// Args are the expected arguments.
	Args ExpectArgs
	// Ret is the value returned alongside Err.
	Ret any
	// Err is the error returned by the call.
	Err error
}

// ErrCheck is returned in place of [Call.Err] when an argument did not match.
var ErrCheck = errors.New("dispatcher called with unexpected arguments")

// Error returns [Call.Err] if every argument check passed, or [ErrCheck] otherwise.
func (k *Call) Error(ok ...bool) error {
	if slices.Contains(ok, false) {
		return ErrCheck
	}
	return k.Err
}

// Fault is an error injected into a [Call] to stand for a failure of the system.
// Faults are equal when their descriptions are.
type Fault string

func (e Fault) Error() string { return "injected fault: " + string(e) }
