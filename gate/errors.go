package gate

import (
	"errors"
	"fmt"

	"github.com/abrt/retrace-server-interact/check"
	"github.com/abrt/retrace-server-interact/directory"
)

// Exit codes of the gate, one per error kind.
const (
	// ExitDenied is the exit code when the calling user is not authorised.
	ExitDenied = 1 + iota
	// ExitLookup is the exit code when a directory entry cannot be resolved.
	ExitLookup
	// ExitPrivilege is the exit code when the group id cannot be changed.
	ExitPrivilege
	// ExitHandoff is the exit code when the real implementation cannot be executed.
	ExitHandoff
	// ExitFailure is the exit code for an error outside the kinds above.
	ExitFailure
)

// MessageError is an error with a user-facing message.
type MessageError interface {
	// Message returns a user-facing error message.
	Message() string

	error
}

// GetErrorMessage returns whether an error implements [MessageError], and the message if it does.
func GetErrorMessage(err error) (string, bool) {
	var e MessageError
	if !errors.As(err, &e) || e == nil {
		return "", false
	}
	return e.Message(), true
}

// ExitCode returns the exit code corresponding to err.
func ExitCode(err error) int {
	switch {
	case errors.As(err, new(*DeniedError)):
		return ExitDenied
	case errors.As(err, new(*LookupError)):
		return ExitLookup
	case errors.As(err, new(*PrivilegeError)):
		return ExitPrivilege
	case errors.As(err, new(*HandoffError)):
		return ExitHandoff
	default:
		return ExitFailure
	}
}

// A DeniedError is returned when the calling user is not a member of the authorising group.
type DeniedError struct {
	// User is the name of the calling user.
	User string
	// Group is the name of the authorising group.
	Group string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("user %q is not a member of group %q", e.User, e.Group)
}
func (e *DeniedError) Message() string {
	return "must be in the " + e.Group + " group to execute retrace-mock"
}

// Steps of the gate that resolve directory entries.
const (
	StepGroup  = "authorising group"
	StepUser   = "calling user"
	StepTarget = "target group"
)

// A LookupError is returned when a directory entry required by the gate cannot be resolved.
type LookupError struct {
	// Step is one of [StepGroup], [StepUser] or [StepTarget].
	Step string
	// Key is the name or numeric id looked up.
	Key string
	// The underlying error value.
	Err error
}

func (e *LookupError) Error() string { return e.Err.Error() }
func (e *LookupError) Unwrap() error { return e.Err }
func (e *LookupError) Message() string {
	if errors.As(e.Err, new(directory.UnknownGroupError)) ||
		errors.As(e.Err, new(directory.UnknownUserIdError)) {
		return fmt.Sprintf("%s %q does not exist", e.Step, e.Key)
	}
	return fmt.Sprintf("cannot resolve %s %q: %v", e.Step, e.Key, e.Err)
}

// A PrivilegeError is returned when the group id cannot be changed to the target group.
type PrivilegeError struct {
	// Group is the name of the target group.
	Group string
	// Gid is the numeric id of the target group.
	Gid int
	// The underlying error value.
	Err error
}

func (e *PrivilegeError) Error() string { return "setgid: " + e.Err.Error() }
func (e *PrivilegeError) Unwrap() error { return e.Err }
func (e *PrivilegeError) Message() string {
	return fmt.Sprintf("cannot set gid to %d (%s): %v", e.Gid, e.Group, e.Err)
}

// A HandoffError is returned when the real implementation cannot be executed.
type HandoffError struct {
	// Pathname is the real implementation.
	Pathname *check.Absolute
	// The underlying error value.
	Err error
}

func (e *HandoffError) Error() string { return "execve: " + e.Err.Error() }
func (e *HandoffError) Unwrap() error { return e.Err }
func (e *HandoffError) Message() string {
	return fmt.Sprintf("cannot execute %s: %v", e.Pathname, e.Err)
}
