// Package stub provides function call level stubbing and validation
// for system calls that are impossible to check otherwise.
package stub

import (
	"reflect"
	"testing"
)

// this should prevent stub from being inadvertently imported outside tests
func init() {
	if !testing.Testing() {
		panic("stub imported while not in a test")
	}
}

// PanicExit is the panic value of a dispatcher method simulating process exit or a successful exec.
const PanicExit = 0xdeadbeef

// A Stub holds a sequence of expected calls.
type Stub struct {
	testing.TB

	// want is the sequence of expected calls.
	want Expect
	// pos is the current position in [Expect.Calls].
	pos int
}

// New creates a [Stub] expecting the calls held by want.
func New(tb testing.TB, want Expect) *Stub { return &Stub{TB: tb, want: want} }

// Pos returns the current position of [Stub] in its [Expect.Calls]
func (s *Stub) Pos() int { return s.pos }

// Len returns the length of [Expect.Calls].
func (s *Stub) Len() int { return len(s.want.Calls) }

// VisitIncomplete calls f if not all expected calls were made.
func (s *Stub) VisitIncomplete(f func(s *Stub)) {
	s.Helper()

	if s.want.Calls != nil && len(s.want.Calls) != s.pos {
		f(s)
	}
}

// Exits calls f and reports whether it ended in a simulated exit through [PanicExit].
// Any other panic is propagated.
func (s *Stub) Exits(f func()) (exited bool) {
	defer func() {
		switch r := recover(); r {
		case nil:
		case PanicExit:
			exited = true
		default:
			panic(r)
		}
	}()
	f()
	return
}

// Expects checks the name of and returns the current [Call] and advances pos.
func (s *Stub) Expects(name string) (expect *Call) {
	s.Helper()

	if len(s.want.Calls) == s.pos {
		s.Fatal("Expects: advancing beyond expected calls")
	}
	expect = &s.want.Calls[s.pos]
	if name != expect.Name {
		s.Fatalf("Expects: func = %s, want %s", name, expect.Name)
	}
	s.pos++
	return
}

// CheckArg checks an argument comparable with the == operator. Avoid using this with pointers.
func CheckArg[T comparable](s *Stub, arg string, got T, n int) bool {
	s.Helper()

	pos := s.pos - 1
	if pos < 0 || pos >= len(s.want.Calls) {
		panic("invalid call to CheckArg")
	}
	expect := s.want.Calls[pos]
	want, ok := expect.Args[n].(T)
	if !ok || got != want {
		s.Errorf("%s: %s = %#v, want %#v (%d)", expect.Name, arg, got, want, pos)
		return false
	}
	return true
}

// CheckArgReflect checks an argument of any type.
func CheckArgReflect(s *Stub, arg string, got any, n int) bool {
	s.Helper()

	pos := s.pos - 1
	if pos < 0 || pos >= len(s.want.Calls) {
		panic("invalid call to CheckArgReflect")
	}
	expect := s.want.Calls[pos]
	want := expect.Args[n]
	if !reflect.DeepEqual(got, want) {
		s.Errorf("%s: %s = %#v, want %#v (%d)", expect.Name, arg, got, want, pos)
		return false
	}
	return true
}
