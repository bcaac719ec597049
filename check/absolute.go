// Package check provides types yielding values checked to meet a condition.
package check

import (
	"path"
	"strconv"
)

// AbsoluteError is returned by [NewAbs] and [Named] for a pathname that is not absolute.
type AbsoluteError struct {
	// Name describes what the pathname refers to. It is empty for [NewAbs].
	Name string
	// Pathname is the rejected pathname.
	Pathname string
}

func (e *AbsoluteError) Error() string {
	prefix := "path"
	if e.Name != "" {
		prefix = e.Name + " path"
	}
	if e.Pathname == "" {
		return prefix + " is zero"
	}
	return prefix + " " + strconv.Quote(e.Pathname) + " is not absolute"
}

// Absolute holds a pathname checked to be absolute.
type Absolute struct{ pathname string }

func (a *Absolute) String() string {
	if a.pathname == "" {
		panic("attempted use of zero Absolute")
	}
	return a.pathname
}

// Named checks pathname and returns a new [Absolute] if pathname is absolute.
// The returned error describes pathname by name.
// The pathname is cleaned so "/usr/libexec/../bin" and "/usr/bin" are the same [Absolute].
func Named(name, pathname string) (*Absolute, error) {
	if !path.IsAbs(pathname) {
		return nil, &AbsoluteError{name, pathname}
	}
	return &Absolute{path.Clean(pathname)}, nil
}

// NewAbs is [Named] without a name.
func NewAbs(pathname string) (*Absolute, error) { return Named("", pathname) }

// MustAbs calls [NewAbs] and panics on error.
func MustAbs(pathname string) *Absolute {
	a, err := NewAbs(pathname)
	if err != nil {
		panic(err)
	}
	return a
}
