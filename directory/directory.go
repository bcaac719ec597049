// Package directory resolves entries of the system group and user databases.
//
// Lookups go through the C library so every configured NSS source is
// consulted, and an absent entry is reported as an error value rather
// than a nil result.
package directory

import (
	"slices"
	"strconv"
)

// A Group is an entry of the group database.
type Group struct {
	// Name is the group name.
	Name string
	// Gid is the numeric group id.
	Gid int
	// Members holds user names as listed by the database.
	// Order is unspecified and entries are not guaranteed to be unique.
	Members []string
}

// Has returns whether name appears in the member list of g.
func (g *Group) Has(name string) bool { return slices.Contains(g.Members, name) }

// A User is an entry of the user database.
type User struct {
	// Name is the login name.
	Name string
	// Uid is the numeric user id.
	Uid int
	// Gid is the numeric primary group id.
	Gid int
}

// UnknownGroupError is returned by [LookupGroup] when a group cannot be found.
type UnknownGroupError string

func (e UnknownGroupError) Error() string { return "unknown group " + strconv.Quote(string(e)) }

// UnknownUserIdError is returned by [LookupUid] when a user cannot be found.
type UnknownUserIdError int

func (e UnknownUserIdError) Error() string { return "unknown userid " + strconv.Itoa(int(e)) }

// LookupGroup looks up a group by name.
// If the group cannot be found, the returned error is of type [UnknownGroupError].
func LookupGroup(name string) (*Group, error) { return lookupGroup(name) }

// LookupUid looks up a user by numeric user id.
// If the user cannot be found, the returned error is of type [UnknownUserIdError].
func LookupUid(uid int) (*User, error) { return lookupUid(uid) }
