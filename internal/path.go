package internal

import (
	"log"
	"slices"

	"github.com/abrt/retrace-server-interact/check"
	"github.com/abrt/retrace-server-interact/gate"
)

// Install configuration of the gate.
//
// These are set by the linker.
var (
	realPath    = "/usr/libexec/retrace-server-interact-real"
	authGroup   = "retrace"
	targetGroup = "mock"
)

// whitelist holds names of environment variables passed to the real implementation.
var whitelist = []string{"LANG"}

// MustConfig returns the [gate.Config] this program was built with.
func MustConfig() *gate.Config { return mustConfig(log.Fatal, realPath, authGroup, targetGroup) }

func mustConfig(fatal func(v ...any), pathname, group, target string) *gate.Config {
	a := mustCheckPath(fatal, "real implementation", pathname)
	if a == nil {
		return nil // unreachable
	}
	if group == "" || target == "" {
		fatal("invalid group name, this program is compiled incorrectly")
		return nil // unreachable
	}
	return &gate.Config{Group: group, Target: target, Pathname: a, Whitelist: slices.Clone(whitelist)}
}

// mustCheckPath checks pathname with [check.Named], calling fatal if it is not absolute.
func mustCheckPath(fatal func(v ...any), name, pathname string) *check.Absolute {
	a, err := check.Named(name, pathname)
	if err != nil {
		fatal(err.Error() + ", this program is compiled incorrectly")
		return nil // unreachable
	}
	return a
}
