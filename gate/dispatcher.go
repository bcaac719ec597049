package gate

import (
	"log"
	"os"

	"github.com/abrt/retrace-server-interact/directory"
	"golang.org/x/sys/unix"
)

// syscallDispatcher provides methods that make state-dependent system calls as part of their behaviour.
// Every privileged action of the gate goes through syscallDispatcher so its ordering can be checked.
type syscallDispatcher interface {
	// getuid provides [unix.Getuid].
	getuid() int
	// lookupEnv provides [os.LookupEnv].
	lookupEnv(key string) (string, bool)
	// lookupGroup provides [directory.LookupGroup].
	lookupGroup(name string) (*directory.Group, error)
	// lookupUid provides [directory.LookupUid].
	lookupUid(uid int) (*directory.User, error)
	// setgid provides [unix.Setgid].
	setgid(gid int) error
	// exec provides [unix.Exec].
	exec(argv0 string, argv []string, envv []string) error

	// println provides [log.Println].
	println(v ...any)
	// exit provides [os.Exit].
	exit(code int)
}

// direct implements syscallDispatcher on the current kernel.
type direct struct{}

func (direct) getuid() int                                       { return unix.Getuid() }
func (direct) lookupEnv(key string) (string, bool)               { return os.LookupEnv(key) }
func (direct) lookupGroup(name string) (*directory.Group, error) { return directory.LookupGroup(name) }
func (direct) lookupUid(uid int) (*directory.User, error)        { return directory.LookupUid(uid) }
func (direct) setgid(gid int) error                              { return unix.Setgid(gid) }
func (direct) exec(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}

func (direct) println(v ...any) { log.Println(v...) }
func (direct) exit(code int)    { os.Exit(code) }
