// Package gate authorises the calling user against a group membership policy,
// then hands off to a fixed executable with a sanitised environment and
// a lowered group identity.
//
// The gate runs once per process and never resumes after a failure:
// resolve, authorise, sanitise, setgid, exec. Nothing past authorisation
// happens for a caller who is not a member of the authorising group.
package gate

import (
	"strconv"

	"github.com/abrt/retrace-server-interact/check"
)

// Config describes the policy enforced by the gate.
type Config struct {
	// Group is the name of the authorising group.
	// Its member list is the access control policy.
	Group string
	// Target is the name of the group assumed right before handoff.
	Target string
	// Pathname is the real implementation receiving control.
	Pathname *check.Absolute
	// Whitelist holds names of environment variables passed through to Pathname.
	Whitelist []string
}

// Run authorises the calling user and replaces the current process with [Config.Pathname].
// Run only returns on failure, and the returned error is always one of
// [DeniedError], [LookupError], [PrivilegeError] or [HandoffError].
func (c *Config) Run(args []string) error { return c.run(direct{}, args) }

// Main calls [Config.Run] and exits with the corresponding exit code. Main never returns.
func Main(c *Config, args []string) { c.main(direct{}, args) }

func (c *Config) main(k syscallDispatcher, args []string) {
	err := c.run(k, args)
	if msg, ok := GetErrorMessage(err); ok {
		k.println(msg)
	} else {
		k.println("cannot hand off:", err)
	}
	k.exit(ExitCode(err))
}

func (c *Config) run(k syscallDispatcher, args []string) error {
	grp, err := k.lookupGroup(c.Group)
	if err != nil {
		return &LookupError{Step: StepGroup, Key: c.Group, Err: err}
	}

	uid := k.getuid()
	u, err := k.lookupUid(uid)
	if err != nil {
		return &LookupError{Step: StepUser, Key: strconv.Itoa(uid), Err: err}
	}

	if !grp.Has(u.Name) {
		return &DeniedError{User: u.Name, Group: grp.Name}
	}

	// authorised past this point
	envv := Sanitise(k.lookupEnv, c.Whitelist)

	target, err := k.lookupGroup(c.Target)
	if err != nil {
		return &LookupError{Step: StepTarget, Key: c.Target, Err: err}
	}
	if err = k.setgid(target.Gid); err != nil {
		return &PrivilegeError{Group: target.Name, Gid: target.Gid, Err: err}
	}

	if err = k.exec(c.Pathname.String(), Argv(c.Pathname, args), envv); err != nil {
		return &HandoffError{Pathname: c.Pathname, Err: err}
	}
	panic("unreachable")
}

// Sanitise returns an environment holding only variables named in whitelist
// that lookupEnv reports as present, each with its original value.
func Sanitise(lookupEnv func(key string) (string, bool), whitelist []string) []string {
	envv := make([]string, 0, len(whitelist))
	for _, key := range whitelist {
		if v, ok := lookupEnv(key); ok {
			envv = append(envv, key+"="+v)
		}
	}
	return envv
}

// Argv returns a copy of args with its first element replaced by pathname.
// An empty args results in an argument vector holding only pathname.
func Argv(pathname *check.Absolute, args []string) []string {
	argv := make([]string, max(len(args), 1))
	copy(argv, args)
	argv[0] = pathname.String()
	return argv
}
