package main

// minimise imports to avoid inadvertently calling init or global variable functions

import (
	"log"
	"os"
	"runtime"

	"github.com/abrt/retrace-server-interact/gate"
	"github.com/abrt/retrace-server-interact/internal"
)

func main() {
	runtime.LockOSThread()

	log.SetFlags(0)
	log.SetPrefix("retrace-server-interact: ")
	log.SetOutput(os.Stderr)

	if err := internal.PR_SET_DUMPABLE__SUID_DUMP_DISABLE(); err != nil {
		log.Printf("cannot set SUID_DUMP_DISABLE: %v", err)
		// not fatal
	}

	gate.Main(internal.MustConfig(), os.Args)
	panic("unreachable")
}
