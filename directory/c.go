package directory

import (
	"fmt"
	"syscall"
	"unsafe"
)

/*
#include <stdlib.h>
#include <unistd.h>
#include <grp.h>
#include <pwd.h>

static char *gr_mem_at(struct group *gr, size_t i) { return gr->gr_mem[i]; }
*/
import "C"

const (
	// bufferStart is used when sysconf has no suggestion.
	bufferStart = 1 << 10
	// bufferMax bounds buffer growth on ERANGE.
	bufferMax = 1 << 20
)

func lookupGroup(name string) (*Group, error) {
	var (
		grp    C.struct_group
		result *C.struct_group
		g      *Group
	)

	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))

	if err := withBuffer(C._SC_GETGR_R_SIZE_MAX, func(buf *C.char, size C.size_t) syscall.Errno {
		errno := syscall.Errno(C.getgrnam_r(n, &grp, buf, size, &result))
		if errno == 0 && result != nil {
			g = copyGroup(&grp)
		}
		return errno
	}); err != nil {
		return nil, fmt.Errorf("cannot look up group %q: %w", name, err)
	}

	if g == nil {
		return nil, UnknownGroupError(name)
	}
	return g, nil
}

func lookupUid(uid int) (*User, error) {
	var (
		pwd    C.struct_passwd
		result *C.struct_passwd
		u      *User
	)

	if err := withBuffer(C._SC_GETPW_R_SIZE_MAX, func(buf *C.char, size C.size_t) syscall.Errno {
		errno := syscall.Errno(C.getpwuid_r(C.uid_t(uid), &pwd, buf, size, &result))
		if errno == 0 && result != nil {
			u = &User{
				Name: C.GoString(pwd.pw_name),
				Uid:  int(pwd.pw_uid),
				Gid:  int(pwd.pw_gid),
			}
		}
		return errno
	}); err != nil {
		return nil, fmt.Errorf("cannot look up userid %d: %w", uid, err)
	}

	if u == nil {
		return nil, UnknownUserIdError(uid)
	}
	return u, nil
}

// copyGroup copies grp out of C memory. It must be called before the buffer backing grp is freed.
func copyGroup(grp *C.struct_group) *Group {
	g := &Group{
		Name: C.GoString(grp.gr_name),
		Gid:  int(grp.gr_gid),
	}
	if grp.gr_mem == nil {
		return g
	}
	for i := C.size_t(0); ; i++ {
		m := C.gr_mem_at(grp, i)
		if m == nil {
			break
		}
		g.Members = append(g.Members, C.GoString(m))
	}
	return g
}

// withBuffer calls f with a buffer allocated in C memory, growing it while f returns ERANGE.
// The buffer is freed once f returns, so f must copy out everything it needs.
func withBuffer(key C.int, f func(buf *C.char, size C.size_t) syscall.Errno) error {
	size := C.size_t(bufferStart)
	if v := C.sysconf(key); v > 0 && v <= bufferMax {
		size = C.size_t(v)
	}

	for {
		buf := C.malloc(size)
		if buf == nil {
			return syscall.ENOMEM
		}
		errno := f((*C.char)(buf), size)
		C.free(buf)

		switch {
		case errno == 0:
			return nil
		case errno == syscall.ERANGE && size < bufferMax:
			size *= 2
		default:
			return errno
		}
	}
}
