package check_test

import (
	"reflect"
	"testing"

	"github.com/abrt/retrace-server-interact/check"
)

func TestAbsoluteError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  *check.AbsoluteError
		want string
	}{
		{"zero", new(check.AbsoluteError), "path is zero"},
		{"relative", &check.AbsoluteError{Pathname: "usr"}, `path "usr" is not absolute`},
		{"named zero", &check.AbsoluteError{Name: "real implementation"}, "real implementation path is zero"},
		{"named relative", &check.AbsoluteError{Name: "real implementation", Pathname: "libexec/real"},
			`real implementation path "libexec/real" is not absolute`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error: %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string

		pathname string
		want     string
		wantErr  error
	}{
		{"good", "/usr/libexec/retrace-server-interact-real", "/usr/libexec/retrace-server-interact-real", nil},
		{"unclean", "/usr/libexec/../libexec//retrace-server-interact-real", "/usr/libexec/retrace-server-interact-real", nil},
		{"trailing slash", "/usr/libexec/", "/usr/libexec", nil},
		{"not absolute", "libexec/retrace-server-interact-real", "",
			&check.AbsoluteError{Name: "test", Pathname: "libexec/retrace-server-interact-real"}},
		{"dot", ".", "", &check.AbsoluteError{Name: "test", Pathname: "."}},
		{"zero", "", "", &check.AbsoluteError{Name: "test"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := check.Named("test", tc.pathname)
			if !reflect.DeepEqual(err, tc.wantErr) {
				t.Fatalf("Named: error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				if got != nil {
					t.Errorf("Named: %v, want nil", got)
				}
				return
			}
			if got.String() != tc.want {
				t.Errorf("Named: %q, want %q", got.String(), tc.want)
			}
		})
	}

	t.Run("unnamed", func(t *testing.T) {
		t.Parallel()

		wantErr := &check.AbsoluteError{Pathname: "usr"}
		if _, err := check.NewAbs("usr"); !reflect.DeepEqual(err, wantErr) {
			t.Errorf("NewAbs: error = %v, want %v", err, wantErr)
		}
	})

	t.Run("must", func(t *testing.T) {
		t.Parallel()

		defer func() {
			wantPanic := &check.AbsoluteError{Pathname: "usr"}
			if r := recover(); !reflect.DeepEqual(r, wantPanic) {
				t.Errorf("MustAbs: panic = %v, want %v", r, wantPanic)
			}
		}()

		check.MustAbs("usr")
	})
}

func TestAbsoluteZero(t *testing.T) {
	t.Parallel()

	defer func() {
		wantPanic := "attempted use of zero Absolute"
		if r := recover(); r != wantPanic {
			t.Errorf("String: panic = %v, want %v", r, wantPanic)
		}
	}()

	_ = new(check.Absolute).String()
}
