// internal/hostcheck/hostcheck.go
//
// Startup environment preconditions: 64-bit Linux or Darwin host, root
// privileges, and a responsive docker CLI. All of them exist to fail fast
// with a clear message instead of half-way through the first build.
// --ignorewarnings skips the lot.

package hostcheck

import (
	"os"
	"runtime"

	"multiarch/internal/executil"
	"multiarch/internal/logging"
)

// Error is an unmet host precondition. Every instance is overridable
// with --ignorewarnings, unlike config errors.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason + "\nuse --ignorewarnings to override this"
}

// Prober runs a command and reports its exit status. Satisfied by
// *executil.Runner; tests substitute a stub.
type Prober interface {
	Run(name string, args ...string) (executil.Result, error)
}

const pointerBits = 32 << (^uintptr(0) >> 63)

// Platform verifies the host is a 64-bit Linux or Darwin machine.
func Platform() error {
	if pointerBits != 64 || (runtime.GOOS != "linux" && runtime.GOOS != "darwin") {
		return &Error{Reason: "this tool only works on 64bit Linux or Darwin. exiting..."}
	}
	return nil
}

// RootUser verifies the process runs with superuser privileges. Docker
// and binfmt registration both need them.
func RootUser() error {
	if os.Geteuid() != 0 {
		return &Error{Reason: "the current user is not root, must be run as root. exiting..."}
	}
	return nil
}

// Docker verifies the docker CLI is present and answers a version query.
func Docker(p Prober, dockerBin string) error {
	res, err := p.Run(dockerBin, "--version")
	if err != nil || res.ExitCode != 0 {
		return &Error{Reason: "docker not found. exiting..."}
	}
	return nil
}

// Check runs every precondition in order, stopping at the first failure.
func Check(sink *logging.Sink, p Prober, dockerBin string, verbose bool) error {
	if verbose {
		sink.Printf("testing platform...")
	}
	if err := Platform(); err != nil {
		return err
	}
	if verbose {
		sink.Printf("testing if the user is root...")
	}
	if err := RootUser(); err != nil {
		return err
	}
	if verbose {
		sink.Printf("testing for docker...")
	}
	return Docker(p, dockerBin)
}
