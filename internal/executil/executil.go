// internal/executil/executil.go
package executil

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"multiarch/internal/logging"
)

// Result captures what a finished command produced. A non-zero ExitCode
// is a normal outcome here, never an error: callers decide what is fatal.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes argument-vector commands. No shell is ever involved, so
// nothing in the config can smuggle shell syntax into an invocation.
type Runner struct {
	// Verbose echoes each command line to Log before running it.
	Verbose bool

	// DryRun logs the command instead of executing and reports success.
	DryRun bool

	// Log receives command echoes; may be nil when neither flag is set.
	Log *logging.Sink
}

// Run executes the command with stdout and stderr captured separately.
// The returned error is non-nil only when the process could not be
// started at all (e.g. the binary is missing).
func (r *Runner) Run(name string, args ...string) (Result, error) {
	return r.runCore(false, name, args...)
}

// RunCombined executes the command with stderr interleaved into stdout,
// the way a shell's 2>&1 would, so the output reads in real order.
// Result.Stderr is always empty.
func (r *Runner) RunCombined(name string, args ...string) (Result, error) {
	return r.runCore(true, name, args...)
}

func (r *Runner) runCore(combined bool, name string, args ...string) (Result, error) {
	fullCmd := name + " " + shellQuoteArgs(args)

	if r.Verbose && r.Log != nil {
		r.Log.Printf("run command: %s", fullCmd)
	}
	if r.DryRun {
		if r.Log != nil {
			r.Log.Printf("[dry-run] %s", fullCmd)
		}
		return Result{}, nil
	}

	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if combined {
		cmd.Stderr = &stdout
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("failed to run command: %s: %w", fullCmd, err)
	}
	return res, nil
}

// shellQuoteArgs returns a printable, shell-safe representation of args.
// Only used for echoing; execution always goes through the argv form.
func shellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
