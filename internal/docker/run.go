// internal/docker/run.go
//
// Docker argv construction for the per-architecture build containers.
// The whole invocation is a typed argument vector assembled here; nothing
// downstream ever interpolates config values into a shell string.

package docker

import (
	"strings"
)

const (
	// StagePath is the fixed in-container mount point for the staged
	// build script. Staging to a private tempdir and mounting it here
	// gives every container the same stable script path.
	StagePath = "/buildcommand"

	// ScriptName is the fixed filename the script is staged under.
	ScriptName = "build.sh"
)

// RunSpec describes one container invocation for a single architecture.
// All templated fields arrive already expanded.
type RunSpec struct {
	Remove    bool     // docker run --rm
	StageDir  string   // host tempdir holding the staged script
	Name      string   // container name
	Volumes   []string // user volume specs, order preserved
	ExtraArgs []string // extra docker run arguments
	Image     string   // image reference
}

// Args assembles the docker argv:
//
//	run [--rm] -v <stage>:/buildcommand --name <name>
//	    (-v <volume>)* <extra...> <image> bash /buildcommand/build.sh
func (s RunSpec) Args() []string {
	args := []string{"run"}
	if s.Remove {
		args = append(args, "--rm")
	}
	args = append(args, "-v", s.StageDir+":"+StagePath)
	args = append(args, "--name", s.Name)
	for _, v := range s.Volumes {
		args = append(args, "-v", v)
	}
	args = append(args, s.ExtraArgs...)
	args = append(args, s.Image, "bash", StagePath+"/"+ScriptName)
	return args
}

// SplitArgs breaks the dockerargs config string into argv elements. The
// field is a single free-form string in the config, so whitespace is the
// only separator honored.
func SplitArgs(s string) []string {
	return strings.Fields(s)
}
