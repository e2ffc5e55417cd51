// internal/docker/emulation.go
package docker

import (
	"multiarch/internal/executil"
	"multiarch/internal/logging"
)

// EmulationImage registers qemu-user-static binfmt handlers so foreign-arch
// binaries run transparently inside the build containers.
const EmulationImage = "multiarch/qemu-user-static"

// CombinedRunner is the slice of executil the setup step needs.
type CombinedRunner interface {
	RunCombined(name string, args ...string) (executil.Result, error)
}

// SetupEmulation runs the one-time binfmt registration container. It is
// best-effort: output is logged but the exit status is ignored, since a
// host may already have handlers registered or not need them at all.
func SetupEmulation(r CombinedRunner, sink *logging.Sink, dockerBin string) {
	sink.Printf("setting up qemu-user-static...")
	res, err := r.RunCombined(dockerBin, "run", "--rm", "--privileged", EmulationImage, "--reset", "-p", "yes")
	if err != nil {
		sink.Errorf("qemu-user-static setup did not start: %v", err)
		return
	}
	sink.Tagged("qemu-user-static output", res.Stdout)
}
