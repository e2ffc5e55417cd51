// internal/orchestrator/orchestrator.go
//
// The build loop. One container per architecture, strictly sequential,
// front to back in config order. Each iteration stages the build script
// into a private tempdir, invokes docker, and relays the captured output.
//
// Failure policy: a container exiting non-zero is logged and the loop
// moves on, so one broken arch cannot block the rest. A missing build
// script aborts the entire run immediately.

package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"

	"multiarch/internal/config"
	"multiarch/internal/docker"
	"multiarch/internal/executil"
	"multiarch/internal/logging"
	"multiarch/internal/template"
)

// BuildScriptNotFoundError aborts the whole run: a config pointing at a
// missing script is a user error, not a per-arch build failure.
type BuildScriptNotFoundError struct {
	Path string
}

func (e *BuildScriptNotFoundError) Error() string {
	return fmt.Sprintf("cannot find build script %q", e.Path)
}

// Runner is the slice of executil the loop needs; tests substitute a stub.
type Runner interface {
	RunCombined(name string, args ...string) (executil.Result, error)
}

// Orchestrator drives the per-architecture builds.
type Orchestrator struct {
	Config    *config.Config
	Runner    Runner
	Sink      *logging.Sink
	DockerBin string
}

// Run builds every configured architecture in order. The returned error
// is fatal (missing build script or an unstartable docker binary); build
// containers that exit non-zero are not errors here.
func (o *Orchestrator) Run() error {
	for _, arch := range o.Config.Arches {
		if err := o.buildArch(arch); err != nil {
			return err
		}
	}
	return nil
}

// buildArch runs one iteration: stage, invoke, report. The staging dir is
// removed when the iteration ends no matter how it ends.
func (o *Orchestrator) buildArch(arch string) error {
	o.Sink.Printf("building for %s", arch)

	stage, err := os.MkdirTemp("", "multiarch-")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	scriptPath := template.Expand(arch, o.Config.Build)
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return &BuildScriptNotFoundError{Path: scriptPath}
	}
	if err := os.WriteFile(filepath.Join(stage, docker.ScriptName), script, 0o755); err != nil {
		return fmt.Errorf("failed to stage build script: %w", err)
	}

	spec := docker.RunSpec{
		Remove:    o.Config.RemoveContainers,
		StageDir:  stage,
		Name:      template.Expand(arch, o.Config.ContainerName),
		Volumes:   o.Config.Volumes,
		ExtraArgs: docker.SplitArgs(template.Expand(arch, o.Config.DockerArgs)),
		Image:     template.Expand(arch, o.Config.Image),
	}

	res, err := o.Runner.RunCombined(o.DockerBin, spec.Args()...)
	if err != nil {
		return fmt.Errorf("failed to invoke docker: %w", err)
	}
	if res.ExitCode != 0 {
		o.Sink.Errorf("build for %s exited with status %d", arch, res.ExitCode)
	}
	o.Sink.Tagged("docker output", res.Stdout)
	return nil
}
