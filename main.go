// multiarch main entrypoint
//
// Cross-compiles a project for multiple CPU architectures by driving
// QEMU-emulated docker containers, one per arch, each running the
// configured build script against the configured volume mounts.
//
// Keep this file simple: load env overrides, hand off to the CLI, map
// failure to exit status. All the heavy lifting stays internal.

package main

import (
	"os"

	"github.com/joho/godotenv"

	"multiarch/internal/cli"
)

func main() {
	// Local overrides for dev runs (MULTIARCH_DOCKER, MULTIARCH_DRY_RUN);
	// harmless when no .env exists.
	_ = godotenv.Load()

	// Fatal diagnostics are already written to the log sink by the time
	// an error surfaces here.
	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
