// internal/cli/cli.go
//
// The command surface and run wiring. The root command parses flags,
// short-circuits --version/--confighelp, then walks the startup sequence:
// log sink, host preconditions, config load, qemu registration, build loop.
//
// Fatal diagnostics are written to the sink (console + optional log file)
// here; main only maps a returned error to exit status 1.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multiarch/internal/config"
	"multiarch/internal/docker"
	"multiarch/internal/executil"
	"multiarch/internal/hostcheck"
	"multiarch/internal/logging"
	"multiarch/internal/orchestrator"
	"multiarch/internal/version"
)

// Options holds the parsed command-line flags.
type Options struct {
	ConfigFile     string
	LogFile        string
	Verbose        bool
	Version        bool
	IgnoreWarnings bool
	ConfigHelp     bool
	DryRun         bool
}

// New builds the root command.
func New() *cobra.Command {
	opts := Options{}

	cmd := &cobra.Command{
		Use:   "multiarch",
		Short: "Build a project for multiple arches using QEMU and docker",
		Long: `multiarch launches one emulated docker container per target
architecture, each running your build script against the volumes you
configure. QEMU user-mode emulation is registered automatically before
the first build.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "configfile", "c", "", "path to a config file")
	cmd.Flags().StringVarP(&opts.LogFile, "logfile", "l", "", "path to a file to save the log to")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "explain in more detail what the tool is doing")
	cmd.Flags().BoolVarP(&opts.Version, "version", "V", false, "print version and exit")
	cmd.Flags().BoolVar(&opts.IgnoreWarnings, "ignorewarnings", false, "override host environment warnings")
	cmd.Flags().BoolVar(&opts.ConfigHelp, "confighelp", false, "print the guide for writing a configuration file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the docker commands without running them")

	return cmd
}

func run(opts Options) error {
	if opts.Version {
		fmt.Println(version.Banner())
		return nil
	}
	if opts.ConfigHelp {
		fmt.Print(config.Help())
		return nil
	}

	sink := logging.New()
	defer sink.Close()

	if opts.LogFile != "" {
		if err := sink.OpenFile(opts.LogFile); err != nil {
			sink.Errorf("not logging to a file: %v", err)
		}
	}

	if opts.ConfigFile == "" {
		err := errors.New("the following arguments are required: -c/--configfile")
		sink.Errorf("error: %v", err)
		return err
	}

	dockerBin := getenv("MULTIARCH_DOCKER", "docker")
	dryRun := opts.DryRun || os.Getenv("MULTIARCH_DRY_RUN") == "true"
	runner := &executil.Runner{Verbose: opts.Verbose, DryRun: dryRun, Log: sink}

	if !opts.IgnoreWarnings {
		if err := hostcheck.Check(sink, runner, dockerBin, opts.Verbose); err != nil {
			sink.Errorf("%v", err)
			return err
		}
	}

	if opts.Verbose {
		sink.Printf("opening config file...")
	}
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		sink.Errorf("%v", err)
		return err
	}
	if opts.Verbose {
		sink.Printf("config file valid")
	}

	docker.SetupEmulation(runner, sink, dockerBin)

	orch := &orchestrator.Orchestrator{
		Config:    cfg,
		Runner:    runner,
		Sink:      sink,
		DockerBin: dockerBin,
	}
	if err := orch.Run(); err != nil {
		sink.Errorf("%v", err)
		return err
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
