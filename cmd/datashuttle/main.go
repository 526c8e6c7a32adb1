// Package main provides the CLI entry point for the DataShuttle naming
// and consistency engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"datashuttle/internal/alerts"
	"datashuttle/internal/config"
	"datashuttle/internal/output"
	"datashuttle/internal/project"
	"datashuttle/internal/scanner"
	"datashuttle/internal/watcher"
)

const usage = `Usage: datashuttle [-c config.yaml] [-d] [-v] <command> [args]

Commands:
  next-sub              suggest the next unused subject number
  next-ses <subject>    suggest the next unused session number for a subject
  format <sub|ses> <name>...
                        normalize raw names to the naming convention
  validate              check the project for inconsistent number padding
  watch                 re-validate whenever new folders appear locally
`

func main() {
	var (
		configPath string
		debug      bool
		verbose    bool
	)
	flag.StringVar(&configPath, "c", "datashuttle.yaml", "config file path")
	flag.BoolVar(&debug, "d", false, "sets log level to debug")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	outCfg := output.DefaultConfig()
	outCfg.Verbose = verbose
	out := output.New(outCfg)

	cfg, err := config.Load(configPath)
	if err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
	log.Debug().Str("config", configPath).Str("local", cfg.LocalPath).Str("central", cfg.CentralPath).Msg("config loaded")

	p := project.New(cfg)

	switch args[0] {
	case "next-sub":
		runNextSub(p, out)
	case "next-ses":
		if len(args) < 2 {
			out.Error("Usage: datashuttle next-ses <subject>")
			os.Exit(1)
		}
		runNextSes(p, out, args[1])
	case "format":
		if len(args) < 3 {
			out.Error("Usage: datashuttle format <sub|ses> <name>...")
			os.Exit(1)
		}
		runFormat(p, out, args[1], args[2:])
	case "validate":
		runValidate(p, out)
	case "watch":
		runWatch(p, out)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runNextSub(p *project.Project, out *output.Output) {
	result, err := p.GetNextSubNumber()
	if err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
	out.Warnings(result.Warnings)
	out.Verbose("used subject numbers: %v", result.Used)
	out.Info("%d", result.Next)
}

func runNextSes(p *project.Project, out *output.Output, subName string) {
	result, err := p.GetNextSesNumber(subName)
	if err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
	out.Warnings(result.Warnings)
	out.Verbose("used session numbers: %v", result.Used)
	out.Info("%d", result.Next)
}

func runFormat(p *project.Project, out *output.Output, key string, rawNames []string) {
	var (
		formatted []string
		err       error
	)
	switch key {
	case "sub":
		formatted, err = p.FormatSubNames(rawNames)
	case "ses":
		formatted, err = p.FormatSesNames(rawNames)
	default:
		out.Error("Error: unknown key %q, expected sub or ses", key)
		os.Exit(1)
	}
	if err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
	for _, name := range formatted {
		out.Info("%s", name)
	}
}

func runValidate(p *project.Project, out *output.Output) {
	warnings, err := p.WarnOnInconsistentValueLengths()
	if err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
	out.Warnings(warnings)
	if len(warnings) == 0 {
		out.Info("No inconsistencies found.")
	}
}

func runWatch(p *project.Project, out *output.Output) {
	cfg := p.Config()

	watchCfg := watcher.DefaultConfig()
	watchCfg.Debounce = time.Duration(cfg.Watch.DebounceSeconds) * time.Second
	if len(cfg.Watch.IgnorePatterns) > 0 {
		watchCfg.IgnorePatterns = cfg.Watch.IgnorePatterns
	}
	watchCfg.SubPrefix = cfg.SubPrefix

	w := watcher.New(watchCfg, func() ([]alerts.Warning, error) {
		warnings, err := p.WarnOnInconsistentValueLengths()
		if err != nil {
			return nil, err
		}
		out.Warnings(warnings)
		return warnings, nil
	})

	dirs, err := watchDirs(cfg)
	if err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
	if err := w.Start(dirs); err != nil {
		out.Error("Error: %v", err)
		os.Exit(1)
	}
	out.Info("Watching %s for new folders, press Ctrl-C to stop.", filepath.Join(cfg.LocalPath, cfg.TopLevelFolder))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	summary := w.Stop()
	out.Info("Ran %d checks, saw %d warnings, ignored %d events in %s.",
		summary.ChecksRun, summary.WarningsSeen, summary.EventsIgnored,
		summary.Duration.Round(time.Second))
}

// watchDirs returns the local top-level folder plus every existing local
// subject folder, so new session folders are observed too.
func watchDirs(cfg *config.ProjectConfig) ([]string, error) {
	topLevel := filepath.Join(cfg.LocalPath, cfg.TopLevelFolder)
	dirs := []string{topLevel}

	subNames, err := scanner.ScanIdentifiers([]string{cfg.LocalPath}, cfg.TopLevelFolder, cfg.SubPrefix)
	if err != nil {
		return nil, err
	}
	for _, subName := range subNames {
		dirs = append(dirs, filepath.Join(topLevel, subName))
	}
	return dirs, nil
}
