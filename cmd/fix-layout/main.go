package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	"fix-layout/internal/dispatch"
	"fix-layout/internal/wm"
	"fix-layout/pkg/config"
	"fix-layout/pkg/logger"
)

const usageText = `Usage: %s [options]

Run different commands based on the active window. Originally made for
pinning application windows to a keyboard layout.

Rules come from a TOML config file (-c, or $XDG_CONFIG_HOME/fix-layout/config.toml)
or from a single rule given with -N or -C plus -a and -u.

Options:

`

type options struct {
	configFile  string
	rule        config.Flags
	backend     string
	debug       bool
	initial     bool
	logFile     string
	showVersion bool
}

var version = "dev"

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usageText, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	stringVar := func(p *string, short, long, usage string) {
		fs.StringVar(p, short, "", usage)
		fs.StringVar(p, long, "", "alias of -"+short)
	}
	stringVar(&o.configFile, "c", "config-file", "Path to `config` file, exclusive with the rule flags")
	stringVar(&o.rule.NameRegex, "N", "name-regex", "`Regex` for window name (titlebar)")
	stringVar(&o.rule.ClassRegex, "C", "class-regex", "`Regex` for window class (application)")
	stringVar(&o.rule.ActiveCommand, "a", "active-command", "`Command` to run when the target window becomes active")
	stringVar(&o.rule.UnactiveCommand, "u", "unactive-command", "`Command` to run when another window becomes active")
	fs.StringVar(&o.backend, "backend", "", "Window system `backend`: auto, x11 or hyprland (overrides config)")
	fs.StringVar(&o.logFile, "log-file", "", "Append logs to this `path` instead of the default log file")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.initial, "initial", false, "Classify the window focused at startup before waiting")
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.configFile != "" && o.rule.IsSet() {
		return nil, fmt.Errorf("-c cannot be combined with -N, -C, -a or -u")
	}
	if o.rule.NameRegex != "" && o.rule.ClassRegex != "" {
		return nil, fmt.Errorf("-N and -C are mutually exclusive")
	}
	return o, nil
}

func main() {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	opts, err := parseFlags(fs, os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(2)
	}
	if opts.showVersion {
		fmt.Println(version)
		return
	}

	// Setup logging level
	logLevel := zerolog.InfoLevel
	if opts.debug {
		logLevel = zerolog.DebugLevel
	}

	logOpts := []logger.Option{
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	}
	if opts.logFile != "" {
		logOpts = append(logOpts, logger.WithFile(opts.logFile))
	}
	log, err := logger.NewLogger(logOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting fix-layout",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", opts.debug)

	cfg, err := config.FindConfig(opts.configFile, opts.rule, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", opts.configFile)
		log.Close()
		os.Exit(1)
	}
	cfg.SetBackend(opts.backend)
	log.Info("Configuration loaded successfully",
		"source", cfg.Source(),
		"backend", cfg.GetBackend(),
		"rule_count", cfg.RuleSet().Len())

	backend, err := wm.NewBackend(cfg.GetBackend(), log)
	if err != nil {
		log.Fatal("Failed to initialize window system backend", err)
	}
	defer backend.Close()

	loop := &dispatch.Loop{
		Backend: backend,
		Rules:   cfg.RuleSet(),
		Runner:  dispatch.NewShellRunner(log),
		Log:     log,
		Initial: opts.initial,
	}
	if err := loop.Run(); err != nil {
		log.Fatal("Dispatch loop stopped", err)
	}
}
