package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
	commands "github.com/Guerrilla-Interactive/t3-cua-tools/app/commands/args"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/editor"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/project"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/prompt"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/scaffold"
	"github.com/Guerrilla-Interactive/t3-cua-tools/internal/config"
	"github.com/Guerrilla-Interactive/t3-cua-tools/internal/logger"
)

// Version is set via linker flags during build.
var Version = "v0.1.0"

const binaryName = "t3-cua-tools"

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitCancelled = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	parsed := cli.ParseCommandLineArgs(argv, commands.Checker{}, commands.AllFlags()...)

	if parsed.VersionRequested {
		fmt.Printf("%s %s\n", binaryName, Version)
		return exitOK
	}
	if parsed.HelpRequested {
		if cmd, ok := commands.GetCommand(parsed.CommandName); ok {
			commands.PrintCommandHelp(os.Stdout, binaryName, cmd)
		} else {
			commands.PrintUsage(os.Stdout, binaryName)
		}
		return exitOK
	}
	if len(parsed.Errors) > 0 {
		for _, err := range parsed.Errors {
			fmt.Fprintln(os.Stderr, app.ErrorStyle.Render("Error:"), err)
		}
		return exitUsage
	}

	fsys := afero.NewOsFs()
	store, err := config.Load(fsys, "")
	if err != nil {
		return reportError(err)
	}
	settings, err := store.Config()
	if err != nil {
		return reportError(err)
	}

	verbosity := max(parsed.Verbosity, settings.Verbose)
	if parsed.Bool("debug") {
		verbosity = logger.VerbosityDebug
	}
	if err := logger.Initialize(verbosity, parsed.Bool("json-logs") || settings.JSONLogs); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return exitFailure
	}
	defer logger.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := buildEnv(fsys, store, settings, parsed)

	cmdName := parsed.CommandName
	if cmdName == "" {
		if len(parsed.Variables) > 0 {
			return reportError(errors.WithHintf(
				errors.Newf("unknown command %q", parsed.Variables[0]),
				"run %s --help to list commands", binaryName))
		}
		if !env.Interactive() {
			commands.PrintUsage(os.Stderr, binaryName)
			return exitUsage
		}
		names := commands.ScaffoldCommandNames()
		idx, err := env.Prompter.Choose(ctx, "What do you want to create?", names)
		if err != nil {
			return reportError(err)
		}
		cmdName = names[idx]
	}

	cmd, _ := commands.GetCommand(cmdName)
	logger.Logger.Debugw("Running command", "command", cmdName, "root", env.Root)
	if err := cmd.Execute(ctx, env, parsed); err != nil {
		return reportError(err)
	}
	return exitOK
}

// buildEnv resolves the workspace root and wires the command collaborators.
func buildEnv(fsys afero.Fs, store *config.Store, settings config.Config, parsed cli.CommandArgs) *commands.Env {
	log := logger.Logger
	env := &commands.Env{
		Fs:        fsys,
		Config:    store,
		Settings:  settings,
		Log:       log,
		Out:       os.Stdout,
		Clipboard: editor.SystemClipboard{},
	}

	start := parsed.Flag("root", "")
	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		}
	}
	info, err := project.DetectProject(fsys, start)
	switch {
	case err == nil:
		env.Root = info.RootPath
		env.Project = &info
	case parsed.Flag("root", "") != "":
		// An explicit root is trusted even without workspace markers.
		if abs, absErr := filepath.Abs(start); absErr == nil {
			env.Root = abs
		}
		log.Debugw("No workspace markers under --root", "root", start, "error", err)
	default:
		env.RootErr = err
	}

	env.Scaffolder = scaffold.New(fsys, log, scaffold.RenderOptions{UIPackage: settings.UIPackage})
	env.Opener = editor.NewCommandOpener(settings.Editor, env.Root)
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		env.Prompter = prompt.NewTeaPrompter()
	}

	registry, err := project.LoadProjectRegistry(fsys, project.RegistryPathIn(filepath.Dir(store.Path())))
	if err != nil {
		log.Warnw("Command history disabled", "error", err)
	} else {
		env.Registry = registry
		if env.Project != nil {
			registry.AddOrUpdateProject(*env.Project)
		}
	}
	return env
}

// reportError prints err with any hints attached along the way.
func reportError(err error) int {
	if errors.Is(err, prompt.ErrCancelled) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, app.HelpStyle.Render("Cancelled."))
		return exitCancelled
	}
	fmt.Fprintln(os.Stderr, app.ErrorStyle.Render("Error:"), err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(os.Stderr, app.HintStyle.Render("hint: "+hint))
	}
	logger.Logger.Debugw("Command failed", "error", fmt.Sprintf("%+v", err))
	if scaffold.IsInvalidInput(err) {
		return exitUsage
	}
	return exitFailure
}
