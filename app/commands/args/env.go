package args

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app/editor"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/project"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/prompt"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/scaffold"
	"github.com/Guerrilla-Interactive/t3-cua-tools/internal/config"
)

// Env carries the collaborators a command runs against.
type Env struct {
	// Root is the workspace root; empty when none was found.
	Root string
	// RootErr explains why Root is empty.
	RootErr error
	// Project is the detected workspace, if any.
	Project *project.ProjectInfo

	Fs         afero.Fs
	Config     *config.Store
	Settings   config.Config
	Scaffolder *scaffold.Scaffolder
	Registry   *project.ProjectRegistry
	// Prompter is nil when stdin is not a terminal.
	Prompter  prompt.Prompter
	Opener    editor.Opener
	Clipboard editor.Clipboard
	Log       *zap.SugaredLogger
	Out       io.Writer
}

// RequireRoot returns the workspace root or the reason it is unknown.
func (e *Env) RequireRoot() (string, error) {
	if e.Root != "" {
		return e.Root, nil
	}
	if e.RootErr != nil {
		return "", e.RootErr
	}
	return "", errors.WithHint(project.ErrNoWorkspace, "pass --root <dir>")
}

// Interactive reports whether missing values can be prompted for.
func (e *Env) Interactive() bool { return e.Prompter != nil }

func (e *Env) printf(format string, a ...any) {
	fmt.Fprintf(e.Out, format, a...)
}

// ask returns given when set, otherwise prompts for it. Without a prompter
// the empty value is returned for validation to reject.
func (e *Env) ask(ctx context.Context, given, message, placeholder string) (string, error) {
	if given != "" || !e.Interactive() {
		return given, nil
	}
	return e.Prompter.Input(ctx, message, placeholder)
}

// choose returns given when set, otherwise prompts among options. Without a
// prompter the first option is used.
func (e *Env) choose(ctx context.Context, given, message string, options []string) (string, error) {
	if given != "" {
		return given, nil
	}
	if !e.Interactive() {
		return options[0], nil
	}
	idx, err := e.Prompter.Choose(ctx, message, options)
	if err != nil {
		return "", err
	}
	return options[idx], nil
}
