// Package editor hands generated files over to the user's tools.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
)

// ErrNoEditor is returned when no editor is configured or set in the environment.
var ErrNoEditor = errors.New("no editor configured")

// Opener opens a file for editing.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// CommandOpener runs an editor command line through the shell.
type CommandOpener struct {
	// Editor overrides $VISUAL and $EDITOR when set.
	Editor string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer

	getenv func(string) string
	run    func(*exec.Cmd) error
}

// NewCommandOpener returns an opener for the configured editor.
func NewCommandOpener(editorCmd, dir string) *CommandOpener {
	return &CommandOpener{
		Editor: editorCmd,
		Dir:    dir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		getenv: os.Getenv,
		run:    (*exec.Cmd).Run,
	}
}

// Resolve returns the editor command that Open would use.
func (o *CommandOpener) Resolve() string {
	if e := strings.TrimSpace(o.Editor); e != "" {
		return e
	}
	getenv := o.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if e := strings.TrimSpace(getenv(key)); e != "" {
			return e
		}
	}
	return ""
}

// Open implements Opener.
func (o *CommandOpener) Open(ctx context.Context, path string) error {
	editorCmd := o.Resolve()
	if editorCmd == "" {
		return errors.WithHint(ErrNoEditor, "set $EDITOR or run: t3-cua-tools config set editor <command>")
	}
	fullCmdString := editorCmd + " " + quote(path)

	var sysCmd *exec.Cmd
	if runtime.GOOS == "windows" {
		sysCmd = exec.CommandContext(ctx, "cmd", "/C", fullCmdString)
	} else {
		sysCmd = exec.CommandContext(ctx, "sh", "-c", fullCmdString)
	}
	sysCmd.Stdin = os.Stdin
	sysCmd.Stdout = o.Stdout
	sysCmd.Stderr = o.Stderr
	sysCmd.Dir = o.Dir

	run := o.run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(sysCmd); err != nil {
		return errors.Wrapf(err, "editor command [%s] failed", strings.Fields(editorCmd)[0])
	}
	return nil
}

func quote(path string) string {
	if runtime.GOOS == "windows" {
		return `"` + path + `"`
	}
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}

// Clipboard receives text copied for the user.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "failed to write clipboard")
	}
	return nil
}
