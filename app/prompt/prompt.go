// Package prompt asks the user for the values a command was not given.
package prompt

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

// ErrCancelled is returned when the user aborts a prompt with Esc or Ctrl+C.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter collects answers interactively.
type Prompter interface {
	// Input asks for a single line of text.
	Input(ctx context.Context, message, placeholder string) (string, error)
	// Choose asks for one of options and returns its index.
	Choose(ctx context.Context, message string, options []string) (int, error)
}

// TeaPrompter runs each prompt as a short-lived bubbletea program.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewTeaPrompter prompts on the process terminal.
func NewTeaPrompter() *TeaPrompter {
	return &TeaPrompter{In: os.Stdin, Out: os.Stderr}
}

func (p *TeaPrompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(err, "prompt failed")
	}
	return final, nil
}

// Input implements Prompter.
func (p *TeaPrompter) Input(ctx context.Context, message, placeholder string) (string, error) {
	final, err := p.run(ctx, newInputModel(message, placeholder))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value, nil
}

// Choose implements Prompter.
func (p *TeaPrompter) Choose(ctx context.Context, message string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("nothing to choose from")
	}
	final, err := p.run(ctx, newChoiceModel(message, options))
	if err != nil {
		return 0, err
	}
	m := final.(choiceModel)
	if m.cancelled {
		return 0, ErrCancelled
	}
	return m.index, nil
}
