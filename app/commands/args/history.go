package args

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
)

// HistoryCommand lists recent scaffold runs in the current workspace.
type HistoryCommand struct{}

func init() {
	RegisterCommand(&HistoryCommand{})
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Lists recent scaffold commands run in this workspace."
}

func (c *HistoryCommand) Usage() string {
	return ""
}

func (c *HistoryCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *HistoryCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *HistoryCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	root, err := env.RequireRoot()
	if err != nil {
		return err
	}
	if env.Registry == nil {
		return errors.New("command history is unavailable")
	}
	history := env.Registry.History(root)
	if len(history) == 0 {
		env.printf("%s\n", app.HelpStyle.Render("No commands recorded for this workspace yet."))
		return nil
	}
	for _, h := range history {
		when := time.Unix(h.Timestamp, 0).Format("2006-01-02 15:04")
		env.printf("%s  %s %s\n", app.PathStyle.Render(when), app.HighlightStyle.Render(h.Name), formatVariables(h.Variables))
		for _, f := range h.GeneratedFiles {
			env.printf("    + %s\n", f)
		}
		for _, f := range h.PatchedFiles {
			env.printf("    ~ %s\n", f)
		}
	}
	return nil
}

func formatVariables(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+vars[k])
	}
	return strings.Join(parts, " ")
}
