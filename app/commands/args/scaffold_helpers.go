package args

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/editor"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/project"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/scaffold"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/utils"
)

// scaffoldFlags are shared by every "new" command.
var scaffoldFlags = []FlagDef{
	{Name: "force", ShortName: "f", Description: "Overwrite generated files that already exist"},
	{Name: "dry-run", Description: "Show the files that would be written without writing them"},
	{Name: "no-open", Description: "Do not open the primary file in the editor"},
	{Name: "copy", Description: "Copy the primary file path to the clipboard"},
}

// applyPlan writes plan (or previews it with --dry-run), records the run in
// the history and hands the primary file to the editor.
func applyPlan(ctx context.Context, env *Env, args cli.CommandArgs, cmdName string, plan *scaffold.Plan, vars map[string]string) error {
	mark := func(p string) string {
		if plan.IsPatched(p) {
			return " (edited)"
		}
		return ""
	}

	if args.Bool("dry-run") {
		env.printf("%s\n", app.HighlightStyle.Render("Dry run, nothing written. Planned changes:"))
		env.printf("%s", utils.RenderPaths(plan.Paths(), mark))
		for _, p := range plan.Patches {
			env.Log.Debugw("Patched contents", "path", p.Path, "bytes", len(p.Contents))
		}
		return nil
	}

	opts := scaffold.ApplyOptions{Force: args.Bool("force") || env.Settings.Force}
	res, err := env.Scaffolder.Apply(ctx, env.Root, plan, opts)
	if err != nil {
		if len(res.Created)+len(res.Patched) > 0 {
			env.printf("%s\n", app.ErrorStyle.Render("Stopped part way. Already written:"))
			env.printf("%s", utils.RenderPaths(append(res.Created, res.Patched...), mark))
		}
		return err
	}

	env.printf("%s %s %s\n",
		app.SuccessStyle.Render("✔ Created"),
		plan.Request.Kind.String(),
		app.HighlightStyle.Render(plan.Request.Name))
	env.printf("%s", utils.RenderPaths(append(append([]string{}, res.Created...), res.Patched...), mark))

	if env.Registry != nil {
		env.Registry.RecordCommand(env.Root, project.HistoricCommand{
			Name:           cmdName,
			Variables:      vars,
			GeneratedFiles: res.Created,
			PatchedFiles:   res.Patched,
		})
		if err := env.Registry.Save(); err != nil {
			env.Log.Warnw("Could not save command history", "error", err)
		}
	}

	primary := filepath.Join(env.Root, filepath.FromSlash(plan.Primary))
	if args.Bool("copy") && env.Clipboard != nil {
		if err := env.Clipboard.WriteAll(primary); err != nil {
			env.Log.Warnw("Could not copy path to clipboard", "error", err)
		} else {
			env.printf("%s\n", app.HelpStyle.Render("Path copied to clipboard."))
		}
	}
	if args.Bool("no-open") || !env.Settings.Open || env.Opener == nil {
		return nil
	}
	if err := env.Opener.Open(ctx, primary); err != nil {
		if errors.Is(err, editor.ErrNoEditor) {
			env.printf("Open %s\n", app.PathStyle.Render(primary))
			return nil
		}
		env.Log.Warnw("Could not open editor", "path", primary, "error", err)
	}
	return nil
}
