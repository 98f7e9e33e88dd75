package args

import (
	"context"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/scaffold"
)

// NewScreenCommand scaffolds a feature screen and wires it into navigation.
type NewScreenCommand struct{}

func init() {
	RegisterCommand(&NewScreenCommand{})
}

func (c *NewScreenCommand) Name() string {
	return "new screen"
}

func (c *NewScreenCommand) Description() string {
	return "Creates a feature screen with its Expo and Next.js entry points."
}

func (c *NewScreenCommand) Usage() string {
	return "<name> [--route static|dynamic] [--param <name>] [--force] [--dry-run]"
}

func (c *NewScreenCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "name", Description: "Screen name, e.g. Profile. Prompted for when omitted.", Required: true},
	}
}

func (c *NewScreenCommand) ExpectedFlags() []FlagDef {
	return append([]FlagDef{
		{Name: "route", ShortName: "r", Description: "Route style: static or dynamic", HasValue: true},
		{Name: "param", ShortName: "p", Description: "Route parameter name for dynamic routes", HasValue: true},
	}, scaffoldFlags...)
}

func (c *NewScreenCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	root, err := env.RequireRoot()
	if err != nil {
		return err
	}
	name, err := env.ask(ctx, args.Variable(0), "Screen name", "e.g. Profile")
	if err != nil {
		return err
	}

	styleText := args.Flag("route", "")
	if styleText == "" && args.Flag("param", "") != "" {
		styleText = scaffold.RouteDynamic.String()
	}
	styleText, err = env.choose(ctx, styleText, "Route style", scaffold.RouteStyleChoices)
	if err != nil {
		return err
	}
	style, err := scaffold.ParseRouteStyle(styleText)
	if err != nil {
		return err
	}

	param := args.Flag("param", "")
	if style == scaffold.RouteDynamic {
		if param, err = env.ask(ctx, param, "Route parameter", "e.g. id"); err != nil {
			return err
		}
	}

	plan, err := env.Scaffolder.ScaffoldScreen(root, name, style, param)
	if err != nil {
		return err
	}
	env.Log.Infow("Scaffolding screen", "name", name, "route", style.String(), "navigation", plan.Navigation.String())

	vars := map[string]string{"name": name, "route": style.String()}
	if param != "" {
		vars["param"] = param
	}
	return applyPlan(ctx, env, args, c.Name(), plan, vars)
}
