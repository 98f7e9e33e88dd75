package args

import (
	"context"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
)

// NewRouteCommand scaffolds a tRPC router and registers it in the app router.
type NewRouteCommand struct{}

func init() {
	RegisterCommand(&NewRouteCommand{})
}

func (c *NewRouteCommand) Name() string {
	return "new route"
}

func (c *NewRouteCommand) Description() string {
	return "Creates an API router and adds it to the root tRPC router."
}

func (c *NewRouteCommand) Usage() string {
	return "<name> [--force] [--dry-run]"
}

func (c *NewRouteCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "name", Description: "Router name, e.g. post. Prompted for when omitted.", Required: true},
	}
}

func (c *NewRouteCommand) ExpectedFlags() []FlagDef {
	return scaffoldFlags
}

func (c *NewRouteCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	root, err := env.RequireRoot()
	if err != nil {
		return err
	}
	name, err := env.ask(ctx, args.Variable(0), "Router name", "e.g. post")
	if err != nil {
		return err
	}
	plan, err := env.Scaffolder.ScaffoldRoute(root, name)
	if err != nil {
		return err
	}
	return applyPlan(ctx, env, args, c.Name(), plan, map[string]string{"name": name})
}
