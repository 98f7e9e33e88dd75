package args

import (
	"context"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
)

// NewComponentCommand scaffolds a component in the shared UI package.
type NewComponentCommand struct{}

func init() {
	RegisterCommand(&NewComponentCommand{})
}

func (c *NewComponentCommand) Name() string {
	return "new component"
}

func (c *NewComponentCommand) Description() string {
	return "Creates a Tamagui component in the UI package."
}

func (c *NewComponentCommand) Usage() string {
	return "<name> [--force] [--dry-run]"
}

func (c *NewComponentCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "name", Description: "Component name, e.g. UserCard. Prompted for when omitted.", Required: true},
	}
}

func (c *NewComponentCommand) ExpectedFlags() []FlagDef {
	return scaffoldFlags
}

func (c *NewComponentCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	root, err := env.RequireRoot()
	if err != nil {
		return err
	}
	name, err := env.ask(ctx, args.Variable(0), "Component name", "e.g. UserCard")
	if err != nil {
		return err
	}
	plan, err := env.Scaffolder.ScaffoldComponent(root, name)
	if err != nil {
		return err
	}
	return applyPlan(ctx, env, args, c.Name(), plan, map[string]string{"name": name})
}
