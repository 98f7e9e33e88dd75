package args

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
)

// ConfigSetCommand defines the command to set a configuration value.
type ConfigSetCommand struct{}

func init() {
	RegisterCommand(&ConfigSetCommand{})
}

func (c *ConfigSetCommand) Name() string {
	return "config set"
}

func (c *ConfigSetCommand) Description() string {
	return "Sets a configuration key to a specific value."
}

func (c *ConfigSetCommand) Usage() string {
	return "<key> <value>"
}

func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to set.", Required: true},
		{Name: "value", Description: "The value to assign to the key.", Required: true},
	}
}

func (c *ConfigSetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigSetCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	if len(args.Variables) < 2 {
		return errors.New("missing required arguments: key and value")
	}
	key, value := args.Variables[0], args.Variables[1]
	if err := env.Config.Set(key, value); err != nil {
		return err
	}
	env.Log.Infow("Saved config", "key", key, "path", env.Config.Path())
	env.printf("%s %s = %s\n", app.SuccessStyle.Render("✔"), key, value)
	return nil
}
