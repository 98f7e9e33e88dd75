package args

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
	"github.com/Guerrilla-Interactive/t3-cua-tools/internal/config"
)

// ConfigGetCommand defines the command to get a configuration value.
type ConfigGetCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
}

func (c *ConfigGetCommand) Name() string {
	return "config get"
}

func (c *ConfigGetCommand) Description() string {
	return "Retrieves the value of a configuration key."
}

func (c *ConfigGetCommand) Usage() string {
	return "<key>"
}

func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to retrieve.", Required: true},
	}
}

func (c *ConfigGetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigGetCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	key := args.Variable(0)
	if key == "" {
		return errors.WithHintf(errors.New("missing required argument: key"), "known keys: %v", config.SortedKeys())
	}
	value, ok := env.Config.Get(key)
	if !ok {
		return errors.WithHintf(errors.Wrapf(config.ErrUnknownKey, "%q", key), "known keys: %v", config.SortedKeys())
	}
	env.printf("%s\n", value)
	return nil
}
