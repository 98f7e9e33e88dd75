package args

import (
	"context"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
	"github.com/Guerrilla-Interactive/t3-cua-tools/internal/config"
)

// ConfigListCommand defines the command to list configuration values.
type ConfigListCommand struct{}

func init() {
	RegisterCommand(&ConfigListCommand{})
}

func (c *ConfigListCommand) Name() string {
	return "config list"
}

func (c *ConfigListCommand) Description() string {
	return "Lists all configuration keys and values."
}

func (c *ConfigListCommand) Usage() string {
	return ""
}

func (c *ConfigListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ConfigListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigListCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	env.printf("%s\n", app.PathStyle.Render("# "+env.Config.Path()))
	for _, key := range config.SortedKeys() {
		value, _ := env.Config.Get(key)
		env.printf("%s = %s\n", key, value)
	}
	return nil
}
