package args

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
)

// ArgDef is an alias for cli.ArgDef
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "new screen").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(ctx context.Context, env *Env, args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<name> [options]").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered CLI commands.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. It is called from init
// functions, so a duplicate name is a programming error.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns every registered command sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Checker adapts the registry to cli.CommandRegistryChecker.
type Checker struct{}

// CommandExists implements cli.CommandRegistryChecker.
func (Checker) CommandExists(name string) bool { return CommandExists(name) }

// AllFlags returns the flags of every command, deduplicated by name, for the
// first parsing pass before the command is known.
func AllFlags() []FlagDef {
	seen := map[string]bool{}
	var out []FlagDef
	for _, cmd := range GetAllCommands() {
		for _, f := range cmd.ExpectedFlags() {
			if !seen[f.Name] {
				seen[f.Name] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// ScaffoldCommandNames lists the commands offered when none is given.
func ScaffoldCommandNames() []string {
	var names []string
	for _, cmd := range GetAllCommands() {
		if strings.HasPrefix(cmd.Name(), "new ") {
			names = append(names, cmd.Name())
		}
	}
	return names
}

// PrintUsage writes the general help text.
func PrintUsage(w io.Writer, binary string) {
	fmt.Fprintln(w, app.TitleStyle.Render(binary)+" scaffolds screens, components and API routes in a create-t3-turbo workspace.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, app.SubtitleStyle.Render("Usage:"))
	fmt.Fprintf(w, "  %s <command> [arguments] [flags]\n\n", binary)
	fmt.Fprintln(w, app.SubtitleStyle.Render("Commands:"))
	for _, cmd := range GetAllCommands() {
		fmt.Fprintf(w, "  %-16s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, app.SubtitleStyle.Render("Global flags:"))
	printFlags(w, cli.GlobalFlags)
}

// PrintCommandHelp writes the help text of one command.
func PrintCommandHelp(w io.Writer, binary string, cmd Command) {
	fmt.Fprintf(w, "%s %s %s\n\n", binary, app.HighlightStyle.Render(cmd.Name()), cmd.Usage())
	fmt.Fprintln(w, cmd.Description())
	if argDefs := cmd.ExpectedArgs(); len(argDefs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, app.SubtitleStyle.Render("Arguments:"))
		for _, a := range argDefs {
			req := ""
			if a.Required {
				req = " (required)"
			}
			fmt.Fprintf(w, "  %-16s %s%s\n", a.Name, a.Description, req)
		}
	}
	if flagDefs := cmd.ExpectedFlags(); len(flagDefs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, app.SubtitleStyle.Render("Flags:"))
		printFlags(w, flagDefs)
	}
}

func printFlags(w io.Writer, defs []FlagDef) {
	for _, f := range defs {
		name := "--" + f.Name
		if f.ShortName != "" {
			name = "-" + f.ShortName + ", " + name
		}
		if f.HasValue {
			name += " <value>"
		}
		fmt.Fprintf(w, "  %-24s %s\n", name, app.HelpStyle.Render(f.Description))
	}
}
