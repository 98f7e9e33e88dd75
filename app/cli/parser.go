package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// CommandRegistryChecker defines an interface for checking if a command name exists.
// This avoids a direct dependency cycle between cli and commands packages.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "name", "key"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "route")
	ShortName   string // Short name (e.g., "v"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
}

// GlobalFlags are accepted by every command.
var GlobalFlags = []FlagDef{
	{Name: "root", Description: "Workspace root (default: detected from the working directory)", HasValue: true},
	{Name: "verbose", ShortName: "v", Description: "More output; repeat for debug logs"},
	{Name: "debug", Description: "Debug logs"},
	{Name: "json-logs", Description: "Write logs as JSON to stderr"},
	{Name: "help", ShortName: "h", Description: "Show help"},
	{Name: "version", Description: "Print the version"},
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string          // Keep the original args for potential re-parsing or complex scenarios
	CommandName      string            // The command specified (e.g., "new screen", "config set")
	Variables        []string          // Positional arguments provided after the command name
	Flags            map[string]string // Flags provided (e.g., --route=dynamic -> map["route"]="dynamic")
	BoolFlags        map[string]bool   // Boolean flags (e.g., --force -> map["force"]=true)
	Verbosity        int               // Number of -v / --verbose occurrences
	HelpRequested    bool              // If a help flag (--help, -h) was detected
	VersionRequested bool              // If a version flag (--version) was detected
	Errors           []error           // Any parsing errors encountered
}

// Flag returns a value flag or def when absent.
func (a CommandArgs) Flag(name, def string) string {
	if v, ok := a.Flags[name]; ok {
		return v
	}
	return def
}

// Bool reports whether a boolean flag was given.
func (a CommandArgs) Bool(name string) bool {
	return a.BoolFlags[name]
}

// Variable returns the i-th positional argument or "".
func (a CommandArgs) Variable(i int) string {
	if i < len(a.Variables) {
		return a.Variables[i]
	}
	return ""
}

// lookupFlag finds a flag definition by long or short name.
func lookupFlag(defs []FlagDef, name string) (FlagDef, bool) {
	for _, d := range defs {
		if d.Name == name || (d.ShortName != "" && d.ShortName == name) {
			return d, true
		}
	}
	return FlagDef{}, false
}

// ParseCommandLineArgs processes the raw command-line arguments using a command
// registry checker. Flags listed in defs (plus GlobalFlags) are parsed by their
// definition; unknown flags take the next non-flag argument as their value.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker, defs ...FlagDef) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}
	defs = append(append([]FlagDef{}, GlobalFlags...), defs...)

	args := make([]string, len(rawArgs)) // Work on a copy
	copy(args, rawArgs)

	// --- Stage 0: Scan *raw* args for global flags first ---
	for _, arg := range rawArgs {
		if arg == "--" {
			break
		}
		if arg == "--help" || arg == "-h" {
			parsed.HelpRequested = true
		} else if arg == "--version" {
			parsed.VersionRequested = true
		}
	}

	// --- Stage 1: Find the command name (one or two words) ---
	args = extractCommand(args, registry, defs, &parsed)

	// --- Stage 2: Parse Flags and Variables from the remaining args ---
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--version" {
			continue
		}
		if arg == "--" {
			parsed.Variables = append(parsed.Variables, args[i+1:]...)
			break
		}

		if strings.HasPrefix(arg, "--") {
			flagName, flagValue, hasExplicitValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			def, known := lookupFlag(defs, flagName)
			if known {
				flagName = def.Name
			}
			wantsValue := def.HasValue || !known
			if !hasExplicitValue && wantsValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				flagValue = args[i+1]
				hasExplicitValue = true
				i++
			}
			if known && def.HasValue && !hasExplicitValue {
				parsed.Errors = append(parsed.Errors, errors.Newf("flag needs a value: --%s", flagName))
				continue
			}
			if known && !def.HasValue && hasExplicitValue {
				parsed.Errors = append(parsed.Errors, errors.Newf("flag does not take a value: --%s", flagName))
				continue
			}
			parsed.setFlag(flagName, flagValue, hasExplicitValue, "--")
		} else if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			flagChars := strings.TrimPrefix(arg, "-")
			for j, flagChar := range flagChars {
				flagName := string(flagChar)
				def, known := lookupFlag(defs, flagName)
				if known {
					flagName = def.Name
				}
				isLast := j == len(flagChars)-1
				wantsValue := def.HasValue || !known
				if isLast && wantsValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					parsed.setFlag(flagName, args[i+1], true, "-")
					i++
					continue
				}
				if known && def.HasValue {
					parsed.Errors = append(parsed.Errors, errors.Newf("flag needs a value: -%s", string(flagChar)))
					continue
				}
				parsed.setFlag(flagName, "", false, "-")
			}
		} else if arg == "-" {
			parsed.Errors = append(parsed.Errors, errors.Newf("invalid flag format: %s", arg))
		} else {
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}

func (p *CommandArgs) setFlag(name, value string, hasValue bool, dash string) {
	if name == "verbose" {
		p.Verbosity++
		p.BoolFlags[name] = true
		return
	}
	if hasValue {
		if _, exists := p.Flags[name]; exists {
			p.Errors = append(p.Errors, errors.Newf("flag provided more than once: %s%s", dash, name))
		}
		p.Flags[name] = value
		return
	}
	if _, exists := p.BoolFlags[name]; exists {
		p.Errors = append(p.Errors, errors.Newf("boolean flag provided more than once: %s%s", dash, name))
	}
	p.BoolFlags[name] = true
}

// extractCommand sets parsed.CommandName from the leading positional words and
// returns the args with those words removed.
func extractCommand(args []string, registry CommandRegistryChecker, defs []FlagDef, parsed *CommandArgs) []string {
	var positions []int
	for i := 0; i < len(args) && len(positions) < 2; i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "-") {
			// Skip the value of a known value flag written as "--root /x".
			name := strings.TrimLeft(arg, "-")
			if def, ok := lookupFlag(defs, name); ok && def.HasValue && !strings.Contains(arg, "=") {
				i++
			}
			continue
		}
		positions = append(positions, i)
	}
	if len(positions) == 0 || registry == nil {
		return args
	}

	remove := func(idx ...int) []string {
		out := make([]string, 0, len(args))
		for i, arg := range args {
			skip := false
			for _, r := range idx {
				if i == r {
					skip = true
				}
			}
			if !skip {
				out = append(out, arg)
			}
		}
		return out
	}

	if len(positions) == 2 {
		name := args[positions[0]] + " " + args[positions[1]]
		if registry.CommandExists(name) {
			parsed.CommandName = name
			return remove(positions[0], positions[1])
		}
	}
	if registry.CommandExists(args[positions[0]]) {
		parsed.CommandName = args[positions[0]]
		return remove(positions[0])
	}
	return args
}
