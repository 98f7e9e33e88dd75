package args

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/cli"
	"github.com/Guerrilla-Interactive/t3-cua-tools/app/scaffold"
)

// DetectCommand reports the workspace and its native navigation style.
type DetectCommand struct{}

func init() {
	RegisterCommand(&DetectCommand{})
}

func (c *DetectCommand) Name() string {
	return "detect"
}

func (c *DetectCommand) Description() string {
	return "Shows the detected workspace and native navigation style."
}

func (c *DetectCommand) Usage() string {
	return "[--json]"
}

func (c *DetectCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *DetectCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "json", Description: "Print the result as JSON"},
	}
}

type detectReport struct {
	Root                  string   `json:"root"`
	Name                  string   `json:"name,omitempty"`
	PackageManager        string   `json:"packageManager,omitempty"`
	PackageManagerVersion string   `json:"packageManagerVersion,omitempty"`
	Workspaces            []string `json:"workspaces,omitempty"`
	Packages              []string `json:"packages,omitempty"`
	Navigation            string   `json:"navigation"`
}

func (c *DetectCommand) Execute(ctx context.Context, env *Env, args cli.CommandArgs) error {
	root, err := env.RequireRoot()
	if err != nil {
		return err
	}
	nav, err := scaffold.DetectNavigation(env.Fs, root)
	if err != nil {
		return err
	}

	report := detectReport{Root: root, Navigation: nav.String()}
	if p := env.Project; p != nil {
		report.Name = p.Name
		report.PackageManager = p.PackageManager
		report.PackageManagerVersion = p.PackageManagerVersion
		report.Workspaces = p.Workspaces
		report.Packages = p.DetectedPackages
	}

	if args.Bool("json") {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		env.printf("%s\n", data)
		return nil
	}

	env.printf("%s %s\n", app.SubtitleStyle.Render("Workspace:"), app.PathStyle.Render(report.Root))
	if report.Name != "" {
		env.printf("%s %s\n", app.SubtitleStyle.Render("Name:"), report.Name)
	}
	if report.PackageManager != "" {
		pm := report.PackageManager
		if report.PackageManagerVersion != "" {
			pm += " " + report.PackageManagerVersion
		}
		env.printf("%s %s\n", app.SubtitleStyle.Render("Package manager:"), pm)
	}
	if len(report.Packages) > 0 {
		env.printf("%s %s\n", app.SubtitleStyle.Render("Detected:"), strings.Join(report.Packages, ", "))
	}
	env.printf("%s %s\n", app.SubtitleStyle.Render("Navigation:"), app.HighlightStyle.Render(report.Navigation))
	return nil
}
