package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrNoWorkspace is returned when no monorepo root can be found.
var ErrNoWorkspace = errors.New("no workspace found")

// ProjectInfo stores information about a detected monorepo.
type ProjectInfo struct {
	RootPath              string   `json:"rootPath"`
	Name                  string   `json:"name"`
	PackageManager        string   `json:"packageManager,omitempty"`
	PackageManagerVersion string   `json:"packageManagerVersion,omitempty"`
	Workspaces            []string `json:"workspaces,omitempty"`
	DetectedPackages      []string `json:"detectedPackages,omitempty"`
}

// Files whose presence marks a workspace root.
var rootMarkers = []string{"turbo.json", "pnpm-workspace.yaml"}

// Packages whose presence is reported, keyed by npm name.
var knownPackages = map[string]string{
	"next":                     "nextjs",
	"expo":                     "expo",
	"expo-router":              "expo-router",
	"react-native":             "react-native",
	"@react-navigation/native": "react-navigation",
	"tamagui":                  "tamagui",
	"solito":                   "solito",
	"@trpc/server":             "trpc",
	"turbo":                    "turbo",
}

// Workspace package.json files scanned for dependencies besides the root one.
var memberManifests = []string{
	"apps/expo/package.json",
	"apps/nextjs/package.json",
	"packages/app/package.json",
	"packages/api/package.json",
	"packages/ui/package.json",
}

type packageJSON struct {
	Name            string            `json:"name"`
	PackageManager  string            `json:"packageManager"`
	Workspaces      json.RawMessage   `json:"workspaces"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// DetectProject walks up from startPath to the first workspace root.
func DetectProject(fsys afero.Fs, startPath string) (ProjectInfo, error) {
	currentPath, err := filepath.Abs(startPath)
	if err != nil {
		return ProjectInfo{}, errors.Wrapf(err, "resolve %s", startPath)
	}
	for {
		if ok, err := isWorkspaceRoot(fsys, currentPath); err != nil {
			return ProjectInfo{}, err
		} else if ok {
			return createProjectInfo(fsys, currentPath)
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}
	return ProjectInfo{}, errors.WithHint(
		errors.Wrapf(ErrNoWorkspace, "searched upwards from %s", startPath),
		"run inside a create-t3-turbo workspace or pass --root")
}

func isWorkspaceRoot(fsys afero.Fs, dir string) (bool, error) {
	for _, marker := range rootMarkers {
		if ok, err := afero.Exists(fsys, filepath.Join(dir, marker)); err != nil {
			return false, errors.Wrapf(err, "stat %s", marker)
		} else if ok {
			return true, nil
		}
	}
	pkg, found, err := readPackageJSON(fsys, filepath.Join(dir, "package.json"))
	if err != nil || !found {
		// An unreadable manifest just means this is not the root.
		return false, nil
	}
	return len(pkg.Workspaces) > 0 && string(pkg.Workspaces) != "null", nil
}

func readPackageJSON(fsys afero.Fs, path string) (packageJSON, bool, error) {
	var pkg packageJSON
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pkg, false, nil
		}
		return pkg, false, errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return pkg, true, errors.Wrapf(err, "parse %s", path)
	}
	return pkg, true, nil
}

// createProjectInfo reads the manifests under rootPath.
func createProjectInfo(fsys afero.Fs, rootPath string) (ProjectInfo, error) {
	info := ProjectInfo{RootPath: rootPath, Name: filepath.Base(rootPath)}

	pkg, found, err := readPackageJSON(fsys, filepath.Join(rootPath, "package.json"))
	if err != nil {
		return info, err
	}
	detected := map[string]bool{}
	if found {
		if pkg.Name != "" {
			info.Name = pkg.Name
		}
		info.PackageManager, info.PackageManagerVersion = parsePackageManager(pkg.PackageManager)
		info.Workspaces = parseWorkspaces(pkg.Workspaces)
		collectPackages(detected, pkg)
	}

	if data, err := afero.ReadFile(fsys, filepath.Join(rootPath, "pnpm-workspace.yaml")); err == nil {
		var ws pnpmWorkspace
		if err := yaml.Unmarshal(data, &ws); err != nil {
			return info, errors.Wrap(err, "parse pnpm-workspace.yaml")
		}
		info.Workspaces = ws.Packages
		if info.PackageManager == "" {
			info.PackageManager = "pnpm"
		}
	}

	for _, rel := range memberManifests {
		member, ok, err := readPackageJSON(fsys, filepath.Join(rootPath, filepath.FromSlash(rel)))
		if err == nil && ok {
			collectPackages(detected, member)
		}
	}
	for pkgName := range detected {
		info.DetectedPackages = append(info.DetectedPackages, pkgName)
	}
	sort.Strings(info.DetectedPackages)
	return info, nil
}

func collectPackages(detected map[string]bool, pkg packageJSON) {
	for _, deps := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		for name := range deps {
			if framework, known := knownPackages[name]; known {
				detected[framework] = true
			}
		}
	}
}

// parsePackageManager splits "pnpm@8.6.0" into name and normalised version.
func parsePackageManager(field string) (string, string) {
	field = strings.TrimSpace(field)
	if field == "" {
		return "", ""
	}
	at := strings.LastIndex(field, "@")
	if at <= 0 {
		return field, ""
	}
	name, raw := field[:at], field[at+1:]
	// Corepack may append a hash: pnpm@8.6.0+sha256.abc
	if v, err := semver.NewVersion(raw); err == nil {
		return name, v.String()
	}
	return name, ""
}

// parseWorkspaces accepts both the array and the {packages: [...]} forms.
func parseWorkspaces(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Packages
	}
	return nil
}
