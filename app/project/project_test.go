package project

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workspaceRoot = "/work/acme"

func writeFile(t *testing.T, fsys afero.Fs, path, contents string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(contents), 0o644))
}

func newWorkspace(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, filepath.Join(workspaceRoot, "package.json"), `{
  "name": "acme",
  "packageManager": "pnpm@8.6.0",
  "devDependencies": { "turbo": "^1.10.0" }
}`)
	writeFile(t, fsys, filepath.Join(workspaceRoot, "pnpm-workspace.yaml"), "packages:\n  - apps/*\n  - packages/*\n")
	writeFile(t, fsys, filepath.Join(workspaceRoot, "apps/expo/package.json"),
		`{"dependencies": {"expo": "~49.0.0", "expo-router": "2.0.0", "solito": "4.0.0"}}`)
	writeFile(t, fsys, filepath.Join(workspaceRoot, "apps/nextjs/package.json"),
		`{"dependencies": {"next": "13.4.0", "tamagui": "1.74.0"}}`)
	require.NoError(t, fsys.MkdirAll(filepath.Join(workspaceRoot, "packages/app/features/home"), 0o755))
	return fsys
}

func TestDetectProjectWalksUp(t *testing.T) {
	fsys := newWorkspace(t)

	info, err := DetectProject(fsys, filepath.Join(workspaceRoot, "packages/app/features/home"))
	require.NoError(t, err)
	assert.Equal(t, workspaceRoot, info.RootPath)
	assert.Equal(t, "acme", info.Name)
	assert.Equal(t, "pnpm", info.PackageManager)
	assert.Equal(t, "8.6.0", info.PackageManagerVersion)
	assert.Equal(t, []string{"apps/*", "packages/*"}, info.Workspaces)
	assert.Equal(t, []string{"expo", "expo-router", "nextjs", "solito", "tamagui", "turbo"}, info.DetectedPackages)
}

func TestDetectProjectWorkspacesField(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/repo/package.json", `{"name": "yarn-mono", "packageManager": "yarn@3.6.1", "workspaces": {"packages": ["apps/*"]}}`)

	info, err := DetectProject(fsys, "/repo/apps")
	require.NoError(t, err)
	assert.Equal(t, "/repo", info.RootPath)
	assert.Equal(t, "yarn", info.PackageManager)
	assert.Equal(t, "3.6.1", info.PackageManagerVersion)
	assert.Equal(t, []string{"apps/*"}, info.Workspaces)
}

func TestDetectProjectNoWorkspace(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/plain/package.json", `{"name": "single"}`)

	_, err := DetectProject(fsys, "/plain")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoWorkspace))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestParsePackageManager(t *testing.T) {
	testCases := []struct {
		field, name, version string
	}{
		{"pnpm@8.6.0", "pnpm", "8.6.0"},
		{"pnpm@8.6.0+sha256.abc", "pnpm", "8.6.0+sha256.abc"},
		{"npm", "npm", ""},
		{"bun@latest", "bun", ""},
		{"", "", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			name, version := parsePackageManager(tc.field)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.version, version)
		})
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := RegistryPathIn("/home/me/.t3-cua-tools")

	registry, err := LoadProjectRegistry(fsys, path)
	require.NoError(t, err)
	assert.Empty(t, registry.Projects)

	registry.AddOrUpdateProject(ProjectInfo{RootPath: workspaceRoot, Name: "acme"})
	registry.AddOrUpdateProject(ProjectInfo{RootPath: workspaceRoot, Name: "acme"})
	registry.RecordCommand(workspaceRoot, HistoricCommand{
		Name:           "new screen",
		Variables:      map[string]string{"name": "Profile"},
		GeneratedFiles: []string{"packages/app/features/profile/screen.tsx"},
		PatchedFiles:   []string{"packages/app/navigation/native/index.tsx"},
	})
	require.NoError(t, registry.Save())

	loaded, err := LoadProjectRegistry(fsys, path)
	require.NoError(t, err)
	rec, found := loaded.GetProject(workspaceRoot)
	require.True(t, found)
	assert.Equal(t, 2, rec.UsageCount)
	assert.Equal(t, 2, loaded.GlobalUsages)
	assert.Equal(t, workspaceRoot, loaded.LastUsedPath)

	history := loaded.History(workspaceRoot)
	require.Len(t, history, 1)
	assert.Equal(t, "new screen", history[0].Name)
	assert.Equal(t, "Profile", history[0].Variables["name"])
	assert.NotZero(t, history[0].Timestamp)
}

func TestRecordCommandCapsHistory(t *testing.T) {
	registry, err := LoadProjectRegistry(afero.NewMemMapFs(), "/cfg/projects.json")
	require.NoError(t, err)
	registry.now = func() time.Time { return time.Unix(1700000000, 0) }

	for i := 0; i < MaxHistory+5; i++ {
		registry.RecordCommand(workspaceRoot, HistoricCommand{Name: fmt.Sprintf("cmd-%d", i)})
	}
	history := registry.History(workspaceRoot)
	require.Len(t, history, MaxHistory)
	assert.Equal(t, fmt.Sprintf("cmd-%d", MaxHistory+4), history[0].Name, "newest first")
	assert.Equal(t, "cmd-5", history[MaxHistory-1].Name)
	assert.Equal(t, int64(1700000000), history[0].Timestamp)
}

func TestLoadProjectRegistryCorrupt(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/cfg/projects.json", "{not json")

	_, err := LoadProjectRegistry(fsys, "/cfg/projects.json")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestIsSubdirectoryOfProject(t *testing.T) {
	registry, err := LoadProjectRegistry(afero.NewMemMapFs(), "/cfg/projects.json")
	require.NoError(t, err)
	registry.AddOrUpdateProject(ProjectInfo{RootPath: workspaceRoot})

	rec, ok := registry.IsSubdirectoryOfProject(filepath.Join(workspaceRoot, "apps", "expo"))
	assert.True(t, ok)
	assert.Equal(t, workspaceRoot, rec.RootPath)

	_, ok = registry.IsSubdirectoryOfProject("/elsewhere")
	assert.False(t, ok)
}
