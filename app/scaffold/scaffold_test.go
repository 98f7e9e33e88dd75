package scaffold

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNavigation(t *testing.T) {
	fsys := afero.NewMemMapFs()
	nav, err := DetectNavigation(fsys, testRoot)
	require.NoError(t, err)
	assert.Equal(t, NavFileRouter, nav, "missing probe target")

	probe := filepath.Join(testRoot, filepath.FromSlash(NativeNavigationDir))
	require.NoError(t, afero.WriteFile(fsys, probe, []byte("not a dir"), 0o644))
	nav, err = DetectNavigation(fsys, testRoot)
	require.NoError(t, err)
	assert.Equal(t, NavFileRouter, nav, "probe target is a file")

	nav, err = DetectNavigation(newStackProject(t), testRoot)
	require.NoError(t, err)
	assert.Equal(t, NavStack, nav)
}

func TestScaffoldScreenStackNavigator(t *testing.T) {
	fsys := newStackProject(t)
	s := New(fsys, nil, RenderOptions{})

	plan, err := s.ScaffoldScreen(testRoot, "NewScreen", RouteStatic, "")
	require.NoError(t, err)
	assert.Equal(t, NavStack, plan.Navigation)
	assert.Equal(t, "packages/app/features/newscreen/screen.tsx", plan.Primary)

	res, err := s.Apply(context.Background(), testRoot, plan, ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"packages/app/features/newscreen/screen.tsx",
		"apps/nextjs/pages/newscreen/index.tsx",
	}, res.Created)
	assert.Equal(t, []string{NativeNavigationFile, NavigationProviderFile}, res.Patched)

	assert.Contains(t, readFixture(t, fsys, res.Created[0]), "export function NewScreenScreen()")
	nav := readFixture(t, fsys, NativeNavigationFile)
	assert.Contains(t, nav, `import { NewScreenScreen } from "../../features/newscreen/screen";`)
	assert.Contains(t, nav, `name="newscreen"`)
	assert.Contains(t, readFixture(t, fsys, NavigationProviderFile), `newscreen: "newscreen",`)

	exists, err := afero.Exists(fsys, filepath.Join(testRoot, "apps", "expo", "app", "newscreen.tsx"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestScaffoldScreenFileRouterDynamic(t *testing.T) {
	fsys := newRouterProject(t)
	s := New(fsys, nil, RenderOptions{})

	plan, err := s.ScaffoldScreen(testRoot, "Profile", RouteDynamic, "id")
	require.NoError(t, err)
	assert.Empty(t, plan.Patches)

	res, err := s.Apply(context.Background(), testRoot, plan, ApplyOptions{})
	require.NoError(t, err)
	assert.Empty(t, res.Patched)
	assert.Contains(t, res.Created, "apps/expo/app/profile/[id].tsx")
	assert.Contains(t, res.Created, "apps/nextjs/pages/profile/[id].tsx")

	for _, p := range []string{"apps/expo/app/profile/[id].tsx", "apps/nextjs/pages/profile/[id].tsx"} {
		assert.Contains(t, readFixture(t, fsys, p), "import { ProfileScreen }")
	}
	assert.Equal(t, routerIndexFixture, readFixture(t, fsys, RouterIndexFile))
}

func TestScaffoldRoute(t *testing.T) {
	fsys := newRouterProject(t)
	s := New(fsys, nil, RenderOptions{})

	plan, err := s.ScaffoldRoute(testRoot, "comment")
	require.NoError(t, err)
	res, err := s.Apply(context.Background(), testRoot, plan, ApplyOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"packages/api/src/router/comment.ts"}, res.Created)
	assert.Equal(t, []string{RouterIndexFile}, res.Patched)
	index := readFixture(t, fsys, RouterIndexFile)
	assert.Contains(t, index, `import { commentRouter } from "./comment";`)
	assert.Contains(t, index, "  comment: commentRouter,\n});")

	_, err = s.ScaffoldRoute(testRoot, "comment")
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
}

func TestScaffoldComponent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := New(fsys, nil, RenderOptions{})

	plan, err := s.ScaffoldComponent(testRoot, "avatar")
	require.NoError(t, err)
	res, err := s.Apply(context.Background(), testRoot, plan, ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/ui/src/components/Avatar.tsx"}, res.Created)
	assert.Empty(t, res.Patched)
}

func TestScaffoldInvalidNameWritesNothing(t *testing.T) {
	fsys := newStackProject(t)
	s := New(fsys, nil, RenderOptions{})

	for _, name := range []string{"", "new screen", "../../../etc/x"} {
		plan, err := s.ScaffoldScreen(testRoot, name, RouteStatic, "")
		assert.Nil(t, plan)
		assert.True(t, IsInvalidInput(err))
	}
	assert.Equal(t, nativeNavigationFixture, readFixture(t, fsys, NativeNavigationFile))
	exists, err := afero.DirExists(fsys, filepath.Join(testRoot, "packages", "app", "features"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestScaffoldMissingAnchorWritesNothing(t *testing.T) {
	fsys := newStackProject(t)
	writeFixture(t, fsys, NativeNavigationFile, "import { A } from \"./a\";\n<Stack.Navigator></Stack.Navigator>\n")
	s := New(fsys, nil, RenderOptions{})

	plan, err := s.ScaffoldScreen(testRoot, "Foo", RouteStatic, "")
	assert.Nil(t, plan)
	var pe *PatchError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, AnchorStackParamsEnd, pe.Anchor)

	exists, err := afero.Exists(fsys, filepath.Join(testRoot, "packages", "app", "features", "foo", "screen.tsx"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestScaffoldMissingRegistryFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(filepath.Join(testRoot, filepath.FromSlash(NativeNavigationDir)), 0o755))
	s := New(fsys, nil, RenderOptions{})

	_, err := s.ScaffoldScreen(testRoot, "Foo", RouteStatic, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), NativeNavigationFile)
}

func TestApplyRefusesOverwrite(t *testing.T) {
	fsys := newRouterProject(t)
	writeFixture(t, fsys, "packages/app/features/home/screen.tsx", "// hand written\n")
	s := New(fsys, nil, RenderOptions{})

	plan, err := s.ScaffoldScreen(testRoot, "home", RouteStatic, "")
	require.NoError(t, err)

	_, err = s.Apply(context.Background(), testRoot, plan, ApplyOptions{})
	assert.True(t, errors.Is(err, ErrFileExists))
	assert.Equal(t, "// hand written\n", readFixture(t, fsys, "packages/app/features/home/screen.tsx"))

	res, err := s.Apply(context.Background(), testRoot, plan, ApplyOptions{Force: true})
	require.NoError(t, err)
	assert.Len(t, res.Created, 3)
	assert.Contains(t, readFixture(t, fsys, "packages/app/features/home/screen.tsx"), "HomeScreen")
}

func TestApplyHonoursCancellation(t *testing.T) {
	fsys := newRouterProject(t)
	s := New(fsys, nil, RenderOptions{})
	plan, err := s.ScaffoldComponent(testRoot, "Badge")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.Apply(ctx, testRoot, plan, ApplyOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Created)
}

func TestPlanPaths(t *testing.T) {
	plan, err := New(newStackProject(t), nil, RenderOptions{}).ScaffoldScreen(testRoot, "Foo", RouteStatic, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"packages/app/features/foo/screen.tsx",
		"apps/nextjs/pages/foo/index.tsx",
		NativeNavigationFile,
		NavigationProviderFile,
	}, plan.Paths())
	assert.True(t, plan.IsPatched(NavigationProviderFile))
	assert.False(t, plan.IsPatched(plan.Primary))
}
