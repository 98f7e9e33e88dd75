package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const nativeNavigationFixture = `import { createNativeStackNavigator } from "@react-navigation/native-stack";

import { HomeScreen } from "../../features/home/screen";
import { UserDetailScreen } from "../../features/user/detail-screen";

const Stack = createNativeStackNavigator<{
  home: undefined;
  "user-detail": {
    id: string;
  };
}>();

export function NativeNavigation() {
  return (
    <Stack.Navigator>
      <Stack.Screen
        name="home"
        component={HomeScreen}
        options={{
          title: "Home",
        }}
      />
    </Stack.Navigator>
  );
}
`

const navigationProviderFixture = `import { NavigationContainer } from "@react-navigation/native";
import * as Linking from "expo-linking";
import { useMemo } from "react";

export function NavigationProvider({ children }: { children: React.ReactNode }) {
  return (
    <NavigationContainer
      linking={useMemo(
        () => ({
          prefixes: [Linking.createURL("/")],
          config: {
            initialRouteName: "home",
            screens: {
              home: "",
              "user-detail": "user/:id",
            },
          },
        }),
        [],
      )}
    >
      {children}
    </NavigationContainer>
  );
}
`

const routerIndexFixture = `import { authRouter } from "./auth";
import { postRouter } from "./post";
import { createTRPCRouter } from "../trpc";

export const appRouter = createTRPCRouter({
  post: postRouter,
  auth: authRouter,
});

export type AppRouter = typeof appRouter;
`

const testRoot = "/work/app"

// newStackProject lays out a project that keeps a hand-written stack navigator.
func newStackProject(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeFixture(t, fsys, NativeNavigationFile, nativeNavigationFixture)
	writeFixture(t, fsys, NavigationProviderFile, navigationProviderFixture)
	writeFixture(t, fsys, RouterIndexFile, routerIndexFixture)
	return fsys
}

// newRouterProject lays out an expo-router project.
func newRouterProject(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(filepath.Join(testRoot, "apps", "expo", "app"), 0o755))
	writeFixture(t, fsys, RouterIndexFile, routerIndexFixture)
	return fsys
}

func writeFixture(t *testing.T, fsys afero.Fs, rel, contents string) {
	t.Helper()
	full := filepath.Join(testRoot, filepath.FromSlash(rel))
	require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, afero.WriteFile(fsys, full, []byte(contents), 0o644))
}

func readFixture(t *testing.T, fsys afero.Fs, rel string) string {
	t.Helper()
	b, err := afero.ReadFile(fsys, filepath.Join(testRoot, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(b)
}
