package scaffold

import (
	"fmt"
	"strconv"
	"unicode"
)

// Registry files patched when wiring new artifacts into the app.
const (
	NativeNavigationFile   = "packages/app/navigation/native/index.tsx"
	NavigationProviderFile = "packages/app/provider/navigation/index.tsx"
	RouterIndexFile        = "packages/api/src/router/index.ts"
)

// Literal anchors located in the registry files.
const (
	AnchorImport         = "import"
	AnchorStackParamsEnd = "}>();"
	AnchorNavigatorEnd   = "</Stack.Navigator>"
	AnchorLinkingScreens = "screens: {"
	AnchorRouterCall     = "createTRPCRouter({"
	AnchorRouterEnd      = "});"
)

// NativeNavigationPatch registers a screen with the hand-written stack navigator.
func NativeNavigationPatch(r Request) PatchPlan {
	importLine := fmt.Sprintf("import { %s } from \"../../features/%s/screen\";\n", r.ScreenIdent(), r.Segment())

	key := objectKey(r.Segment())
	routeType := fmt.Sprintf("  %s: undefined;\n", key)
	if r.Dynamic() {
		routeType = fmt.Sprintf("  %s: { %s: string };\n", key, objectKey(r.Param))
	}

	stackScreen := fmt.Sprintf("  <Stack.Screen\n"+
		"        name=\"%s\"\n"+
		"        component={%s}\n"+
		"        options={{\n"+
		"          title: \"%s\",\n"+
		"        }}\n"+
		"      />\n    ", r.Segment(), r.ScreenIdent(), r.Pascal())

	return PatchPlan{
		File:  NativeNavigationFile,
		Guard: importLine,
		Edits: []AnchoredEdit{
			{Name: "import", Anchor: AnchorImport, Occurrence: Last, Position: Before, Insert: importLine},
			{Name: "route type", Anchor: AnchorStackParamsEnd, Position: Before, Insert: routeType},
			{Name: "stack screen", Anchor: AnchorNavigatorEnd, Position: Before, Insert: stackScreen},
		},
	}
}

// NavigationProviderPatch adds the screen to the linking config used on web.
func NavigationProviderPatch(r Request) PatchPlan {
	path := r.Segment()
	if r.Dynamic() {
		path = fmt.Sprintf("%s/:%s", r.Segment(), r.Param)
	}
	entry := fmt.Sprintf("%s: %q,", objectKey(r.Segment()), path)
	return PatchPlan{
		File:  NavigationProviderFile,
		Guard: entry,
		Edits: []AnchoredEdit{
			{Name: "linking entry", Anchor: AnchorLinkingScreens, Position: After, Insert: "\n              " + entry},
		},
	}
}

// RouterIndexPatch merges a procedure group into the app router.
func RouterIndexPatch(r Request) PatchPlan {
	ident := r.Camel() + "Router"
	importLine := fmt.Sprintf("import { %s } from \"./%s\";\n", ident, r.Segment())
	return PatchPlan{
		File:  RouterIndexFile,
		Guard: importLine,
		Edits: []AnchoredEdit{
			{Name: "import", Anchor: AnchorImport, Position: Before, Insert: importLine},
			{Name: "router entry", Anchor: AnchorRouterEnd, Within: AnchorRouterCall, Position: Before, Insert: fmt.Sprintf("  %s: %s,\n", r.Camel(), ident)},
		},
	}
}

// RegistryPatches returns the plans a request needs for the given navigation.
func RegistryPatches(r Request, nav Navigation) []PatchPlan {
	switch r.Kind {
	case KindScreen:
		if nav == NavStack {
			return []PatchPlan{NativeNavigationPatch(r), NavigationProviderPatch(r)}
		}
	case KindRoute:
		return []PatchPlan{RouterIndexPatch(r)}
	}
	return nil
}

// objectKey renders s as a TypeScript object key, quoting it unless it is a
// plain identifier.
func objectKey(s string) string {
	if isIdentifier(s) {
		return s
	}
	return strconv.Quote(s)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
