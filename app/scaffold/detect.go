package scaffold

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// Navigation is the registry-patching strategy a project needs.
type Navigation int

const (
	// NavFileRouter projects (expo-router) encode routes in the file tree.
	NavFileRouter Navigation = iota
	// NavStack projects keep a hand-written stack navigator that must be patched.
	NavStack
)

func (n Navigation) String() string {
	if n == NavStack {
		return "stack-navigator"
	}
	return "file-router"
}

// NativeNavigationDir is probed to tell the two project layouts apart.
const NativeNavigationDir = "packages/app/navigation/native"

// DetectNavigation probes root for the native navigation directory. A missing
// path, or a plain file in its place, means the project uses a file router.
func DetectNavigation(fsys afero.Fs, root string) (Navigation, error) {
	probe := filepath.Join(root, filepath.FromSlash(NativeNavigationDir))
	info, err := fsys.Stat(probe)
	if err != nil {
		if os.IsNotExist(err) {
			return NavFileRouter, nil
		}
		return NavFileRouter, errors.Wrapf(err, "probe %s", probe)
	}
	if info.IsDir() {
		return NavStack, nil
	}
	return NavFileRouter, nil
}
