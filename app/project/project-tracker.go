package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// MaxHistory caps the command history kept per project.
const MaxHistory = 20

// registryFileName is the name of the file used to store the project registry.
const registryFileName = "projects.json"

// HistoricCommand stores one scaffold run.
type HistoricCommand struct {
	Name           string            `json:"name"`
	Variables      map[string]string `json:"variables"`
	Timestamp      int64             `json:"timestamp"`
	GeneratedFiles []string          `json:"generatedFiles"`
	PatchedFiles   []string          `json:"patchedFiles,omitempty"`
}

// ProjectRecord is a known workspace plus its usage stats.
type ProjectRecord struct {
	ProjectInfo
	UsageCount     int               `json:"usageCount"`
	LastAccessTime int64             `json:"lastAccessTime"`
	CommandHistory []HistoricCommand `json:"commandHistory"`
}

// ProjectRegistry holds information about all known projects.
type ProjectRegistry struct {
	Projects     map[string]ProjectRecord `json:"projects"`
	LastUsedPath string                   `json:"lastUsedPath"`
	GlobalUsages int                      `json:"globalUsages"`
	RegistryPath string                   `json:"-"`

	fs  afero.Fs
	now func() time.Time
	mu  sync.RWMutex
}

// RegistryPathIn returns the registry file inside configDir.
func RegistryPathIn(configDir string) string {
	return filepath.Join(configDir, registryFileName)
}

// LoadProjectRegistry loads the registry at path. A missing file yields an
// empty registry; nothing is written until Save.
func LoadProjectRegistry(fsys afero.Fs, path string) (*ProjectRegistry, error) {
	registry := &ProjectRegistry{
		Projects:     make(map[string]ProjectRecord),
		RegistryPath: path,
		fs:           fsys,
		now:          time.Now,
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return registry, nil
		}
		return nil, errors.Wrapf(err, "error reading registry file %s", path)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return registry, nil
	}

	if err := json.Unmarshal(data, registry); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "error unmarshalling registry file %s", path),
			"the file might be corrupt; delete it to start a fresh history")
	}
	if registry.Projects == nil {
		registry.Projects = make(map[string]ProjectRecord)
	}
	for key, rec := range registry.Projects {
		if rec.CommandHistory == nil {
			rec.CommandHistory = []HistoricCommand{}
			registry.Projects[key] = rec
		}
	}
	registry.RegistryPath = path
	return registry, nil
}

// Save persists the current state of the project registry.
func (r *ProjectRegistry) Save() error {
	r.mu.RLock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, "error marshalling registry")
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.RegistryPath), 0o750); err != nil {
		return errors.Wrapf(err, "could not create config directory %s", filepath.Dir(r.RegistryPath))
	}
	if err := afero.WriteFile(r.fs, r.RegistryPath, data, 0o640); err != nil {
		return errors.Wrapf(err, "error writing registry file %s", r.RegistryPath)
	}
	return nil
}

// AddOrUpdateProject records a use of the project, keeping its history.
func (r *ProjectRegistry) AddOrUpdateProject(info ProjectInfo) {
	if info.RootPath == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, found := r.Projects[info.RootPath]
	if !found {
		rec.CommandHistory = []HistoricCommand{}
	}
	rec.ProjectInfo = info
	rec.UsageCount++
	rec.LastAccessTime = r.now().Unix()
	r.Projects[info.RootPath] = rec

	r.GlobalUsages++
	r.LastUsedPath = info.RootPath
}

// RecordCommand prepends cmd to the project's history, dropping the oldest
// entries beyond MaxHistory. Unknown roots are registered on the fly.
func (r *ProjectRegistry) RecordCommand(rootPath string, cmd HistoricCommand) {
	if rootPath == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, found := r.Projects[rootPath]
	if !found {
		rec.ProjectInfo = ProjectInfo{RootPath: rootPath, Name: filepath.Base(rootPath)}
	}
	if cmd.Timestamp == 0 {
		cmd.Timestamp = r.now().Unix()
	}
	if cmd.GeneratedFiles == nil {
		cmd.GeneratedFiles = []string{}
	}
	history := append([]HistoricCommand{cmd}, rec.CommandHistory...)
	if len(history) > MaxHistory {
		history = history[:MaxHistory]
	}
	rec.CommandHistory = history
	r.Projects[rootPath] = rec
}

// GetProject retrieves a project record by its root path.
func (r *ProjectRegistry) GetProject(rootPath string) (ProjectRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, found := r.Projects[rootPath]
	return rec, found
}

// History returns a copy of the project's commands, newest first.
func (r *ProjectRegistry) History(rootPath string) []HistoricCommand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, found := r.Projects[rootPath]
	if !found {
		return nil
	}
	out := make([]HistoricCommand, len(rec.CommandHistory))
	copy(out, rec.CommandHistory)
	return out
}

// IsSubdirectoryOfProject reports the known project containing currentPath.
func (r *ProjectRegistry) IsSubdirectoryOfProject(currentPath string) (ProjectRecord, bool) {
	absCurrentPath, err := filepath.Abs(currentPath)
	if err != nil {
		return ProjectRecord{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for rootPath, rec := range r.Projects {
		rel, err := filepath.Rel(rootPath, absCurrentPath)
		if err == nil && !strings.HasPrefix(rel, "..") {
			return rec, true
		}
	}
	return ProjectRecord{}, false
}
