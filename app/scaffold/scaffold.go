package scaffold

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FilePatch is the computed new contents of an existing registry file.
type FilePatch struct {
	Path     string
	Original string
	Contents string
}

// Plan is everything one command invocation will write. Building a plan never
// touches the disk beyond reads.
type Plan struct {
	Request    Request
	Navigation Navigation
	Files      []FileTemplate
	Patches    []FilePatch
	// Primary is the file opened in the editor once the plan is applied.
	Primary string
}

// Result lists the paths written by Apply, relative to the project root.
type Result struct {
	Created []string
	Patched []string
}

// ApplyOptions tunes how a plan is written.
type ApplyOptions struct {
	Force bool
}

// Scaffolder plans and applies artifacts against one filesystem.
type Scaffolder struct {
	fs   afero.Fs
	log  *zap.SugaredLogger
	opts RenderOptions
}

// New returns a Scaffolder. A nil logger disables logging.
func New(fsys afero.Fs, log *zap.SugaredLogger, opts RenderOptions) *Scaffolder {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Scaffolder{fs: fsys, log: log, opts: opts}
}

// ScaffoldScreen plans a feature screen plus its platform entry points.
func (s *Scaffolder) ScaffoldScreen(root, name string, style RouteStyle, param string) (*Plan, error) {
	req := Request{Kind: KindScreen, Name: name, Style: style, Param: param}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	nav, err := DetectNavigation(s.fs, root)
	if err != nil {
		return nil, err
	}
	s.log.Debugw("Detected navigation", "root", root, "navigation", nav.String())
	return s.plan(root, req, nav)
}

// ScaffoldComponent plans a UI library component.
func (s *Scaffolder) ScaffoldComponent(root, name string) (*Plan, error) {
	return s.plan(root, Request{Kind: KindComponent, Name: name}, NavFileRouter)
}

// ScaffoldRoute plans a backend procedure group and its router registration.
func (s *Scaffolder) ScaffoldRoute(root, name string) (*Plan, error) {
	return s.plan(root, Request{Kind: KindRoute, Name: name}, NavFileRouter)
}

func (s *Scaffolder) plan(root string, req Request, nav Navigation) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	files, err := Render(req, nav, s.opts)
	if err != nil {
		return nil, err
	}
	plan := &Plan{Request: req, Navigation: nav, Files: files}
	if len(files) > 0 {
		plan.Primary = files[0].Path
	}

	for _, pp := range RegistryPatches(req, nav) {
		full := filepath.Join(root, filepath.FromSlash(pp.File))
		original, err := afero.ReadFile(s.fs, full)
		if err != nil {
			return nil, errors.Wrapf(err, "read registry file %s", pp.File)
		}
		patched, err := pp.Apply(string(original))
		if err != nil {
			return nil, err
		}
		plan.Patches = append(plan.Patches, FilePatch{Path: pp.File, Original: string(original), Contents: patched})
	}
	s.log.Debugw("Planned artifact",
		"kind", req.Kind.String(), "name", req.Name,
		"files", len(plan.Files), "patches", len(plan.Patches))
	return plan, nil
}

// Apply writes the plan under root in order: new files, then registry
// patches. Each write completes before the next starts; a failure stops the
// run and earlier writes stay on disk.
func (s *Scaffolder) Apply(ctx context.Context, root string, plan *Plan, opts ApplyOptions) (Result, error) {
	var res Result
	if !opts.Force {
		for _, f := range plan.Files {
			full := filepath.Join(root, filepath.FromSlash(f.Path))
			if exists, err := afero.Exists(s.fs, full); err != nil {
				return res, errors.Wrapf(err, "stat %s", f.Path)
			} else if exists {
				return res, errors.WithHint(
					errors.Wrapf(ErrFileExists, "%s", f.Path),
					"pass --force to overwrite generated files")
			}
		}
	}

	for _, f := range plan.Files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.write(root, f.Path, f.Contents); err != nil {
			return res, err
		}
		res.Created = append(res.Created, f.Path)
		s.log.Infow("Created file", "path", f.Path)
	}
	for _, p := range plan.Patches {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.write(root, p.Path, p.Contents); err != nil {
			return res, err
		}
		res.Patched = append(res.Patched, p.Path)
		s.log.Infow("Patched registry file", "path", p.Path)
	}
	return res, nil
}

func (s *Scaffolder) write(root, rel, contents string) error {
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", rel)
	}
	if err := afero.WriteFile(s.fs, full, []byte(contents), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", rel)
	}
	return nil
}

// Paths returns every path a plan touches, created files first.
func (p *Plan) Paths() []string {
	out := make([]string, 0, len(p.Files)+len(p.Patches))
	for _, f := range p.Files {
		out = append(out, f.Path)
	}
	for _, pt := range p.Patches {
		out = append(out, pt.Path)
	}
	return out
}

// IsPatched reports whether path is a registry file in the plan.
func (p *Plan) IsPatched(path string) bool {
	for _, pt := range p.Patches {
		if pt.Path == path {
			return true
		}
	}
	return false
}
