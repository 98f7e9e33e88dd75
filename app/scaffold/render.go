package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/cockroachdb/errors"
)

// Templates use <% %> delimiters since TSX is full of {{ }}.
//
//go:embed templates/*.tmpl
var templateFiles embed.FS

var templates = template.Must(
	template.New("scaffold").Delims("<%", "%>").ParseFS(templateFiles, "templates/*.tmpl"),
)

// DefaultUIPackage is the import path of the shared UI library in the template.
const DefaultUIPackage = "@my/ui"

// RenderOptions carries project-level knobs that templates read.
type RenderOptions struct {
	UIPackage string
}

// FileTemplate is one generated file. Path is slash-separated and relative to
// the project root.
type FileTemplate struct {
	Path     string
	Contents string
}

type templateData struct {
	Segment     string
	Pascal      string
	Camel       string
	ScreenIdent string
	Param       string
	Dynamic     bool
	UIPackage   string
}

// Render produces the new files for a request, primary file first.
func Render(req Request, nav Navigation, opts RenderOptions) ([]FileTemplate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if opts.UIPackage == "" {
		opts.UIPackage = DefaultUIPackage
	}
	data := templateData{
		Segment:     req.Segment(),
		Pascal:      req.Pascal(),
		Camel:       req.Camel(),
		ScreenIdent: req.ScreenIdent(),
		Param:       req.Param,
		Dynamic:     req.Dynamic(),
		UIPackage:   opts.UIPackage,
	}

	var out []FileTemplate
	add := func(path, name string) error {
		contents, err := execute(name, data)
		if err != nil {
			return err
		}
		out = append(out, FileTemplate{Path: path, Contents: contents})
		return nil
	}

	switch req.Kind {
	case KindScreen:
		if err := add(fmt.Sprintf("packages/app/features/%s/screen.tsx", data.Segment), "feature_screen.tsx.tmpl"); err != nil {
			return nil, err
		}
		if nav == NavFileRouter {
			if err := add(expoRoutePath(req), "expo_screen.tsx.tmpl"); err != nil {
				return nil, err
			}
		}
		if err := add(nextPagePath(req), "next_page.tsx.tmpl"); err != nil {
			return nil, err
		}
	case KindComponent:
		if err := add(fmt.Sprintf("packages/ui/src/components/%s.tsx", data.Pascal), "ui_component.tsx.tmpl"); err != nil {
			return nil, err
		}
	case KindRoute:
		if err := add(fmt.Sprintf("packages/api/src/router/%s.ts", data.Segment), "api_router.ts.tmpl"); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(ErrInvalidRequest, "unknown artifact kind %d", int(req.Kind))
	}
	return out, nil
}

func expoRoutePath(req Request) string {
	if req.Dynamic() {
		return fmt.Sprintf("apps/expo/app/%s/[%s].tsx", req.Segment(), req.Param)
	}
	return fmt.Sprintf("apps/expo/app/%s.tsx", req.Segment())
}

func nextPagePath(req Request) string {
	if req.Dynamic() {
		return fmt.Sprintf("apps/nextjs/pages/%s/[%s].tsx", req.Segment(), req.Param)
	}
	return fmt.Sprintf("apps/nextjs/pages/%s/index.tsx", req.Segment())
}

func execute(name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "render %s", name)
	}
	return buf.String(), nil
}
