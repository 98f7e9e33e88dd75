package scaffold

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ArtifactKind selects which family of templates a request renders.
type ArtifactKind int

const (
	KindScreen ArtifactKind = iota
	KindComponent
	KindRoute
)

func (k ArtifactKind) String() string {
	switch k {
	case KindScreen:
		return "screen"
	case KindComponent:
		return "component"
	case KindRoute:
		return "route"
	default:
		return "unknown"
	}
}

// RouteStyle is Static (no parameter) or Dynamic (one named parameter).
type RouteStyle int

const (
	RouteStatic RouteStyle = iota
	RouteDynamic
)

func (s RouteStyle) String() string {
	if s == RouteDynamic {
		return "dynamic"
	}
	return "static"
}

// RouteStyleChoices are the labels offered by interactive prompts.
var RouteStyleChoices = []string{"static", "dynamic"}

// ParseRouteStyle maps user text to a RouteStyle. An empty string is static.
func ParseRouteStyle(s string) (RouteStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "static":
		return RouteStatic, nil
	case "dynamic":
		return RouteDynamic, nil
	default:
		return RouteStatic, errors.WithHint(
			errors.Wrapf(ErrInvalidRequest, "unknown route style %q", s),
			"choose static or dynamic")
	}
}

// Request describes one artifact to scaffold.
type Request struct {
	Kind  ArtifactKind
	Name  string
	Style RouteStyle
	Param string
}

// Validate enforces the naming rules and the Style/Param pairing.
func (r Request) Validate() error {
	if _, err := ValidateName("name", r.Name); err != nil {
		return err
	}
	if r.Style == RouteDynamic {
		if r.Kind != KindScreen {
			return errors.Wrapf(ErrInvalidRequest, "%s cannot use a dynamic route", r.Kind)
		}
		if _, err := ValidateName("param", r.Param); err != nil {
			return err
		}
		return nil
	}
	if r.Param != "" {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidRequest, "param %q given for a static %s", r.Param, r.Kind),
			"pass --route dynamic to use a parameter")
	}
	return nil
}

// Segment is the lower-cased name used for directories and route segments.
func (r Request) Segment() string { return strings.ToLower(r.Name) }

// Pascal is the PascalCase form of the name.
func (r Request) Pascal() string { return ToPascalCase(r.Name) }

// Camel is the camelCase form of the name.
func (r Request) Camel() string { return ToCamelCase(r.Name) }

// ScreenIdent is the exported function name of a feature screen.
func (r Request) ScreenIdent() string { return r.Pascal() + "Screen" }

// Dynamic reports whether the request carries a route parameter.
func (r Request) Dynamic() bool { return r.Style == RouteDynamic }
