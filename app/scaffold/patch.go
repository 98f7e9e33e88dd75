package scaffold

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// -----------------------------------------------------------------------------
// [PATCH] Anchored splices into existing registry files
// -----------------------------------------------------------------------------

// Occurrence selects which match of an anchor is used.
type Occurrence int

const (
	First Occurrence = iota
	Last
)

// Position places inserted text relative to the matched anchor.
type Position int

const (
	// Before inserts at the start of the anchor.
	Before Position = iota
	// After inserts right after the end of the anchor.
	After
)

// AnchoredEdit describes one splice. When Within is set, that anchor is located
// first (by its first occurrence) and the search for Anchor starts at its offset.
type AnchoredEdit struct {
	Name       string
	Anchor     string
	Within     string
	Occurrence Occurrence
	Position   Position
	Insert     string
}

// PatchPlan is an ordered list of edits for one file. Offsets are resolved
// against the original contents, so edits must be listed in ascending order.
type PatchPlan struct {
	File  string
	Guard string
	Edits []AnchoredEdit
}

// Apply resolves every edit against original and returns the spliced text.
// Nothing is assembled unless all anchors resolve in ascending order.
func (p PatchPlan) Apply(original string) (string, error) {
	if p.Guard != "" && strings.Contains(original, p.Guard) {
		return "", errors.WithHint(
			errors.Wrapf(ErrAlreadyRegistered, "%s already contains %q", p.File, strings.TrimSpace(p.Guard)),
			"pick a different name or remove the existing entry first")
	}

	offsets := make([]int, len(p.Edits))
	prev := 0
	for i, e := range p.Edits {
		off, err := p.resolve(original, e)
		if err != nil {
			return "", err
		}
		if off < prev {
			return "", &PatchError{File: p.File, Edit: e.Name, Anchor: e.Anchor, Err: ErrAnchorOrder}
		}
		offsets[i] = off
		prev = off
	}

	var b strings.Builder
	b.Grow(len(original) + p.insertedLen())
	cursor := 0
	for i, e := range p.Edits {
		b.WriteString(original[cursor:offsets[i]])
		b.WriteString(e.Insert)
		cursor = offsets[i]
	}
	b.WriteString(original[cursor:])
	return b.String(), nil
}

func (p PatchPlan) resolve(original string, e AnchoredEdit) (int, error) {
	from := 0
	if e.Within != "" {
		from = strings.Index(original, e.Within)
		if from < 0 {
			return 0, &PatchError{File: p.File, Edit: e.Name, Anchor: e.Within, Err: ErrAnchorNotFound}
		}
	}
	if e.Anchor == "" {
		return 0, &PatchError{File: p.File, Edit: e.Name, Anchor: e.Anchor, Err: ErrAnchorNotFound}
	}

	rest := original[from:]
	var idx int
	if e.Occurrence == Last {
		idx = strings.LastIndex(rest, e.Anchor)
	} else {
		idx = strings.Index(rest, e.Anchor)
	}
	if idx < 0 {
		return 0, &PatchError{File: p.File, Edit: e.Name, Anchor: e.Anchor, Err: ErrAnchorNotFound}
	}

	off := from + idx
	if e.Position == After {
		off += len(e.Anchor)
	}
	return off, nil
}

func (p PatchPlan) insertedLen() int {
	n := 0
	for _, e := range p.Edits {
		n += len(e.Insert)
	}
	return n
}
