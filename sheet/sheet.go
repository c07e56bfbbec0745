// Package sheet implements the cell graph and edit transaction at the
// heart of the spreadsheet engine: a Position -> *Cell map, the SetCell
// transaction (validate, compile, cycle-check, atomic swap), and the
// invalidation protocol that keeps cached values coherent.
//
// Sheet is not safe for concurrent use; callers must serialize access to
// a single Sheet, matching the single-threaded, synchronous model the
// engine assumes throughout.
package sheet

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kalexmills/cellgraph/formula"
	"github.com/kalexmills/cellgraph/position"
	"golang.org/x/exp/maps"
)

var (
	// ErrInvalidPosition is returned for any position outside [0, Max) on
	// either axis, or a malformed textual position.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrCircularDependency is returned when committing an edit would
	// create a cycle in the cell graph.
	ErrCircularDependency = errors.New("circular dependency")
)

// Size is the axis-aligned bounding box of every present cell, including
// empty placeholders materialized only because a formula referenced them.
type Size struct {
	Rows int
	Cols int
}

// Sheet owns every cell in the grid.
type Sheet struct {
	cells map[position.Position]*Cell
	size  Size
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{cells: make(map[position.Position]*Cell)}
}

// SetCell validates pos, builds a detached candidate cell from text, cycle
// checks it against the current cell at pos, and — on success — commits it
// atomically. A failure leaves the sheet exactly as it was: any
// placeholder cell or size growth caused while building the candidate is
// rolled back before the error is returned.
func (s *Sheet) SetCell(pos position.Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}

	oldSize := s.size
	cell, existed := s.cells[pos]
	isNew := !existed
	if isNew {
		cell = s.NewCell(pos)
	} else if cell.GetText() == text {
		return nil // identical text is a no-op; see SPEC_FULL.md §10.2
	}

	candidate := newCell(s)
	if err := candidate.Set(text); err != nil {
		if isNew {
			delete(s.cells, pos)
			s.size = oldSize
		}
		return err
	}

	if candidate.FindCircularDependency(cell) {
		if isNew {
			delete(s.cells, pos)
			s.size = oldSize
		}
		return fmt.Errorf("%w: %v", ErrCircularDependency, pos)
	}

	cell.ResetContent(candidate)
	return nil
}

// GetCell returns the cell at pos, or nil if no cell is present there. It
// returns ErrInvalidPosition if pos is out of bounds.
func (s *Sheet) GetCell(pos position.Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	return s.cells[pos], nil
}

// ClearCell resets the cell at pos to empty. A cell that ends up with an
// empty body and no remaining referrers is dropped and the printable size
// shrinks to fit; a cell still referenced elsewhere is kept (now Empty) so
// referencing cells keep a valid target. Clearing pos can orphan the
// placeholder cells it used to reference (e.g. a formula's sole
// dereference of a cell materialized only for that reference); those are
// evicted the same way, cascading one level since an orphaned placeholder
// never itself has outgoing references.
func (s *Sheet) ClearCell(pos position.Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}
	children := append([]*Cell(nil), cell.out...)
	cell.Clear()
	s.evictIfOrphaned(cell)
	for _, child := range children {
		s.evictIfOrphaned(child)
	}
	return nil
}

// evictIfOrphaned drops c from the sheet and shrinks the printable size to
// fit, but only if c's body is empty and nothing else references it —
// otherwise c must be kept as a valid target for its remaining referrers,
// or its content isn't actually gone.
func (s *Sheet) evictIfOrphaned(c *Cell) {
	if c.IsReferenced() {
		return
	}
	if _, empty := c.body.(emptyBody); !empty {
		return
	}
	delete(s.cells, c.pos)
	s.shrinkToFit(c.pos)
}

// NewCell materializes an empty cell at pos and grows the printable size
// to include it. Used both for an explicit SetCell target and for
// placeholder cells created while resolving a formula's references.
func (s *Sheet) NewCell(pos position.Position) *Cell {
	c := newCell(s)
	c.pos = pos
	s.cells[pos] = c
	s.growToFit(pos)
	return c
}

// resolveOrCreate looks up the cell at pos, materializing an empty
// placeholder if none exists yet. The second return value reports whether
// a new placeholder was created.
func (s *Sheet) resolveOrCreate(pos position.Position) (*Cell, bool) {
	if c, ok := s.cells[pos]; ok {
		return c, false
	}
	return s.NewCell(pos), true
}

// GetPrintableSize returns the bounding box of every present cell.
func (s *Sheet) GetPrintableSize() Size {
	return s.size
}

// Positions returns every position currently holding a cell (including
// empty placeholders kept alive by a reference), in no particular order.
func (s *Sheet) Positions() []position.Position {
	return maps.Keys(s.cells)
}

// Reset drops every cell and shrinks the printable size back to zero,
// leaving the sheet as if freshly constructed by New.
func (s *Sheet) Reset() {
	for _, c := range s.cells {
		c.out = nil
		c.in = make(map[*Cell]struct{})
		c.cache = nil
	}
	maps.Clear(s.cells)
	s.size = Size{}
}

func (s *Sheet) growToFit(pos position.Position) {
	if s.size.Rows < pos.Row+1 {
		s.size.Rows = pos.Row + 1
	}
	if s.size.Cols < pos.Col+1 {
		s.size.Cols = pos.Col + 1
	}
}

// shrinkToFit recomputes the printable size from the cells actually
// remaining, but only when the cleared position sat on the current
// border — otherwise no other cell could have been affected.
//
// The reference implementation computes both the new row and column
// bound from pos.row, which looks like a copy-paste typo (SPEC_FULL.md
// §10.1); this recomputes each axis independently from the surviving
// cells, which is the only reading consistent with invariant 5.
func (s *Sheet) shrinkToFit(pos position.Position) {
	if pos.Row+1 != s.size.Rows && pos.Col+1 != s.size.Cols {
		return
	}
	var rows, cols int
	for p := range s.cells {
		if p.Row+1 > rows {
			rows = p.Row + 1
		}
		if p.Col+1 > cols {
			cols = p.Col + 1
		}
	}
	s.size = Size{Rows: rows, Cols: cols}
}

// Value implements formula.Referencer: a nonexistent or empty cell
// resolves to 0; a text cell resolves to its numeric interpretation or a
// KindValue error; a formula cell resolves to its own value, propagating
// its error.
func (s *Sheet) Value(pos position.Position) (float64, *formula.Error) {
	cell, ok := s.cells[pos]
	if !ok {
		return 0, nil
	}
	if _, empty := cell.body.(emptyBody); empty {
		return 0, nil
	}
	v := cell.GetValue()
	switch {
	case v.IsNumber():
		n, _ := v.Number()
		return n, nil
	case v.IsError():
		return 0, v.Error()
	default:
		// The cell's body is text. Its raw content (without any leading
		// apostrophe) is used when it parses entirely as a number; an
		// escaped cell's own value stays text, so the parse is repeated here.
		if tb, ok := cell.body.(textBody); ok {
			if n, err := strconv.ParseFloat(tb.raw, 64); err == nil {
				return n, nil
			}
		}
		return 0, &formula.Error{Kind: formula.KindValue}
	}
}
