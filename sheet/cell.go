package sheet

import (
	"fmt"

	"github.com/kalexmills/cellgraph/position"
)

// Cell owns a body, its outgoing references (children), the set of cells
// referencing it (parents), and a memoized value. The sheet is the sole
// owner of cells; out/in are non-owning back-references whose lifetime
// equals the sheet's — mirroring cell.h's Impl/parents_/childrens_ split.
type Cell struct {
	sheet *Sheet
	pos   position.Position
	body  body

	out []*Cell
	in  map[*Cell]struct{}

	cache *Value
}

func newCell(s *Sheet) *Cell {
	return &Cell{sheet: s, body: emptyBody{}, in: make(map[*Cell]struct{})}
}

// Set replaces c's body according to text's wire-form prefix (spec.md §6):
// empty is a no-op, a leading '=' (length > 1) compiles a formula and
// resolves its outgoing edges through the sheet, a leading "'" installs
// escaped text, anything else installs literal text.
//
// If resolving a formula's referenced positions encounters one that is
// syntactically valid but out of the grid's bound, any placeholder cells
// newly materialized earlier in that same resolution are cleared before
// the error is returned — c itself is left untouched either way.
func (c *Cell) Set(text string) error {
	if text == "" {
		return nil
	}
	b, err := newBody(text)
	if err != nil {
		return err
	}
	fb, ok := b.(formulaBody)
	if !ok {
		c.body = b
		c.out = nil
		return nil
	}
	children, err := c.resolveChildren(fb)
	if err != nil {
		return err
	}
	c.body = fb
	c.out = children
	return nil
}

// resolveChildren materializes (or looks up) every cell referenced by fb,
// rolling back any placeholder it newly created if a later reference turns
// out invalid.
func (c *Cell) resolveChildren(fb formulaBody) ([]*Cell, error) {
	refs := fb.ReferencedCells()
	children := make([]*Cell, 0, len(refs))
	var created []position.Position
	rollback := func() {
		for _, pos := range created {
			c.sheet.ClearCell(pos)
		}
	}
	for _, pos := range refs {
		if !pos.IsValid() {
			rollback()
			return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
		}
		child, isNew := c.sheet.resolveOrCreate(pos)
		if isNew {
			created = append(created, pos)
		}
		children = append(children, child)
	}
	return children, nil
}

// Clear drops every outgoing edge (erasing c from each child's parent set)
// and resets the body to empty. It does not touch c's own parent set —
// cells referencing c keep pointing at it.
func (c *Cell) Clear() {
	for _, child := range c.out {
		delete(child.in, c)
	}
	c.body = emptyBody{}
	c.out = nil
	c.cacheInvalidation(make(map[*Cell]bool))
}

// GetValue returns c's memoized value, computing and caching it first if
// the cache is empty.
func (c *Cell) GetValue() Value {
	if c.cache == nil {
		v := c.body.Value(c.sheet)
		c.cache = &v
	}
	return *c.cache
}

// GetText returns c's uncached wire-form text.
func (c *Cell) GetText() string {
	return c.body.Text()
}

// GetReferencedCells returns the uncached list of positions c's body
// references.
func (c *Cell) GetReferencedCells() []position.Position {
	return c.body.ReferencedCells()
}

// IsReferenced reports whether any other cell references c.
func (c *Cell) IsReferenced() bool {
	return len(c.in) > 0
}

// FindCircularDependency performs a depth-first search over c's outgoing
// edges, returning true iff target is reachable. Called on a detached
// candidate cell before it is committed in place of target.
func (c *Cell) FindCircularDependency(target *Cell) bool {
	visited := make(map[*Cell]bool)
	var dfs func(cur *Cell) bool
	dfs = func(cur *Cell) bool {
		for _, child := range cur.out {
			if child == target {
				return true
			}
			if visited[child] {
				continue
			}
			visited[child] = true
			if dfs(child) {
				return true
			}
		}
		return false
	}
	return dfs(c)
}

// ResetContent performs the atomic swap that commits a candidate cell:
// erase c from each current child's parent set, swap body and out with
// other's, re-add c to each new child's parent set, then invalidate
// caches transitively.
func (c *Cell) ResetContent(other *Cell) {
	for _, child := range c.out {
		delete(child.in, c)
	}
	c.body, other.body = other.body, c.body
	c.out, other.out = other.out, c.out
	for _, child := range c.out {
		child.in[c] = struct{}{}
	}
	c.cacheInvalidation(make(map[*Cell]bool))
}

// cacheInvalidation clears c's own cache, then recursively invalidates
// every parent's cache. The visited set guards against runaway recursion
// if invariant 3 (acyclicity) is ever transiently violated mid-swap.
func (c *Cell) cacheInvalidation(visited map[*Cell]bool) {
	if visited[c] {
		return
	}
	visited[c] = true
	c.cache = nil
	for parent := range c.in {
		parent.cacheInvalidation(visited)
	}
}
