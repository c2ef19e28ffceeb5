package internal

import (
	"sort"

	"golang.org/x/exp/maps"
)

// cellNode is a cell at a position plus its forward-reference set (cells it
// reads), reverse-reference set (cells that read it), and a memoized value.
// Edges are stored as positions rather than pointers: the sheet's map may
// rehash and nodes may be created lazily, so every neighbor dereference goes
// back through the sheet.
type cellNode struct {
	sheet *Sheet
	pos   Position

	body cellBody

	forward map[Position]struct{} // cells this cell's body reads
	reverse map[Position]struct{} // cells that read this cell

	memoSet bool
	memo    any
}

func newCellNode(sheet *Sheet, pos Position) *cellNode {
	return &cellNode{
		sheet:   sheet,
		pos:     pos,
		forward: make(map[Position]struct{}),
		reverse: make(map[Position]struct{}),
	}
}

// set implements the edit protocol: build a prospective body, check for
// cycles, rewire forward/reverse edges, invalidate memoized values along
// reverse-references, and only then commit. On any error the node is left
// completely unchanged.
func (n *cellNode) set(raw string) error {
	prospective, err := newCellBody(raw)
	if err != nil {
		return err
	}

	prospectiveRefs := prospective.ReferencedCells()
	if n.sheet.wouldCycle(n.pos, prospectiveRefs) {
		return ErrCircularDependency
	}

	// Rewire: drop this cell from the reverse set of everything it used to
	// reference, then attach it to the reverse set of everything the new
	// body references (materializing Empty placeholders as needed so the
	// reverse edge has somewhere to live).
	for ref := range n.forward {
		if old := n.sheet.cellAt(ref); old != nil {
			delete(old.reverse, n.pos)
		}
	}
	newForward := make(map[Position]struct{}, len(prospectiveRefs))
	for _, ref := range prospectiveRefs {
		newForward[ref] = struct{}{}
		target := n.sheet.ensureNode(ref)
		target.reverse[n.pos] = struct{}{}
	}
	n.forward = newForward

	n.invalidate()
	n.body = prospective
	return nil
}

// clear is equivalent to set(""): forward edges are dropped, reverse edges
// into this node are left untouched (other cells may still reference it).
func (n *cellNode) clear() error {
	return n.set("")
}

// invalidate clears this node's memo and recurses along reverse-references,
// cutting off as soon as a node's memo is already absent — the cascade's
// total work is bounded by the set of cells whose cache could actually have
// been affected.
func (n *cellNode) invalidate() {
	if !n.memoSet {
		return
	}
	n.memoSet = false
	n.memo = nil
	for ref := range n.reverse {
		if dep := n.sheet.cellAt(ref); dep != nil {
			dep.invalidate()
		}
	}
}

// GetValue returns the memoized value if present, otherwise evaluates the
// body and memoizes the result (including FormulaError values).
func (n *cellNode) GetValue() any {
	if n.memoSet {
		return n.memo
	}
	v := n.body.Value(n.sheet)
	n.memo = v
	n.memoSet = true
	return v
}

// GetText returns the body's displayed source text.
func (n *cellNode) GetText() string {
	return n.body.Text()
}

// GetReferencedCells returns the valid positions this cell's body reads,
// deduplicated and sorted ascending by (row, col).
func (n *cellNode) GetReferencedCells() []Position {
	refs := n.body.ReferencedCells()
	out := make([]Position, len(refs))
	copy(out, refs)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// IsReferenced reports whether any other cell reads this one, or this one
// reads any other cell.
func (n *cellNode) IsReferenced() bool {
	return len(n.forward) > 0 || len(n.reverse) > 0
}

// isEmpty reports whether this node currently carries the Empty body.
func (n *cellNode) isEmpty() bool {
	return n.body.kind == bodyEmpty
}

// clearEdgeSets is a small helper used when a node is being dropped from the
// sheet's map entirely, to release its edge sets in bulk.
func (n *cellNode) clearEdgeSets() {
	maps.Clear(n.forward)
	maps.Clear(n.reverse)
}
