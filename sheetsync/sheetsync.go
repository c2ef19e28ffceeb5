// Package sheetsync wraps the single-threaded cellgraph core behind a
// single exclusive lock covering every public entry point. It additionally
// uses golang.org/x/sync/singleflight to collapse concurrent GetValue calls
// racing on the same uncached cell into a single evaluation.
package sheetsync

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/kalexmills/cellgraph/internal"
)

// Sheet is a goroutine-safe façade over a *internal.Sheet. The zero value is
// not usable; construct with New.
type Sheet struct {
	mu    sync.RWMutex
	inner *internal.Sheet
	group singleflight.Group
}

// New returns an empty, goroutine-safe sheet.
func New() *Sheet {
	return &Sheet{inner: internal.NewSheet()}
}

// SetCell takes the exclusive lock for the duration of the edit: cycle
// detection, rewiring, and invalidation must all observe a consistent
// graph, and fine-grained locking is unsafe here because the invalidation
// cascade can touch an unbounded subgraph.
func (s *Sheet) SetCell(pos internal.Position, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SetCell(pos, text)
}

// ClearCell behaves like SetCell(pos, "") under the same exclusive lock.
func (s *Sheet) ClearCell(pos internal.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ClearCell(pos)
}

// GetCell takes the exclusive lock and returns a read-only snapshot of the
// cell's value, text, and referenced cells, or nil if pos is unpopulated
// or outside the printable box.
func (s *Sheet) GetCell(pos internal.Position) (*CellSnapshot, error) {
	// GetValue may evaluate and memoize lazily across the whole dependency
	// graph, so the snapshot is built under the exclusive lock; singleflight
	// lets concurrent callers for the same position share one such build.
	s.mu.Lock()
	cell, err := s.inner.GetCell(pos)
	s.mu.Unlock()
	if err != nil || cell == nil {
		return nil, err
	}

	key := pos.String()
	v, err, _ := s.group.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return &CellSnapshot{
			Value:           cell.GetValue(),
			Text:            cell.GetText(),
			ReferencedCells: cell.GetReferencedCells(),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CellSnapshot), nil
}

// PrintableSize takes the exclusive lock and returns the current printable
// box dimensions.
func (s *Sheet) PrintableSize() (rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.PrintableSize()
}

// CellSnapshot is an immutable, point-in-time view of a cell, safe to read
// after the lock guarding Sheet has been released.
type CellSnapshot struct {
	Value           any
	Text            string
	ReferencedCells []internal.Position
}

// String renders the snapshot's value for debugging.
func (c *CellSnapshot) String() string {
	return fmt.Sprintf("%v", c.Value)
}
