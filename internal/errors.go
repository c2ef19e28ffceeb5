package internal

import "errors"

// Sentinel errors; none is ever embedded as a cell value. ErrInvalidPosition,
// ErrCircularDependency and ErrFormulaParse are edit-time failures returned
// from Sheet.SetCell/ClearCell, which leave the sheet unchanged on failure;
// ErrParsePosition is returned by ParsePosition.
var (
	// ErrInvalidPosition is returned when a position lies outside the
	// addressable grid.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrCircularDependency is returned when accepting an edit would
	// introduce a reference cycle in the dependency graph.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrParsePosition is returned when a label does not match the
	// [A-Z]+[0-9]+ grammar.
	ErrParsePosition = errors.New("malformed cell reference")

	// ErrFormulaParse is returned when the text following '=' is not a
	// valid expression. Parser errors wrap this sentinel with details.
	ErrFormulaParse = errors.New("formula parse error")
)
