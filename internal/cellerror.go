package internal

// ErrorKind tags the three ways a formula can fail to evaluate.
type ErrorKind int

const (
	// ErrRef means a formula referenced a position that is not valid
	// (a well-formed label that decodes out of bounds, such as row 0 or a
	// row/column past MaxRows/MaxCols). A malformed label is a formula
	// parse error instead.
	ErrRef ErrorKind = iota
	// ErrValue means an operand could not be coerced to a number.
	ErrValue
	// ErrArithmetic means evaluation produced a non-finite IEEE-754
	// result (division by zero, overflow, domain error).
	ErrArithmetic
)

// FormulaError is a value, not a Go error: it flows through GetValue like
// any other cell value and is cached and invalidated identically to a
// number. It implements the error interface only so tests and callers can
// use errors.As/fmt conveniently; it is never raised out of SetCell.
type FormulaError struct {
	Kind ErrorKind
}

// Error renders the error's canonical tag, e.g. "#ARITHM!".
func (e FormulaError) Error() string {
	switch e.Kind {
	case ErrRef:
		return "#REF!"
	case ErrValue:
		return "#VALUE!"
	case ErrArithmetic:
		return "#ARITHM!"
	default:
		return "#ERROR!"
	}
}

// String is an alias for Error, used by PrintValues.
func (e FormulaError) String() string {
	return e.Error()
}
