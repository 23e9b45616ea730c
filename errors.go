package validators

import "fmt"

// ValidationError is the single failure kind produced by checkers. The
// formatted message is the entire payload; there is no further taxonomy.
// Success is a nil error, so callers discriminate with errors.As (or a plain
// nil check) rather than inspecting message text.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// newValidationError is the one place failure values are built, so every
// checker kind reports the same message shape:
//
//	Warning: Invalid state passed to '<name>'. <detail> Passed to '<component>'. Check render method of '<parent>'.
//
// The component name renders as the literal null when no context can resolve
// it, and the trailing location clause is omitted when no parent component is
// known. Never fails, regardless of context.
func newValidationError(detail, name string, ctx Context) *ValidationError {
	component := "null"
	location := ""
	if ctx != nil {
		if resolved, ok := ctx.ComponentName(); ok {
			component = resolved
		}
		if parent, ok := ctx.ParentComponent(); ok {
			location = fmt.Sprintf(" Check render method of '%s'.", parent)
		}
	}

	return &ValidationError{
		Message: fmt.Sprintf("Warning: Invalid state passed to '%s'. %s Passed to '%s'.%s", name, detail, component, location),
	}
}
