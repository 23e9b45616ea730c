package validators

import "fmt"

// maxDepth bounds recursion through nested combinators so that cyclic or
// pathologically deep values fail validation instead of overflowing the stack.
const maxDepth = 1000

const depthDetail = "Maximum nesting depth exceeded."

// Checker decides whether a value conforms to a declared type. Check returns
// nil on success and a *ValidationError on failure; no other outcomes exist,
// and checkers never panic on any input.
//
// The set of implementations is closed: primitive tag checks plus the
// combinators built by ArrayOf, ObjectOf, OneOfType, InstanceOf and ShapeOf.
// Each implementation is an immutable struct holding its configuration, so a
// composed checker can be constructed once and invoked concurrently.
type Checker interface {
	// Check validates value. name identifies the state property being checked
	// and appears in the failure message; ctx optionally enriches the message
	// with component names and may be nil.
	Check(value any, name string, ctx Context) error

	// check is the recursive form carrying the nesting depth. Keeping it
	// unexported closes the set of checker kinds.
	check(value any, name string, ctx Context, depth int) error
}

// Ready-made checkers for the primitive type tags. Any accepts every value,
// including nil. The rest succeed exactly when TagOf reports the matching tag,
// which means Object rejects arrays and none of them accept nil.
var (
	Any    Checker = anyChecker{}
	Array  Checker = primitiveChecker{tag: TagArray}
	Bool   Checker = primitiveChecker{tag: TagBool}
	Func   Checker = primitiveChecker{tag: TagFunc}
	Number Checker = primitiveChecker{tag: TagNumber}
	Object Checker = primitiveChecker{tag: TagObject}
	String Checker = primitiveChecker{tag: TagString}
)

type anyChecker struct{}

func (anyChecker) Check(value any, name string, ctx Context) error {
	return nil
}

func (anyChecker) check(value any, name string, ctx Context, depth int) error {
	return nil
}

type primitiveChecker struct {
	tag Tag
}

func (c primitiveChecker) Check(value any, name string, ctx Context) error {
	return c.check(value, name, ctx, 0)
}

func (c primitiveChecker) check(value any, name string, ctx Context, depth int) error {
	if TagOf(value) != c.tag {
		return newValidationError(fmt.Sprintf("Expected type '%s'", c.tag), name, ctx)
	}
	return nil
}

// invalidConfigChecker stands in for a combinator built from malformed
// configuration. Construction always succeeds; the error surfaces on the
// first invocation.
type invalidConfigChecker struct {
	detail string
}

func (c invalidConfigChecker) Check(value any, name string, ctx Context) error {
	return c.check(value, name, ctx, 0)
}

func (c invalidConfigChecker) check(value any, name string, ctx Context, depth int) error {
	return newValidationError(c.detail, name, ctx)
}
