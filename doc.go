// Package validators provides runtime type validation for dynamically-typed
// component state: given a declared type and a value, a checker decides
// whether the value conforms and describes the mismatch when it does not.
//
// The package is built around a small set of primitive checkers (Any, Array,
// Bool, Func, Number, Object, String) and five combinators (ArrayOf,
// InstanceOf, ObjectOf, OneOfType, ShapeOf) that compose new checkers out of
// existing ones. Every checker is an immutable value constructed once,
// typically at declaration time of a state shape, and invoked arbitrarily
// often; there is no hidden global state, so the package is completely
// stateless and goroutine-safe.
//
// # Architecture
//
// Core building blocks:
//   - Checker          – the validation contract: Check(value, name, ctx) error
//   - ValidationError  – the single failure kind, carrying a formatted message
//   - Tag / TagOf      – canonical runtime classification of arbitrary values
//   - Context          – optional diagnostic enrichment supplied by the host
//   - Lookup/LookupFactory – name-based registry over primitives and combinators
//
// Success is a nil error and failure is always a *ValidationError; checkers
// never panic and never return anything else. All failure messages are built
// in one place, giving every checker kind the same message shape.
//
// # Usage
//
//	shape := validators.ShapeOf(map[string]validators.Checker{
//		"title": validators.String,
//		"count": validators.Number,
//		"tags":  validators.ArrayOf(validators.String),
//	})
//
//	err := shape.Check(state, "config", validators.RenderContext{
//		Component: "TodoList",
//		Parent:    "App",
//	})
//	if err != nil {
//		validators.Warn(slog.Default(), err)
//	}
//
// # Error Handling
//
// Failures are returned, never raised. Use errors.As with *ValidationError to
// detect a validation failure while preserving the message. Combinators built
// from malformed configuration (for example a oneOfType whose configuration is
// not a list) construct successfully and fail on first invocation.
//
// # Limits
//
// Checkers recurse through nested values no deeper than an internal limit;
// values nested beyond it, including cyclic structures fed to a cyclic shape,
// fail validation instead of exhausting the stack. The package does not coerce
// values, check numeric ranges, or validate asynchronously.
package validators
