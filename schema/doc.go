// Package schema compiles YAML type descriptors into checkers, so state
// shapes can be declared in documents instead of code.
//
// A descriptor is either a scalar primitive name ("string", "number", ...) or
// a mapping selecting a combinator:
//
//	type: shapeOf
//	fields:
//	  id: number
//	  tags:
//	    type: arrayOf
//	    elem: string
//	  payload:
//	    type: oneOfType
//	    oneOf: [string, number]
//
// Compilation happens once, at declaration time; the resulting checker is the
// same immutable value a hand-written composition would produce. Authoring
// mistakes (unknown type names, missing combinator configuration) fail
// compilation with a descriptive error rather than producing a checker that
// fails at runtime. instanceOf has no document form, since a document cannot
// reference a runtime type.
package schema
