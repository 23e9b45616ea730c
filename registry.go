package validators

// Factory builds a checker from a dynamically supplied configuration value.
// Factories never fail at construction time: malformed configuration yields a
// checker whose error surfaces on its first invocation, so a bad declaration
// degrades to a failing check instead of a crash.
type Factory func(config any) Checker

var primitives = map[string]Checker{
	"any":    Any,
	"array":  Array,
	"bool":   Bool,
	"func":   Func,
	"number": Number,
	"object": Object,
	"string": String,
}

var factories = map[string]Factory{
	"arrayOf":    arrayOfFactory,
	"instanceOf": InstanceOf,
	"objectOf":   objectOfFactory,
	"oneOfType":  oneOfTypeFactory,
	"shapeOf":    shapeOfFactory,
}

// Lookup resolves a primitive checker by its registered type name: any,
// array, bool, func, number, object or string.
func Lookup(name string) (Checker, bool) {
	c, ok := primitives[name]
	return c, ok
}

// LookupFactory resolves a combinator factory by its registered name:
// arrayOf, instanceOf, objectOf, oneOfType or shapeOf. The factory must be
// invoked with its configuration argument to obtain a usable checker.
func LookupFactory(name string) (Factory, bool) {
	f, ok := factories[name]
	return f, ok
}

// Names lists every registered type name, primitives and factories alike.
func Names() []string {
	names := make([]string, 0, len(primitives)+len(factories))
	for name := range primitives {
		names = append(names, name)
	}
	for name := range factories {
		names = append(names, name)
	}
	return names
}

func arrayOfFactory(config any) Checker {
	elem, ok := config.(Checker)
	if !ok {
		return invalidConfigChecker{detail: "Expected an array of single type"}
	}
	return ArrayOf(elem)
}

func objectOfFactory(config any) Checker {
	value, ok := config.(Checker)
	if !ok {
		return invalidConfigChecker{detail: "Expected object of one type"}
	}
	return ObjectOf(value)
}

func oneOfTypeFactory(config any) Checker {
	switch list := config.(type) {
	case []Checker:
		return OneOfType(list)
	case []any:
		types := make([]Checker, 0, len(list))
		for _, item := range list {
			c, ok := item.(Checker)
			if !ok {
				return invalidConfigChecker{detail: "Expected an array."}
			}
			types = append(types, c)
		}
		return OneOfType(types)
	default:
		return invalidConfigChecker{detail: "Expected an array."}
	}
}

func shapeOfFactory(config any) Checker {
	fields, ok := config.(map[string]Checker)
	if !ok {
		return invalidConfigChecker{detail: "Expected an object"}
	}
	return ShapeOf(fields)
}
