package validators

import (
	"fmt"
	"reflect"
)

// ArrayOf builds a checker that accepts slices and arrays whose every element
// passes elem. Empty sequences pass trivially. Element failures are reported
// as a single aggregate message, never per element.
func ArrayOf(elem Checker) Checker {
	if elem == nil {
		return invalidConfigChecker{detail: "Expected an array of single type"}
	}
	return arrayOfChecker{elem: elem}
}

type arrayOfChecker struct {
	elem Checker
}

func (c arrayOfChecker) Check(value any, name string, ctx Context) error {
	return c.check(value, name, ctx, 0)
}

func (c arrayOfChecker) check(value any, name string, ctx Context, depth int) error {
	if depth >= maxDepth {
		return newValidationError(depthDetail, name, ctx)
	}
	if TagOf(value) != TagArray {
		return newValidationError("Expected an array.", name, ctx)
	}

	rv := indirect(reflect.ValueOf(value))
	for i := 0; i < rv.Len(); i++ {
		// Context only enriches the outermost call; element checks run bare.
		if err := c.elem.check(rv.Index(i).Interface(), name, nil, depth+1); err != nil {
			return newValidationError("Expected an array of single type", name, ctx)
		}
	}
	return nil
}

// ObjectOf builds a checker that applies value to every entry of the checked
// object: map values for maps, exported field values for structs. An empty
// object passes trivially, as does any value with no entries to iterate.
func ObjectOf(value Checker) Checker {
	if value == nil {
		return invalidConfigChecker{detail: "Expected object of one type"}
	}
	return objectOfChecker{value: value}
}

type objectOfChecker struct {
	value Checker
}

func (c objectOfChecker) Check(value any, name string, ctx Context) error {
	return c.check(value, name, ctx, 0)
}

func (c objectOfChecker) check(value any, name string, ctx Context, depth int) error {
	if depth >= maxDepth {
		return newValidationError(depthDetail, name, ctx)
	}

	for _, entry := range entries(value) {
		if err := c.value.check(entry, "", nil, depth+1); err != nil {
			return newValidationError("Expected object of one type", name, ctx)
		}
	}
	return nil
}

// OneOfType builds a checker that accepts a value passing any checker in
// types, tried in order. The empty list accepts nothing.
func OneOfType(types []Checker) Checker {
	return oneOfTypeChecker{types: types}
}

type oneOfTypeChecker struct {
	types []Checker
}

func (c oneOfTypeChecker) Check(value any, name string, ctx Context) error {
	return c.check(value, name, ctx, 0)
}

func (c oneOfTypeChecker) check(value any, name string, ctx Context, depth int) error {
	if depth >= maxDepth {
		return newValidationError(depthDetail, name, ctx)
	}

	for _, t := range c.types {
		if t == nil {
			continue
		}
		if err := t.check(value, name, nil, depth+1); err == nil {
			return nil
		}
	}
	return newValidationError("Expected one of given types.", name, ctx)
}

// InstanceOf builds a checker for a nominal type relationship. target is
// either a reflect.Type or a sample value whose dynamic type becomes the
// target. Interface targets match any value implementing them; concrete
// targets match by type identity, with pointers followed on both sides.
func InstanceOf(target any) Checker {
	t, ok := target.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(target)
	}
	return instanceOfChecker{target: t}
}

type instanceOfChecker struct {
	target reflect.Type
}

func (c instanceOfChecker) Check(value any, name string, ctx Context) error {
	return c.check(value, name, ctx, 0)
}

func (c instanceOfChecker) check(value any, name string, ctx Context, depth int) error {
	if c.isInstance(reflect.TypeOf(value)) {
		return nil
	}
	return newValidationError(fmt.Sprintf("Expected instance of %s", c.target), name, ctx)
}

func (c instanceOfChecker) isInstance(vt reflect.Type) bool {
	if c.target == nil || vt == nil {
		return false
	}
	if c.target.Kind() == reflect.Interface {
		return vt.Implements(c.target) || reflect.PointerTo(vt).Implements(c.target)
	}
	return baseType(vt) == baseType(c.target)
}

// ShapeOf builds a checker validating the checked value against a structural
// shape: every key in fields must hold a value passing its checker. A key
// absent from the value is checked as nil, which every primitive except Any
// rejects, so shape keys are implicitly required. Shape failures are reported
// as a single aggregate message, never per key.
func ShapeOf(fields map[string]Checker) Checker {
	for _, fc := range fields {
		if fc == nil {
			return invalidConfigChecker{detail: "Expected an object"}
		}
	}
	return shapeOfChecker{fields: fields}
}

type shapeOfChecker struct {
	fields map[string]Checker
}

func (c shapeOfChecker) Check(value any, name string, ctx Context) error {
	return c.check(value, name, ctx, 0)
}

func (c shapeOfChecker) check(value any, name string, ctx Context, depth int) error {
	if depth >= maxDepth {
		return newValidationError(depthDetail, name, ctx)
	}

	for key, fc := range c.fields {
		if err := fc.check(field(value, key), "", nil, depth+1); err != nil {
			return newValidationError("Expected object with a specific shape", name, ctx)
		}
	}
	return nil
}

// baseType strips pointer indirections from a type.
func baseType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// entries lists the own values of an object: map values for maps with any key
// type, exported field values for structs. Non-object values have no entries.
func entries(value any) []any {
	rv := indirect(reflect.ValueOf(value))
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		rt := rv.Type()
		out := make([]any, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			if !rt.Field(i).IsExported() {
				continue
			}
			out = append(out, rv.Field(i).Interface())
		}
		return out
	default:
		return nil
	}
}

// field fetches a named entry from an object, or nil when the value is not an
// object or has no such entry. String-keyed maps are indexed by key; structs
// are looked up by exported field name.
func field(value any, key string) any {
	rv := indirect(reflect.ValueOf(value))
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		entry := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !entry.IsValid() {
			return nil
		}
		return entry.Interface()
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return nil
		}
		return rv.FieldByIndex(f.Index).Interface()
	default:
		return nil
	}
}
