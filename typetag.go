package validators

import "reflect"

// Tag is the canonical runtime classification of a value. The set of tags is
// closed; values that fall outside it (channels, complex numbers, nil) are
// classified as TagUnknown and never match a primitive checker.
type Tag string

const (
	TagAny     Tag = "any"
	TagArray   Tag = "array"
	TagBool    Tag = "bool"
	TagFunc    Tag = "func"
	TagNumber  Tag = "number"
	TagObject  Tag = "object"
	TagString  Tag = "string"
	TagUnknown Tag = "unknown"
)

// TagOf classifies a value. Slices and arrays classify as TagArray before the
// generic object classification is considered; maps and structs classify as
// TagObject. Pointers are followed to the value they reference. TagOf is total:
// it never fails, nil classifies as TagUnknown.
func TagOf(value any) Tag {
	rv := indirect(reflect.ValueOf(value))
	if !rv.IsValid() {
		return TagUnknown
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Bool:
		return TagBool
	case reflect.Func:
		return TagFunc
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TagNumber
	case reflect.Map, reflect.Struct:
		return TagObject
	case reflect.String:
		return TagString
	default:
		return TagUnknown
	}
}

// indirect follows pointers and interfaces down to the referenced value.
// Returns an invalid reflect.Value for nil inputs and nil pointers.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
