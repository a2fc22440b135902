package object

import (
	"reflect"
	"strings"
)

// FromStruct harvests the exported fields of a struct (or pointer to
// struct) into an Object, so plain structs can act as composition sources.
// A `mixo` field tag overrides the property name; "-" skips the field.
// Non-struct values yield nil.
func FromStruct(v any) Object {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	result := make(Object, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			// unexported
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("mixo"); ok {
			head := strings.Split(tag, ",")[0]
			if head == "-" {
				continue
			}

			if head != "" {
				name = head
			}
		}

		result[name] = rv.Field(i).Interface()
	}

	return result
}
