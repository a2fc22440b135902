package object

// DeepCopy performs a deep copy of an Object. Nested Objects and []any
// slices are copied recursively; all other values (including Func values)
// are copied by reference.
func DeepCopy(src Object) Object {
	if src == nil {
		return nil
	}

	dst := make(Object, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case Object:
			dst[k] = DeepCopy(val)
		case []any:
			dst[k] = DeepCopySlice(val)
		default:
			dst[k] = v
		}
	}

	return dst
}

// DeepCopySlice performs a deep copy of a []any.
func DeepCopySlice(src []any) []any {
	if src == nil {
		return nil
	}

	dst := make([]any, len(src))

	for i, v := range src {
		switch val := v.(type) {
		case Object:
			dst[i] = DeepCopy(val)
		case []any:
			dst[i] = DeepCopySlice(val)
		default:
			dst[i] = v
		}
	}

	return dst
}
