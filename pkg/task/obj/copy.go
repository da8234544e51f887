package obj

// Pick returns a new map holding only the given keys of src, each entry
// keeping the same value reference (no deep copy). With no keys the result
// is an empty map.
func Pick(src map[string]any, keys ...string) map[string]any {
	if src == nil {
		return nil
	}

	out := make(map[string]any, len(keys))

	for _, k := range keys {
		if v, ok := src[k]; ok {
			out[k] = v
		}
	}

	return out
}

// PickAll applies Pick to each element of src, preserving order.
func PickAll(src []map[string]any, keys ...string) []map[string]any {
	if src == nil {
		return nil
	}

	out := make([]map[string]any, len(src))

	for i, m := range src {
		out[i] = Pick(m, keys...)
	}

	return out
}

// Copy shallow-copies a map, a slice of maps, or a mixed slice, keeping
// only the given keys. Any other value, nil included, passes through
// unchanged.
func Copy(v any, keys ...string) any {
	switch src := v.(type) {
	case map[string]any:
		return Pick(src, keys...)
	case []map[string]any:
		return PickAll(src, keys...)
	case []any:
		out := make([]any, len(src))
		for i, item := range src {
			out[i] = Copy(item, keys...)
		}

		return out
	default:
		return v
	}
}
