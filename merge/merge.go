package merge

// Maps merges objects into a fresh map. Inputs are never modified and the
// result shares no map or slice with them, so later edits to the result
// cannot leak back into a fragment.
func Maps(objects ...map[string]any) map[string]any {
	out := make(map[string]any)

	for _, obj := range objects {
		for key, incoming := range obj {
			existing, ok := out[key]
			if !ok {
				out[key] = Clone(incoming)
				continue
			}
			out[key] = Value(existing, incoming)
		}
	}

	return out
}

// Value merges a single pair of values using the same rules as Maps and
// returns a fresh result.
func Value(existing, incoming any) any {
	switch dst := existing.(type) {
	case []any:
		if src, ok := incoming.([]any); ok {
			joined := make([]any, 0, len(dst)+len(src))
			for _, v := range dst {
				joined = append(joined, Clone(v))
			}
			for _, v := range src {
				joined = append(joined, Clone(v))
			}
			return joined
		}
	case map[string]any:
		if src, ok := incoming.(map[string]any); ok && src != nil && dst != nil {
			return Maps(dst, src)
		}
	}

	return Clone(incoming)
}

// Clone returns a deep copy of v. Only map[string]any and []any are copied;
// every other value is returned as is.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if val == nil {
			return val
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Clone(item)
		}
		return out
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Clone(item)
		}
		return out
	default:
		return v
	}
}
