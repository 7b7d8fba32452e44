// Package merge provides a generic recursive merge of decoded JSON-like
// structures: map[string]any objects and []any arrays.
//
// Values are combined key by key, left to right:
//
//   - two arrays are concatenated, existing elements first, duplicates kept;
//   - two objects are merged recursively;
//   - anything else is replaced by the incoming value.
//
// The package knows nothing about OpenAPI. It is used to fold single-route
// path fragments into one paths object:
//
//	paths := merge.Maps(
//	    map[string]any{"/x": map[string]any{"get": getOp}},
//	    map[string]any{"/x": map[string]any{"post": postOp}},
//	)
//	// paths["/x"] holds both "get" and "post".
//
// Only map[string]any and []any are treated as containers. Other map or
// slice types (for example []string) are opaque values and are replaced,
// not merged.
package merge
