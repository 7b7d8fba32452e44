package apigw

import (
	"fmt"
	"slices"
	"strings"
)

// Resource is a node of the API tree, identified by its path part. A part
// of the form {name} matches any single segment and {name+} matches the
// remainder of the path.
type Resource struct {
	api      *RestAPI
	parent   *Resource
	part     string
	path     string
	children map[string]*Resource
	variable *Resource
	methods  map[string]*Method
}

func newResource(api *RestAPI, parent *Resource, part string) *Resource {
	path := "/"
	if parent != nil {
		path = strings.TrimSuffix(parent.path, "/") + "/" + part
	}

	return &Resource{
		api:      api,
		parent:   parent,
		part:     part,
		path:     path,
		children: make(map[string]*Resource),
		methods:  make(map[string]*Method),
	}
}

// PathPart returns the part of this resource, empty for the root.
func (r *Resource) PathPart() string {
	return r.part
}

// Path returns the full URL template of the resource, e.g. "/users/{id}".
func (r *Resource) Path() string {
	return r.path
}

// Parent returns the parent resource, nil for the root.
func (r *Resource) Parent() *Resource {
	return r.parent
}

// GetResource returns the child with the given path part, or nil.
func (r *Resource) GetResource(part string) *Resource {
	return r.children[part]
}

// Children returns the child resources sorted by path part.
func (r *Resource) Children() []*Resource {
	out := make([]*Resource, 0, len(r.children))
	for _, child := range r.children {
		out = append(out, child)
	}
	slices.SortFunc(out, func(a, b *Resource) int {
		return strings.Compare(a.part, b.part)
	})
	return out
}

// AddResource creates a child resource. Adding an existing part fails with
// ErrResourceExists; a resource holds at most one variable child.
func (r *Resource) AddResource(part string) (*Resource, error) {
	if part == "" || strings.Contains(part, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPathPart, part)
	}

	if _, ok := r.children[part]; ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceExists, r.childPath(part))
	}

	child := newResource(r.api, r, part)

	if _, _, ok := child.variableName(); ok {
		if r.variable != nil {
			return nil, fmt.Errorf("%w: %s has %s", ErrVariableConflict, r.path, r.variable.part)
		}
		r.variable = child
	}

	r.children[part] = child

	if err := r.api.applyDefaultCors(child); err != nil {
		return nil, err
	}

	return child, nil
}

func (r *Resource) childPath(part string) string {
	return strings.TrimSuffix(r.path, "/") + "/" + part
}

// variableName reports whether the resource part is a variable, returning
// its name and whether it is greedy ({name+}).
func (r *Resource) variableName() (name string, greedy bool, ok bool) {
	if len(r.part) < 3 || r.part[0] != '{' || r.part[len(r.part)-1] != '}' {
		return "", false, false
	}

	name = r.part[1 : len(r.part)-1]
	if strings.HasSuffix(name, "+") {
		return strings.TrimSuffix(name, "+"), true, true
	}

	return name, false, true
}

// match resolves the remaining path segments below r. Literal children are
// preferred over the variable child.
func (r *Resource) match(segments []string, vars map[string]string) *Resource {
	if len(segments) == 0 {
		return r
	}

	seg := segments[0]

	if child, ok := r.children[seg]; ok && child != r.variable {
		if found := child.match(segments[1:], vars); found != nil {
			return found
		}
	}

	if r.variable == nil {
		return nil
	}

	name, greedy, _ := r.variable.variableName()
	if greedy {
		vars[name] = strings.Join(segments, "/")
		return r.variable
	}

	if found := r.variable.match(segments[1:], vars); found != nil {
		vars[name] = seg
		return found
	}

	return nil
}

// allowedMethods returns the verbs bound on r, sorted.
func (r *Resource) allowedMethods() []string {
	verbs := make([]string, 0, len(r.methods))
	for verb := range r.methods {
		verbs = append(verbs, verb)
	}
	slices.Sort(verbs)
	return verbs
}
