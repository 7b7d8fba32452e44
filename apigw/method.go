package apigw

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vitalvas/apispec/openapi"
)

// supportedMethods lists the verbs a resource method can bind.
var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

// Authorizer decides whether a request may reach a method handler. A
// non-nil error rejects the request with 401 Unauthorized.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(r *http.Request) error

// Authorize calls f(r).
func (f AuthorizerFunc) Authorize(r *http.Request) error {
	return f(r)
}

// MethodOptions configures access control and schema metadata of a method.
type MethodOptions struct {
	// Authorizer guards the method. Ignored when APIKeyRequired is set.
	Authorizer Authorizer

	// APIKeyRequired requires a registered key in the x-api-key header.
	APIKeyRequired bool

	// Schema names the component schemas used when documenting the method.
	Schema openapi.SchemaProps
}

// Method binds an HTTP verb of a resource to a handler.
type Method struct {
	resource *Resource
	verb     string
	handler  http.Handler
	opts     MethodOptions
}

// AddMethod binds verb on the resource to handler. The verb is matched
// case-insensitively and stored upper case.
func (r *Resource) AddMethod(verb string, handler http.Handler, opts MethodOptions) (*Method, error) {
	verb = strings.ToUpper(verb)
	if _, ok := supportedMethods[verb]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, verb)
	}

	if handler == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNoHandler, verb, r.path)
	}

	if _, ok := r.methods[verb]; ok {
		return nil, fmt.Errorf("%w: %s %s", ErrMethodExists, verb, r.path)
	}

	if opts.APIKeyRequired {
		opts.Authorizer = nil
	}

	m := &Method{
		resource: r,
		verb:     verb,
		handler:  handler,
		opts:     opts,
	}

	r.methods[verb] = m
	r.api.methods = append(r.api.methods, m)

	return m, nil
}

// GetMethod returns the method bound to verb, or nil.
func (r *Resource) GetMethod(verb string) *Method {
	return r.methods[strings.ToUpper(verb)]
}

// HTTPMethod returns the upper-case verb.
func (m *Method) HTTPMethod() string {
	return m.verb
}

// Resource returns the resource the method belongs to.
func (m *Method) Resource() *Resource {
	return m.resource
}

// Path returns the URL template of the method's resource.
func (m *Method) Path() string {
	return m.resource.path
}

// APIKeyRequired reports whether the method requires an API key.
func (m *Method) APIKeyRequired() bool {
	return m.opts.APIKeyRequired
}

// Authorizer returns the authorizer guarding the method, if any.
func (m *Method) Authorizer() Authorizer {
	return m.opts.Authorizer
}

// Schema returns the schema metadata attached to the method.
func (m *Method) Schema() openapi.SchemaProps {
	return m.opts.Schema
}

// SetSchema replaces the schema metadata attached to the method.
func (m *Method) SetSchema(props openapi.SchemaProps) {
	m.opts.Schema = props
}

// Route describes the method for document generation.
func (m *Method) Route() openapi.Route {
	return openapi.Route{
		Path:   m.resource.path,
		Method: m.verb,
		Schema: m.opts.Schema,
	}
}
