package apigw

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vitalvas/apispec/openapi"
)

// RouteProps describes a route registered through a Registry.
type RouteProps struct {
	// URL is the route template, e.g. "/api/users/{id}".
	URL string

	// Method is the HTTP verb.
	Method string

	// Handler is the compute handler bound to the route.
	Handler http.Handler

	// Authorizer guards the route unless APIKeyRequired is set.
	Authorizer Authorizer

	// APIKeyRequired requires a registered API key.
	APIKeyRequired bool

	// Schema names the component schemas documenting the route.
	Schema *openapi.SchemaProps
}

// node caches a resource and its children by URL segment.
type node struct {
	resource *Resource
	children map[string]*node
}

// Registry is a route registration session over a RestAPI. It keeps the
// resources it resolved keyed by URL segment, so routes sharing a prefix
// reuse the same resources instead of creating them twice.
type Registry struct {
	api  *RestAPI
	tree *node
}

// NewRegistry starts a registration session for api.
func NewRegistry(api *RestAPI) *Registry {
	return &Registry{
		api:  api,
		tree: &node{resource: api.Root(), children: make(map[string]*node)},
	}
}

// API returns the API routes are registered on.
func (g *Registry) API() *RestAPI {
	return g.api
}

// ResourceByURL returns the resource for url, creating missing resources
// along the way. Empty segments are ignored, so "/a//b/" resolves to "/a/b".
// Resources created outside the registry are reused.
func (g *Registry) ResourceByURL(url string) (*Resource, error) {
	current := g.tree

	for _, segment := range strings.Split(url, "/") {
		if segment == "" {
			continue
		}

		if next, ok := current.children[segment]; ok {
			current = next
			continue
		}

		res := current.resource.GetResource(segment)
		if res == nil {
			var err error
			res, err = current.resource.AddResource(segment)
			if err != nil {
				return nil, err
			}
		}

		next := &node{resource: res, children: make(map[string]*node)}
		current.children[segment] = next
		current = next
	}

	return current.resource, nil
}

// Route resolves the resource for props.URL and binds the handler to it.
// When APIKeyRequired is set the authorizer is not applied.
func (g *Registry) Route(props RouteProps) (*Method, error) {
	res, err := g.ResourceByURL(props.URL)
	if err != nil {
		return nil, fmt.Errorf("route %s %s: %w", props.Method, props.URL, err)
	}

	opts := MethodOptions{
		Authorizer:     props.Authorizer,
		APIKeyRequired: props.APIKeyRequired,
	}
	if props.Schema != nil {
		opts.Schema = *props.Schema
	}

	m, err := res.AddMethod(props.Method, props.Handler, opts)
	if err != nil {
		return nil, fmt.Errorf("route %s %s: %w", props.Method, props.URL, err)
	}

	return m, nil
}
