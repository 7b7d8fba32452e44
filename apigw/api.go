package apigw

import (
	"errors"
	"net/http"

	"github.com/vitalvas/apispec/openapi"
)

var (
	// ErrResourceExists is returned when a resource already has a child with
	// the requested path part.
	ErrResourceExists = errors.New("resource already exists")

	// ErrVariableConflict is returned when a resource already has a variable
	// child ({name}) and another one with a different name is added.
	ErrVariableConflict = errors.New("resource already has a variable path part")

	// ErrInvalidPathPart is returned for empty path parts or parts that
	// contain a slash.
	ErrInvalidPathPart = errors.New("invalid path part")

	// ErrMethodExists is returned when a resource already has a method for
	// the requested HTTP verb.
	ErrMethodExists = errors.New("method already exists")

	// ErrInvalidMethod is returned for HTTP verbs that cannot be bound.
	ErrInvalidMethod = errors.New("invalid http method")

	// ErrNoHandler is returned when a method is added without a handler.
	ErrNoHandler = errors.New("method handler is required")
)

// Config configures a RestAPI.
type Config struct {
	// Name identifies the API. It is informational only.
	Name string

	// DefaultCorsPreflight, when set, adds an OPTIONS preflight method to
	// the root and to every resource created afterwards.
	DefaultCorsPreflight *CorsOptions

	// RequestIDHeader overrides the header used to return the request id.
	// Defaults to "X-Request-ID".
	RequestIDHeader string

	// PanicFunc is an optional callback invoked with the request and the
	// recovered value when a handler panics. The client receives 500.
	PanicFunc func(r *http.Request, err any)
}

// requestIDHeader returns the configured request id header.
func (cfg Config) requestIDHeader() string {
	if cfg.RequestIDHeader == "" {
		return "X-Request-ID"
	}
	return cfg.RequestIDHeader
}

// RestAPI is a tree of resources rooted at "/" whose methods bind HTTP verbs
// to handlers. It implements http.Handler for local invocation.
type RestAPI struct {
	cfg     Config
	root    *Resource
	methods []*Method
	apiKeys map[string]struct{}
}

// NewRestAPI creates an API with an empty root resource.
func NewRestAPI(cfg Config) (*RestAPI, error) {
	if cfg.DefaultCorsPreflight != nil {
		if err := cfg.DefaultCorsPreflight.validate(); err != nil {
			return nil, err
		}
	}

	api := &RestAPI{
		cfg:     cfg,
		apiKeys: make(map[string]struct{}),
	}
	api.root = newResource(api, nil, "")

	if err := api.applyDefaultCors(api.root); err != nil {
		return nil, err
	}

	return api, nil
}

// Name returns the configured API name.
func (a *RestAPI) Name() string {
	return a.cfg.Name
}

// Root returns the root resource ("/").
func (a *RestAPI) Root() *Resource {
	return a.root
}

// Methods returns every method of the API in registration order.
func (a *RestAPI) Methods() []*Method {
	out := make([]*Method, len(a.methods))
	copy(out, a.methods)
	return out
}

// Routes describes every method as an openapi.Route, in registration order.
// Preflight OPTIONS methods are included; the generator drops them.
func (a *RestAPI) Routes() []openapi.Route {
	routes := make([]openapi.Route, 0, len(a.methods))
	for _, m := range a.methods {
		routes = append(routes, m.Route())
	}
	return routes
}

// AddAPIKey registers a key accepted by methods that require an API key.
func (a *RestAPI) AddAPIKey(key string) {
	if key != "" {
		a.apiKeys[key] = struct{}{}
	}
}

func (a *RestAPI) validAPIKey(key string) bool {
	if key == "" {
		return false
	}
	_, ok := a.apiKeys[key]
	return ok
}

// applyDefaultCors adds the default preflight method to res, if configured.
func (a *RestAPI) applyDefaultCors(res *Resource) error {
	if a.cfg.DefaultCorsPreflight == nil {
		return nil
	}
	_, err := res.AddCorsPreflight(*a.cfg.DefaultCorsPreflight)
	return err
}
