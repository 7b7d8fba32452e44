package openapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/vitalvas/apispec/merge"
)

// ErrUnknownSchema is returned in strict mode when a route references a
// schema name that is missing from the schema map.
var ErrUnknownSchema = errors.New("unknown schema name")

// Config configures document generation. The zero value reproduces the
// default behaviour: info {API, 1.0.0}, "/api" prefix stripping, lenient
// schema references and output to ./openapi.json.
type Config struct {
	// Info overrides the document info. Empty Title and Version fall back to
	// "API" and "1.0.0".
	Info Info

	// PathPrefix is the routing prefix segment removed from every route path
	// (default: "/api"). Set to "-" to keep paths untouched.
	PathPrefix string

	// Strict makes Assemble fail when a route references a schema name that
	// is not present in the schema map.
	Strict bool

	// Output is the file written by Generate (default: "openapi.json" in the
	// working directory). A ".yaml" or ".yml" extension selects YAML.
	Output string

	// Logger receives diagnostics such as skipped routes and dangling schema
	// references. When nil, nothing is logged.
	Logger *slog.Logger
}

// info returns the configured info with defaults applied.
func (cfg Config) info() Info {
	info := cfg.Info
	if info.Title == "" {
		info.Title = "API"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}
	return info
}

// pathPrefix returns the prefix to strip, or "" when stripping is disabled.
func (cfg Config) pathPrefix() string {
	switch cfg.PathPrefix {
	case "":
		return "/api"
	case "-":
		return ""
	default:
		return cfg.PathPrefix
	}
}

// output returns the configured output path, defaulting to ./openapi.json.
func (cfg Config) output() string {
	if cfg.Output == "" {
		return filepath.Join(".", "openapi.json")
	}
	return cfg.Output
}

// Generator turns routes and schemas into an OpenAPI document.
type Generator struct {
	cfg Config
}

// NewGenerator creates a generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Assemble builds the document for routes. OPTIONS routes are skipped and
// the routing prefix is stripped from every path before its fragment is
// built. Fragments sharing a path are merged so that every method survives.
// The schema map is referenced as components.schemas and is not modified.
func (g *Generator) Assemble(routes []Route, schemas map[string]*Schema) (*Document, error) {
	if err := g.checkReferences(routes, schemas); err != nil {
		return nil, err
	}

	prefix := g.cfg.pathPrefix()
	fragments := make([]map[string]any, 0, len(routes))

	for _, route := range routes {
		if strings.EqualFold(route.Method, http.MethodOptions) {
			g.debug("skipping preflight route", "path", route.Path)
			continue
		}

		path := NormalizePath(route.Path, prefix)
		fragments = append(fragments, BuildPathItem(path, route.Method, route.Schema))
	}

	components := Components{Schemas: make(map[string]*Schema, len(schemas))}
	for name, schema := range schemas {
		components.Schemas[name] = schema
	}

	return &Document{
		OpenAPI:    Version,
		Info:       g.cfg.info(),
		Paths:      merge.Maps(fragments...),
		Components: components,
	}, nil
}

// Generate assembles the document and writes it to the configured output.
// Any write failure is returned.
func (g *Generator) Generate(routes []Route, schemas map[string]*Schema) (*Document, error) {
	doc, err := g.Assemble(routes, schemas)
	if err != nil {
		return nil, err
	}

	out := g.cfg.output()
	if err := WriteFile(out, doc); err != nil {
		return nil, err
	}

	g.debug("openapi document written", "path", out, "paths", len(doc.Paths))

	return doc, nil
}

// checkReferences reports schema names that do not exist in schemas. In
// lenient mode dangling names are only logged.
func (g *Generator) checkReferences(routes []Route, schemas map[string]*Schema) error {
	var errs []error

	for _, route := range routes {
		if strings.EqualFold(route.Method, http.MethodOptions) {
			continue
		}

		for _, name := range referencedSchemas(route) {
			if _, ok := schemas[name]; ok {
				continue
			}

			if !g.cfg.Strict {
				if g.cfg.Logger != nil {
					g.cfg.Logger.Warn("dangling schema reference",
						"schema", name, "method", route.Method, "path", route.Path)
				}
				continue
			}

			errs = append(errs, fmt.Errorf("%w %q referenced by %s %s",
				ErrUnknownSchema, name, strings.ToUpper(route.Method), route.Path))
		}
	}

	return errors.Join(errs...)
}

// referencedSchemas lists the non-empty schema names of route. A GET request
// body is never rendered, so its name is not checked.
func referencedSchemas(route Route) []string {
	props := route.Schema

	requestBody := props.RequestBodySchema
	if strings.EqualFold(route.Method, http.MethodGet) {
		requestBody = ""
	}

	var names []string
	for _, name := range []string{requestBody, props.ResponseSchema, props.QueryStringSchema} {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (g *Generator) debug(msg string, args ...any) {
	if g.cfg.Logger != nil {
		g.cfg.Logger.Debug(msg, args...)
	}
}
