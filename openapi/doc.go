// Package openapi synthesizes an OpenAPI v3.0.0 document from a flat list of
// routes and a map of named component schemas.
//
// See: https://spec.openapis.org/oas/v3.0.0
//
// # Routes
//
// A Route is a URL template, an HTTP method and a set of schema names:
//
//	routes := []openapi.Route{
//	    {Path: "/api/widgets", Method: http.MethodGet, Schema: openapi.SchemaProps{
//	        ResponseSchema:      "Widget",
//	        ResponseTypeIsArray: true,
//	    }},
//	    {Path: "/api/widgets", Method: http.MethodPost, Schema: openapi.SchemaProps{
//	        RequestBodySchema: "WidgetInput",
//	        ResponseSchema:    "Widget",
//	    }},
//	}
//
// Schema names are keys of the schema map; they are rendered as
// "#/components/schemas/<name>" references, never inlined.
//
// # Fragments
//
// BuildPathItem turns one route into a fragment:
//
//	{"/widgets/{id}": {"get": {"parameters": [...], "responses": {"200": {...}}}}}
//
// Each {name} placeholder becomes a required string path parameter. The 200
// response references the response schema, wrapped in an array schema when
// ResponseTypeIsArray is set, or falls back to an empty object schema. GET
// operations never carry a request body. QueryStringSchema is accepted but
// not rendered.
//
// # Generating
//
//	gen := openapi.NewGenerator(openapi.Config{})
//	doc, err := gen.Generate(routes, schemas) // writes ./openapi.json
//
// Assemble drops OPTIONS routes, strips the "/api" routing prefix segment and
// deep-merges the fragments, so GET and POST on the same path end up in one
// path item. The schema map becomes components.schemas unchanged.
//
// Unknown schema names are not reported by default and produce dangling
// references. Set Config.Strict to fail with ErrUnknownSchema instead, or
// run Verify on the written document to check it with kin-openapi.
//
// Generate performs a single write and does not lock the output file. When
// two generators target the same path the last writer wins.
package openapi
