// Package apigw models a REST API as a tree of resources whose methods bind
// HTTP verbs to compute handlers, and documents it with package openapi.
//
// # Registering Routes
//
// A Registry is a registration session. It resolves URL templates to
// resources, creating missing ones once and reusing them for later routes:
//
//	api, err := apigw.NewRestAPI(apigw.Config{Name: "widgets"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := apigw.NewRegistry(api)
//	_, err = reg.Route(apigw.RouteProps{
//	    URL:     "/api/widgets/{id}",
//	    Method:  http.MethodGet,
//	    Handler: http.HandlerFunc(getWidget),
//	    Schema:  &openapi.SchemaProps{ResponseSchema: "Widget"},
//	})
//
// Schema metadata is stored on the Method as a typed openapi.SchemaProps and
// recovered by RestAPI.Routes.
//
// # Documenting
//
//	doc, err := apigw.GenerateOpenAPIFile(api, schemas, openapi.Config{})
//
// writes ./openapi.json. Preflight OPTIONS methods and the "/api" prefix do
// not appear in the document.
//
// # CORS
//
// Config.DefaultCorsPreflight adds a preflight OPTIONS method to every
// resource. Resource.AddCorsPreflight adds one to a single resource.
//
// # Local Dispatch
//
// RestAPI implements http.Handler so handlers can be exercised locally:
//
//	srv := httptest.NewServer(api)
//
// Path variables are available through Vars and VarGet, the request id
// through RequestIDFromContext. Methods that require an API key accept keys
// registered with AddAPIKey in the x-api-key header.
package apigw
