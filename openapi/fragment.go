package openapi

import (
	"net/http"
	"strings"
)

const (
	jsonContentType     = "application/json"
	schemaRefPrefix     = "#/components/schemas/"
	successDescription  = "Successful response"
	successResponseCode = "200"
)

// SchemaRef returns the components reference for the named schema.
func SchemaRef(name string) string {
	return schemaRefPrefix + name
}

// BuildPathItem builds the fragment for a single route.
//
// Every placeholder of url becomes a required string path parameter. The
// 200 response uses the named response schema, wrapped in an array when
// ResponseTypeIsArray is set, or an empty object schema when no response
// schema is named. A request body is attached only when a request body
// schema is named and the method is not GET. QueryStringSchema is ignored.
func BuildPathItem(url, method string, props SchemaProps) Fragment {
	op := make(map[string]any, 3)

	if params := pathParameters(url); len(params) > 0 {
		op["parameters"] = params
	}

	if props.RequestBodySchema != "" && !strings.EqualFold(method, http.MethodGet) {
		op["requestBody"] = map[string]any{
			"content": jsonContent(refSchema(props.RequestBodySchema)),
		}
	}

	op["responses"] = map[string]any{
		successResponseCode: map[string]any{
			"description": successDescription,
			"content":     jsonContent(responseSchema(props)),
		},
	}

	return Fragment{
		url: map[string]any{
			strings.ToLower(method): op,
		},
	}
}

// pathParameters converts URL placeholders into path parameter objects.
func pathParameters(url string) []any {
	names := ExtractPathParameters(url)
	if len(names) == 0 {
		return nil
	}

	params := make([]any, 0, len(names))
	for _, name := range names {
		params = append(params, map[string]any{
			"name":        name,
			"in":          "path",
			"description": "URL param for " + name,
			"required":    true,
			"schema":      map[string]any{"type": "string"},
		})
	}

	return params
}

// responseSchema resolves the schema of the 200 response.
func responseSchema(props SchemaProps) map[string]any {
	if props.ResponseSchema == "" {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}

	if props.ResponseTypeIsArray {
		return map[string]any{
			"type":  "array",
			"items": refSchema(props.ResponseSchema),
		}
	}

	return refSchema(props.ResponseSchema)
}

func refSchema(name string) map[string]any {
	return map[string]any{"$ref": SchemaRef(name)}
}

func jsonContent(schema map[string]any) map[string]any {
	return map[string]any{
		jsonContentType: map[string]any{"schema": schema},
	}
}
