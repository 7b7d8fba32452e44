package apigw

import (
	"github.com/vitalvas/apispec/openapi"
)

// GenerateOpenAPIFile documents every method of api and writes the document
// to cfg.Output (default ./openapi.json).
func GenerateOpenAPIFile(api *RestAPI, schemas map[string]*openapi.Schema, cfg openapi.Config) (*openapi.Document, error) {
	return openapi.NewGenerator(cfg).Generate(api.Routes(), schemas)
}

// BuildDocument documents every method of api without writing a file.
func BuildDocument(api *RestAPI, schemas map[string]*openapi.Schema, cfg openapi.Config) (*openapi.Document, error) {
	return openapi.NewGenerator(cfg).Assemble(api.Routes(), schemas)
}
