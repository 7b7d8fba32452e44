package openapi

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a declarative description of routes and schemas, used by the
// apispec command to generate a document without a route table.
//
//	info:
//	  title: Widgets
//	  version: 2.0.0
//	prefix: /api
//	routes:
//	  - path: /api/widgets
//	    method: GET
//	    responseSchema: Widget
//	    responseTypeIsArray: true
//	schemas:
//	  Widget:
//	    type: object
type Manifest struct {
	Info    Info               `yaml:"info"`
	Prefix  string             `yaml:"prefix"`
	Routes  []Route            `yaml:"routes"`
	Schemas map[string]*Schema `yaml:"schemas"`
}

// LoadManifest decodes a YAML (or JSON) manifest. Unknown keys are rejected
// so that misspelled schema fields are not silently dropped.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("openapi: manifest is empty")
		}
		return nil, fmt.Errorf("openapi: decode manifest: %w", err)
	}

	for i, route := range m.Routes {
		if route.Path == "" || route.Method == "" {
			return nil, fmt.Errorf("openapi: manifest route %d: path and method are required", i)
		}
	}

	return &m, nil
}

// LoadManifestFile reads the manifest stored at path.
func LoadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: open manifest: %w", err)
	}
	defer f.Close()

	return LoadManifest(f)
}

// Config returns a generator configuration seeded from the manifest.
func (m *Manifest) Config() Config {
	return Config{
		Info:       m.Info,
		PathPrefix: m.Prefix,
	}
}
