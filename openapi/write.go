package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodeJSON returns the document as JSON indented with two spaces.
// HTML characters are not escaped, so descriptions keep "<", ">" and "&".
func (d *Document) EncodeJSON() ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("openapi: encode json: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeYAML returns the document as YAML. The JSON encoding is converted
// node by node so that YAML keys keep the JSON names and order.
func (d *Document) EncodeYAML() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode json: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("openapi: convert to yaml: %w", err)
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("openapi: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("openapi: encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles inherited from JSON so the
// output reads as block YAML. Strings that would otherwise resolve to
// another type are still quoted by the encoder.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}

// WriteFile writes doc to path, replacing any existing file. Paths ending in
// ".yaml" or ".yml" are written as YAML, everything else as JSON.
func WriteFile(path string, doc *Document) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = doc.EncodeYAML()
	default:
		data, err = doc.EncodeJSON()
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("openapi: write %s: %w", path, err)
	}

	return nil
}
