package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// schemaFields has the layout of Schema without its marshalling methods.
type schemaFields Schema

// schemaKeys holds the YAML keys declared by Schema.
var schemaKeys = declaredKeys(reflect.TypeOf(schemaFields{}))

func declaredKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}

func isExtension(key string) bool {
	return strings.HasPrefix(key, "x-")
}

// marshalJSON encodes v without escaping HTML characters.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalJSON writes the declared keywords followed by Extensions.
func (s Schema) MarshalJSON() ([]byte, error) {
	data, err := marshalJSON(schemaFields(s))
	if err != nil || len(s.Extensions) == 0 {
		return data, err
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	for key, val := range s.Extensions {
		obj[key] = val
	}

	return marshalJSON(obj)
}

// UnmarshalJSON reads the declared keywords and collects "x-" keys into
// Extensions.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var fields schemaFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, msg := range raw {
		if !isExtension(key) {
			continue
		}

		var val any
		if err := json.Unmarshal(msg, &val); err != nil {
			return fmt.Errorf("schema extension %s: %w", key, err)
		}

		if fields.Extensions == nil {
			fields.Extensions = make(map[string]any)
		}
		fields.Extensions[key] = val
	}

	*s = Schema(fields)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (s Schema) MarshalYAML() (any, error) {
	if len(s.Extensions) == 0 {
		return schemaFields(s), nil
	}

	data, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	return obj, nil
}

// UnmarshalYAML decodes a schema mapping. Keys that are neither Schema
// Object keywords nor "x-" extensions are rejected.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: schema must be a mapping", node.Line)
	}

	declared := &yaml.Node{
		Kind:   yaml.MappingNode,
		Tag:    node.Tag,
		Line:   node.Line,
		Column: node.Column,
	}

	var extensions map[string]any

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		switch {
		case isExtension(key.Value):
			var v any
			if err := val.Decode(&v); err != nil {
				return err
			}
			if extensions == nil {
				extensions = make(map[string]any)
			}
			extensions[key.Value] = v
		case schemaKeys[key.Value]:
			declared.Content = append(declared.Content, key, val)
		default:
			return fmt.Errorf("line %d: field %s is not a schema keyword", key.Line, key.Value)
		}
	}

	var fields schemaFields
	if err := declared.Decode(&fields); err != nil {
		return err
	}
	fields.Extensions = extensions

	*s = Schema(fields)
	return nil
}

// AdditionalProperties is the value of the additionalProperties keyword:
// either a boolean or a schema. A nil *AdditionalProperties omits the
// keyword.
type AdditionalProperties struct {
	Allowed *bool
	Schema  *Schema
}

// AdditionalPropertiesAllowed returns the boolean form of the keyword.
func AdditionalPropertiesAllowed(allowed bool) *AdditionalProperties {
	return &AdditionalProperties{Allowed: &allowed}
}

// AdditionalPropertiesSchema returns the schema form of the keyword.
func AdditionalPropertiesSchema(schema *Schema) *AdditionalProperties {
	return &AdditionalProperties{Schema: schema}
}

// MarshalJSON writes the schema when set, otherwise the boolean. An empty
// value is written as true.
func (a AdditionalProperties) MarshalJSON() ([]byte, error) {
	if a.Schema != nil {
		return marshalJSON(a.Schema)
	}
	if a.Allowed != nil && !*a.Allowed {
		return []byte("false"), nil
	}
	return []byte("true"), nil
}

func (a *AdditionalProperties) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*a = *AdditionalPropertiesAllowed(true)
		return nil
	case "false":
		*a = *AdditionalPropertiesAllowed(false)
		return nil
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return err
	}

	*a = AdditionalProperties{Schema: &schema}
	return nil
}

func (a AdditionalProperties) MarshalYAML() (any, error) {
	if a.Schema != nil {
		return a.Schema, nil
	}
	return a.Allowed == nil || *a.Allowed, nil
}

func (a *AdditionalProperties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool" {
		var allowed bool
		if err := node.Decode(&allowed); err != nil {
			return err
		}
		*a = *AdditionalPropertiesAllowed(allowed)
		return nil
	}

	var schema Schema
	if err := node.Decode(&schema); err != nil {
		return err
	}

	*a = AdditionalProperties{Schema: &schema}
	return nil
}
