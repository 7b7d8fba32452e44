package openapi

// Version is the OpenAPI Specification version emitted by the generator.
const Version = "3.0.0"

// Document represents the root of an OpenAPI v3.0.0 document as produced by
// the generator. Paths holds the merged path fragments.
//
// See: https://spec.openapis.org/oas/v3.0.0#openapi-object
type Document struct {
	OpenAPI    string         `json:"openapi" yaml:"openapi"`
	Info       Info           `json:"info" yaml:"info"`
	Paths      map[string]any `json:"paths" yaml:"paths"`
	Components Components     `json:"components" yaml:"components"`
}

// Info provides metadata about the API.
//
// See: https://spec.openapis.org/oas/v3.0.0#info-object
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
	Version        string   `json:"version" yaml:"version"`
}

// Contact represents contact information for the API.
//
// See: https://spec.openapis.org/oas/v3.0.0#contact-object
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License represents license information for the API.
//
// See: https://spec.openapis.org/oas/v3.0.0#license-object
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Components holds the reusable schemas referenced from path fragments.
//
// See: https://spec.openapis.org/oas/v3.0.0#components-object
type Components struct {
	Schemas map[string]*Schema `json:"schemas" yaml:"schemas"`
}

// Schema represents an OpenAPI v3.0.0 Schema Object. The generator treats
// schemas as opaque: they are copied into components.schemas as supplied.
// Specification extensions ("x-" keys) are kept in Extensions and written
// inline next to the declared keywords.
//
// See: https://spec.openapis.org/oas/v3.0.0#schema-object
type Schema struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`
	Example     any    `json:"example,omitempty" yaml:"example,omitempty"`
	Nullable    bool   `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	WriteOnly   bool   `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`

	// Numeric constraints. In 3.0 exclusive bounds are booleans that modify
	// minimum and maximum.
	MultipleOf       *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`

	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	Items       *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems    *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`

	Properties           map[string]*Schema    `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties *AdditionalProperties `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	Required             []string              `json:"required,omitempty" yaml:"required,omitempty"`
	MinProperties        *int                  `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	MaxProperties        *int                  `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`

	Enum []any `json:"enum,omitempty" yaml:"enum,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	Not   *Schema   `json:"not,omitempty" yaml:"not,omitempty"`

	Discriminator *Discriminator `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	XML           *XML           `json:"xml,omitempty" yaml:"xml,omitempty"`
	ExternalDocs  *ExternalDocs  `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`

	Extensions map[string]any `json:"-" yaml:"-"`
}

// Discriminator aids in serialization, deserialization, and validation
// when payloads may be one of several schemas.
//
// See: https://spec.openapis.org/oas/v3.0.0#discriminator-object
type Discriminator struct {
	PropertyName string            `json:"propertyName" yaml:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
}

// XML adjusts the XML representation of a property.
//
// See: https://spec.openapis.org/oas/v3.0.0#xml-object
type XML struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty" yaml:"wrapped,omitempty"`
}

// ExternalDocs allows referencing external documentation.
//
// See: https://spec.openapis.org/oas/v3.0.0#external-documentation-object
type ExternalDocs struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
}

// SchemaProps names the component schemas attached to a route. Every field
// holds a key of the schema map, never an inline schema. An empty string
// means the schema is not set.
type SchemaProps struct {
	RequestBodySchema   string `json:"requestBodySchema,omitempty" yaml:"requestBodySchema,omitempty"`
	ResponseSchema      string `json:"responseSchema,omitempty" yaml:"responseSchema,omitempty"`
	ResponseTypeIsArray bool   `json:"responseTypeIsArray,omitempty" yaml:"responseTypeIsArray,omitempty"`

	// QueryStringSchema is recorded but not rendered into path fragments.
	QueryStringSchema string `json:"queryStringSchema,omitempty" yaml:"queryStringSchema,omitempty"`
}

// Route describes one registered endpoint: its URL template, HTTP method and
// schema references.
type Route struct {
	Path   string      `json:"path" yaml:"path"`
	Method string      `json:"method" yaml:"method"`
	Schema SchemaProps `json:"schema" yaml:",inline"`
}

// Fragment is a single-route slice of an OpenAPI paths object:
// {url: {method: {parameters, requestBody, responses}}}.
type Fragment map[string]any
