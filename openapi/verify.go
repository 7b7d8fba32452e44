package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrInvalidDocument is returned by Verify when a document cannot be loaded
// or fails OpenAPI validation.
var ErrInvalidDocument = errors.New("invalid openapi document")

// Verify loads an encoded document (JSON or YAML) and validates it against
// the OpenAPI 3.0 rules, resolving every local $ref. It reports dangling
// schema references and malformed path items. Schema contents and examples
// are not validated.
func Verify(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: document payload is empty", ErrInvalidDocument)
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("%w: load: %w", ErrInvalidDocument, err)
	}

	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("%w: validate: %w", ErrInvalidDocument, err)
	}

	return nil
}

// VerifyDocument encodes doc as JSON and runs Verify on it.
func VerifyDocument(ctx context.Context, doc *Document) error {
	data, err := doc.EncodeJSON()
	if err != nil {
		return err
	}
	return Verify(ctx, data)
}
