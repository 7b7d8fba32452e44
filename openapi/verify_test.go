package openapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("generated document is valid", func(t *testing.T) {
		routes := append(widgetRoutes(),
			Route{Path: "/api/widgets/{id}", Method: http.MethodGet, Schema: SchemaProps{ResponseSchema: "Widget"}},
			Route{Path: "/api/widgets/{id}", Method: http.MethodDelete},
		)
		doc, err := NewGenerator(Config{}).Assemble(routes, widgetSchemas())
		require.NoError(t, err)

		assert.NoError(t, VerifyDocument(ctx, doc))
	})

	t.Run("yaml input", func(t *testing.T) {
		doc, err := NewGenerator(Config{}).Assemble(widgetRoutes(), widgetSchemas())
		require.NoError(t, err)

		data, err := doc.EncodeYAML()
		require.NoError(t, err)
		assert.NoError(t, Verify(ctx, data))
	})

	t.Run("dangling reference is reported", func(t *testing.T) {
		routes := []Route{{Path: "/x", Method: http.MethodGet, Schema: SchemaProps{ResponseSchema: "Missing"}}}
		doc, err := NewGenerator(Config{}).Assemble(routes, nil)
		require.NoError(t, err)

		err = VerifyDocument(ctx, doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("empty payload", func(t *testing.T) {
		assert.ErrorIs(t, Verify(ctx, nil), ErrInvalidDocument)
	})

	t.Run("garbage payload", func(t *testing.T) {
		assert.ErrorIs(t, Verify(ctx, []byte("{not json")), ErrInvalidDocument)
	})
}
