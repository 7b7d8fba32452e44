package apigw

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseJSON(t *testing.T) {
	t.Run("encodes value", func(t *testing.T) {
		w := httptest.NewRecorder()
		ResponseJSON(w, http.StatusCreated, map[string]string{"id": "1"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
	})

	t.Run("encoding failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		ResponseJSON(w, http.StatusOK, math.Inf(1))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBindJSON(t *testing.T) {
	type input struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"w"}`, false},
		{"unknown field", `{"name":"w","extra":1}`, true},
		{"trailing data", `{"name":"w"}{}`, true},
		{"malformed", `{"name":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v input
			err := BindJSON(req, &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "w", v.Name)
		})
	}
}
