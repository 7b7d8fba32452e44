package apigw

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeHTTP(t *testing.T) {
	api := newTestAPI(t)
	api.AddAPIKey("secret")
	api.AddAPIKey("")

	reg := NewRegistry(api)

	echoVars := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := VarGet(r, "id")
		_, _ = io.WriteString(w, r.Method+" "+CurrentMethod(r).Path()+" id="+id)
	})

	routes := []RouteProps{
		{URL: "/api/widgets", Method: http.MethodGet, Handler: echoVars},
		{URL: "/api/widgets", Method: http.MethodPost, Handler: echoVars},
		{URL: "/api/widgets/{id}", Method: http.MethodGet, Handler: echoVars},
		{URL: "/api/keys", Method: http.MethodGet, Handler: echoVars, APIKeyRequired: true},
		{URL: "/api/private", Method: http.MethodGet, Handler: echoVars, Authorizer: AuthorizerFunc(func(r *http.Request) error {
			if r.Header.Get("Authorization") != "Bearer ok" {
				return errors.New("denied")
			}
			return nil
		})},
		{URL: "/api/panic", Method: http.MethodGet, Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})},
	}
	for _, props := range routes {
		_, err := reg.Route(props)
		require.NoError(t, err)
	}

	do := func(method, target string, header http.Header) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		for k, v := range header {
			req.Header[k] = v
		}
		w := httptest.NewRecorder()
		api.ServeHTTP(w, req)
		return w
	}

	t.Run("dispatches to handler", func(t *testing.T) {
		w := do(http.MethodGet, "/api/widgets", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "GET /api/widgets id=", w.Body.String())
	})

	t.Run("path variables", func(t *testing.T) {
		w := do(http.MethodGet, "/api/widgets/42", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "GET /api/widgets/{id} id=42", w.Body.String())
	})

	t.Run("request id", func(t *testing.T) {
		w := do(http.MethodPost, "/api/widgets", nil)
		id := w.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		w := do(http.MethodGet, "/api/unknown", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"Not Found"}`, w.Body.String())
		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := do(http.MethodDelete, "/api/widgets", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "GET, POST", w.Header().Get("Allow"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("api key", func(t *testing.T) {
		rejected := do(http.MethodGet, "/api/keys", nil)
		assert.NotEmpty(t, rejected.Header().Get("X-Request-ID"))
		assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/keys", nil).Code)
		assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/keys", http.Header{"X-Api-Key": {"wrong"}}).Code)
		assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/keys", http.Header{"X-Api-Key": {""}}).Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/keys", http.Header{"X-Api-Key": {"secret"}}).Code)
	})

	t.Run("authorizer", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/private", nil).Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/private", http.Header{"Authorization": {"Bearer ok"}}).Code)
	})

	t.Run("panic recovered", func(t *testing.T) {
		w := do(http.MethodGet, "/api/panic", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServeHTTPConfig(t *testing.T) {
	var recovered any
	api, err := NewRestAPI(Config{
		RequestIDHeader: "X-Amzn-RequestId",
		PanicFunc: func(_ *http.Request, err any) {
			recovered = err
		},
	})
	require.NoError(t, err)

	var seenID string
	_, err = api.Root().AddMethod(http.MethodGet, http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		panic("boom")
	}), MethodOptions{})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	api.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", recovered)
	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, w.Header().Get("X-Amzn-RequestId"))
}

func TestServeHTTPServer(t *testing.T) {
	api := newTestAPI(t)
	_, err := NewRegistry(api).Route(RouteProps{
		URL:    "/files/{path+}",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, Vars(r)["path"])
		}),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(api)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/files/a/b/c.txt")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a/b/c.txt", string(body))
}
