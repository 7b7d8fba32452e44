package apigw

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ServeHTTP resolves the request path against the resource tree and calls
// the bound handler. Unknown paths get 404, unbound verbs 405 with an Allow
// header, a missing or unknown API key 403 and a rejected authorizer 401,
// each with a JSON GatewayResponse body. Every request, rejected ones
// included, gets a UUID v4 request id header.
func (a *RestAPI) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	id := uuid.New().String()
	w.Header().Set(a.cfg.requestIDHeader(), id)

	defer func() {
		if err := recover(); err != nil {
			if a.cfg.PanicFunc != nil {
				a.cfg.PanicFunc(req, err)
			}
			gatewayError(w, http.StatusInternalServerError)
		}
	}()

	vars := make(map[string]string)
	res := a.root.match(splitPath(req.URL.Path), vars)
	if res == nil {
		gatewayError(w, http.StatusNotFound)
		return
	}

	m, ok := res.methods[req.Method]
	if !ok {
		w.Header().Set("Allow", strings.Join(res.allowedMethods(), ", "))
		gatewayError(w, http.StatusMethodNotAllowed)
		return
	}

	switch {
	case m.opts.APIKeyRequired:
		if !a.validAPIKey(req.Header.Get("X-Api-Key")) {
			gatewayError(w, http.StatusForbidden)
			return
		}
	case m.opts.Authorizer != nil:
		if err := m.opts.Authorizer.Authorize(req); err != nil {
			gatewayError(w, http.StatusUnauthorized)
			return
		}
	}

	if len(vars) == 0 {
		vars = nil
	}

	rc := &requestContext{method: m, vars: vars, requestID: id}
	req = req.WithContext(context.WithValue(req.Context(), ctxKey, rc))

	m.handler.ServeHTTP(w, req)
}

// splitPath returns the non-empty segments of path.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}

	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
