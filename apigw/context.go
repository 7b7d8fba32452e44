package apigw

import (
	"context"
	"net/http"
)

// requestContextKey is an unexported type for the single context key.
type requestContextKey struct{}

// ctxKey stores the matched method, its path variables and the request id.
var ctxKey = requestContextKey{}

type requestContext struct {
	method    *Method
	vars      map[string]string
	requestID string
}

func fromContext(ctx context.Context) *requestContext {
	rc, _ := ctx.Value(ctxKey).(*requestContext)
	return rc
}

// Vars returns the path variables of the current request, if any.
func Vars(r *http.Request) map[string]string {
	if rc := fromContext(r.Context()); rc != nil {
		return rc.vars
	}
	return nil
}

// VarGet returns a single path variable and whether it exists.
func VarGet(r *http.Request, name string) (string, bool) {
	if rc := fromContext(r.Context()); rc != nil && rc.vars != nil {
		val, ok := rc.vars[name]
		return val, ok
	}
	return "", false
}

// CurrentMethod returns the method handling the request. It only works
// inside a handler dispatched by RestAPI.
func CurrentMethod(r *http.Request) *Method {
	if rc := fromContext(r.Context()); rc != nil {
		return rc.method
	}
	return nil
}

// RequestIDFromContext returns the request id assigned by RestAPI, or an
// empty string.
func RequestIDFromContext(ctx context.Context) string {
	if rc := fromContext(ctx); rc != nil {
		return rc.requestID
	}
	return ""
}

// SetURLVars returns a copy of r carrying the given path variables. This is
// intended for testing handlers without dispatching through RestAPI.
func SetURLVars(r *http.Request, vars map[string]string) *http.Request {
	rc := &requestContext{vars: vars}
	if prev := fromContext(r.Context()); prev != nil {
		rc.method = prev.method
		rc.requestID = prev.requestID
	}
	return r.WithContext(context.WithValue(r.Context(), ctxKey, rc))
}
