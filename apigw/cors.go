package apigw

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// ErrWildcardCredentials is returned when AllowOrigins contains "*" and
// AllowCredentials is true.
var ErrWildcardCredentials = errors.New("wildcard origin \"*\" cannot be used with AllowCredentials")

// DefaultCorsHeaders are the request headers allowed when
// CorsOptions.AllowHeaders is empty.
var DefaultCorsHeaders = []string{
	"Content-Type",
	"X-Amz-Date",
	"Authorization",
	"X-Api-Key",
	"X-Amz-Security-Token",
	"X-Amz-User-Agent",
}

// CorsOptions configures a preflight OPTIONS method.
//
// Spec reference: https://fetch.spec.whatwg.org/#http-cors-protocol
type CorsOptions struct {
	// AllowOrigins lists exact origins or "*".
	AllowOrigins []string

	// AllowMethods overrides the advertised methods. When empty the methods
	// bound on the resource are advertised.
	AllowMethods []string

	// AllowHeaders lists the headers the client may send. Defaults to
	// DefaultCorsHeaders.
	AllowHeaders []string

	// ExposeHeaders lists the headers the browser may expose to client code.
	ExposeHeaders []string

	// AllowCredentials sets Access-Control-Allow-Credentials: true.
	AllowCredentials bool

	// MaxAge is the preflight cache duration in seconds. Zero omits the header.
	MaxAge int

	// StatusCode of the preflight response. Defaults to 204 No Content.
	StatusCode int
}

func (o *CorsOptions) validate() error {
	if o.AllowCredentials && slices.Contains(o.AllowOrigins, "*") {
		return ErrWildcardCredentials
	}
	return nil
}

// AddCorsPreflight binds an OPTIONS method that answers CORS preflight
// requests for the resource.
func (r *Resource) AddCorsPreflight(opts CorsOptions) (*Method, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return r.AddMethod(http.MethodOptions, preflightHandler(r, opts), MethodOptions{})
}

func preflightHandler(res *Resource, opts CorsOptions) http.Handler {
	wildcard := slices.Contains(opts.AllowOrigins, "*")

	headers := opts.AllowHeaders
	if len(headers) == 0 {
		headers = DefaultCorsHeaders
	}

	status := opts.StatusCode
	if status == 0 {
		status = http.StatusNoContent
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")

		switch {
		case wildcard && !opts.AllowCredentials:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(opts.AllowOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		default:
			w.WriteHeader(status)
			return
		}

		methods := opts.AllowMethods
		if len(methods) == 0 {
			methods = res.allowedMethods()
		}

		w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ","))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(headers, ","))

		if len(opts.ExposeHeaders) > 0 {
			w.Header().Set("Access-Control-Expose-Headers", strings.Join(opts.ExposeHeaders, ","))
		}
		if opts.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if opts.MaxAge > 0 {
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAge))
		}

		w.WriteHeader(status)
	})
}
