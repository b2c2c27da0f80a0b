package router

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"
)

// Context carries the parsed request data for a single invocation. It is
// built fresh from each ALB event and discarded when the response is
// returned; it is never stored on the engine, so a cached engine cannot
// leak data between invocations.
type Context struct {
	// Method is the HTTP method of the request, uppercased.
	Method string
	// RawPath is the path as delivered by the ALB.
	RawPath string
	// Path is the effective path, after link rewrites.
	Path string
	// Params holds the values captured by the matched route pattern.
	Params map[string]string
	// Query holds the query parameters, normalized to multi-value form.
	Query map[string][]string
	// Data is the parsed body: a structured value for JSON bodies, a
	// map for form bodies, otherwise the decoded text.
	Data any
	// RawEvent is the original event, untouched.
	RawEvent events.ALBTargetGroupRequest

	headers map[string][]string
}

// newContext parses an ALB target group event into a Context. Errors are
// client-classified (*Error with a 400 code), never faults.
func newContext(event events.ALBTargetGroupRequest) (*Context, error) {
	path := event.Path
	if path == "" {
		path = "/"
	}

	c := &Context{
		Method:   strings.ToUpper(event.HTTPMethod),
		RawPath:  path,
		Path:     path,
		Query:    parseQuery(event),
		RawEvent: event,
		headers:  parseHeaders(event),
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, BadRequest("invalid base64 request body")
		}
		body = string(decoded)
	}

	if body == "" {
		c.Data = ""
		return c, nil
	}

	contentType := mediaType(c.Header("Content-Type"))
	switch {
	case contentType == "application/json" || strings.HasSuffix(contentType, "+json"):
		if !gjson.Valid(body) {
			return nil, BadRequest("invalid JSON request body")
		}
		c.Data = gjson.Parse(body).Value()
	case contentType == "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(body)
		if err != nil {
			return nil, BadRequest("invalid form request body")
		}
		form := make(map[string]any, len(values))
		for k, v := range values {
			form[k] = v[0]
		}
		c.Data = form
	default:
		c.Data = body
	}

	return c, nil
}

// Param returns the path parameter captured under name, or "".
func (c *Context) Param(name string) string {
	return c.Params[name]
}

// Header returns the first value of the named request header. Lookup is
// case-insensitive; the stored casing is whatever the ALB delivered.
func (c *Context) Header(name string) string {
	for k, v := range c.headers {
		if strings.EqualFold(k, name) && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// Headers returns all request headers in multi-value form.
func (c *Context) Headers() map[string][]string {
	return c.headers
}

// QueryValue returns the first query parameter value for key, or "".
func (c *Context) QueryValue(key string) string {
	if v := c.Query[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Forwarding metadata, as set by the load balancer.

func (c *Context) SourceIP() string {
	if v := c.Header("X-Forwarded-For"); v != "" {
		if i := strings.IndexByte(v, ','); i >= 0 {
			return strings.TrimSpace(v[:i])
		}
		return strings.TrimSpace(v)
	}
	return ""
}

func (c *Context) ForwardedProto() string { return c.Header("X-Forwarded-Proto") }
func (c *Context) ForwardedPort() string  { return c.Header("X-Forwarded-Port") }
func (c *Context) Host() string           { return c.Header("Host") }
func (c *Context) TraceID() string        { return c.Header("X-Amzn-Trace-Id") }

// parseQuery folds the single-value and multi-value query maps of the
// event into one multi-value mapping. The multi-value form wins when a
// key appears in both.
func parseQuery(event events.ALBTargetGroupRequest) map[string][]string {
	query := make(map[string][]string, len(event.MultiValueQueryStringParameters)+len(event.QueryStringParameters))
	for k, v := range event.MultiValueQueryStringParameters {
		query[k] = v
	}
	for k, v := range event.QueryStringParameters {
		if _, ok := query[k]; !ok {
			query[k] = []string{v}
		}
	}
	return query
}

// parseHeaders folds the single-value and multi-value header maps into
// one multi-value mapping, preserving the delivered casing.
func parseHeaders(event events.ALBTargetGroupRequest) map[string][]string {
	headers := make(map[string][]string, len(event.MultiValueHeaders)+len(event.Headers))
	for k, v := range event.MultiValueHeaders {
		headers[k] = v
	}
	for k, v := range event.Headers {
		if _, ok := headers[k]; !ok {
			headers[k] = []string{v}
		}
	}
	return headers
}

// mediaType strips parameters like "; charset=utf-8" from a Content-Type
// value and lowercases it.
func mediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
