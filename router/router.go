package router

import (
	"errors"
	"fmt"
	"strings"
)

// HandlerFunc is the signature of a route handler. The returned value is
// normalized into the response body: *Response values pass through with
// their status and headers, strings and []byte pass through as-is, and
// anything else is JSON-encoded with a 200 status. Returning a *Error
// (or calling Abort) produces a response with that status instead.
type HandlerFunc func(c *Context) (any, error)

// MiddlewareFunc runs before route resolution. Middleware may rewrite
// c.Path; it cannot produce a response.
type MiddlewareFunc func(c *Context)

// Route is a single registration: a compiled pattern, the methods it
// accepts and its handler. Routes are created once at registration time
// and never mutated afterwards.
type Route struct {
	pattern *pattern
	methods map[string]struct{} // empty: any method
	handler HandlerFunc
}

// Pattern returns the route's template as registered.
func (r *Route) Pattern() string { return r.pattern.template }

// Methods returns the methods the route accepts, or nil for any.
func (r *Route) Methods() []string {
	if len(r.methods) == 0 {
		return nil
	}
	methods := make([]string, 0, len(r.methods))
	for m := range r.methods {
		methods = append(methods, m)
	}
	return methods
}

var (
	errNoRoute  = errors.New("albrouter: no route")
	errNoMethod = errors.New("albrouter: method not allowed")
)

// Router stores the registered routes. It is meant to be populated once
// at startup and read concurrently afterwards; registration while
// serving is not supported.
type Router struct {
	pre    []MiddlewareFunc
	routes []*Route
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{}
}

// Use registers pre-dispatch middleware, run in registration order
// before route resolution.
func (r *Router) Use(middleware ...MiddlewareFunc) {
	r.pre = append(r.pre, middleware...)
}

// Handle registers a handler for a path template. Methods are
// uppercased; registering with no methods accepts any method. It returns
// a *RegistrationError if the pattern is malformed or if an existing
// route has the same shape and an overlapping method.
func (r *Router) Handle(template string, handler HandlerFunc, methods ...string) error {
	if handler == nil {
		return &RegistrationError{Pattern: template, Reason: "nil handler"}
	}

	p, err := compilePattern(template)
	if err != nil {
		return err
	}

	route := &Route{pattern: p, handler: handler}
	if len(methods) > 0 {
		route.methods = make(map[string]struct{}, len(methods))
		for _, m := range methods {
			route.methods[strings.ToUpper(m)] = struct{}{}
		}
	}

	for _, existing := range r.routes {
		if existing.pattern.normalized() == p.normalized() && methodsOverlap(existing.methods, route.methods) {
			return &RegistrationError{
				Pattern: template,
				Reason:  fmt.Sprintf("duplicates route %q", existing.pattern.template),
			}
		}
	}

	r.routes = append(r.routes, route)
	return nil
}

// MustHandle is Handle, panicking on registration errors. Registration
// happens at process startup, where a bad route should be fatal.
func (r *Router) MustHandle(template string, handler HandlerFunc, methods ...string) {
	if err := r.Handle(template, handler, methods...); err != nil {
		panic(err)
	}
}

// resolve finds the first registered route matching method and path, in
// registration order, and returns the captured parameters. It reports
// errNoMethod when a pattern matched the path but not the method, and
// errNoRoute when nothing matched the path at all.
func (r *Router) resolve(method, path string) (*Route, map[string]string, error) {
	pathMatched := false
	for _, route := range r.routes {
		params, ok := route.pattern.match(path)
		if !ok {
			continue
		}
		if route.allows(method) {
			return route, params, nil
		}
		pathMatched = true
	}
	if pathMatched {
		return nil, nil, errNoMethod
	}
	return nil, nil, errNoRoute
}

func (r *Route) allows(method string) bool {
	if len(r.methods) == 0 {
		return true
	}
	_, ok := r.methods[method]
	return ok
}

// methodsOverlap reports whether two method sets can both accept some
// method. An empty set accepts everything.
func methodsOverlap(a, b map[string]struct{}) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for m := range b {
		if _, ok := a[m]; ok {
			return true
		}
	}
	return false
}
