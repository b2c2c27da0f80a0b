// Package router dispatches AWS ALB target group events to registered
// handlers, Flask-style. An Engine is created once, routes are
// registered on it at startup, and the engine is handed to the Lambda
// runtime; because it stores no per-request state it is safe to cache
// across invocations.
//
//	e := router.NewEngine()
//	e.MustHandle("/hello/<user>", func(c *router.Context) (any, error) {
//		return map[string]any{"message": "Hello " + c.Param("user") + "!"}, nil
//	}, "GET")
//	server.Serve(e)
//
// Handlers return any payload (JSON-encoded with a 200 status), a
// string or []byte (passed through), or a *Response to control status
// and headers. Abort or a returned *Error short-circuits into a
// response with the given status; any other error or panic becomes a
// generic 500.
package router
