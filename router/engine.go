package router

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// Engine dispatches ALB target group events to registered routes. An
// Engine is built once at startup, routes are registered on it, and it
// is then reused across invocations; it stores no per-request data, so
// caching it between Lambda executions is safe.
type Engine struct {
	*Options
	*Router
	running atomic.Int32
}

// NewEngine creates an Engine with the given options. The engine starts
// in running state.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Options: NewOptions(opts...),
		Router:  NewRouter(),
	}
	e.running.Store(1)
	e.installLinks()
	return e
}

// Start allows the engine to accept new requests.
func (e *Engine) Start() {
	e.running.Store(1)
}

// Stop makes the engine answer new requests with 503.
func (e *Engine) Stop() {
	e.running.Store(0)
}

// IsRunning returns true if the engine is accepting requests.
func (e *Engine) IsRunning() bool {
	return e.running.Load() == 1
}

// Invoke processes one ALB event and returns its response. Every
// outcome — handler payload, abort, routing miss, parse failure or
// fault — becomes a well-formed response; the returned error is always
// nil so the Lambda runtime never sees an unconverted failure.
func (e *Engine) Invoke(ctx context.Context, event events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	_ = ctx // reserved for future use

	var requestID string
	if e.RequestID {
		requestID = uuid.NewString()
	}

	resp := e.process(requestID, event)

	for k, v := range e.DefaultHeaders {
		if _, ok := resp.Headers[k]; !ok {
			resp.Headers[k] = v
		}
	}
	if requestID != "" {
		resp.Headers["X-Request-Id"] = requestID
	}

	return resp, nil
}

func (e *Engine) process(requestID string, event events.ALBTargetGroupRequest) events.ALBTargetGroupResponse {
	if !e.IsRunning() {
		return errorResponse(NewError(http.StatusServiceUnavailable, "service is stopped"))
	}

	c, err := newContext(event)
	if err != nil {
		return e.errorOrFault(requestID, err)
	}

	if e.DebugMode {
		log.Printf("[ALB] Request: %s %s", c.Method, c.RawPath)
	}

	for _, m := range e.pre {
		m(c)
	}

	route, params, err := e.resolve(c.Method, c.Path)
	switch err {
	case nil:
	case errNoRoute:
		return errorResponse(NotFound(fmt.Sprintf("Route %s via %s request has not been registered.", c.Path, c.Method)))
	case errNoMethod:
		return errorResponse(NewError(http.StatusMethodNotAllowed, fmt.Sprintf("Route %s does not allow %s requests.", c.Path, c.Method)))
	default:
		return e.errorOrFault(requestID, err)
	}
	c.Params = params

	result, err := e.call(route.handler, c)
	if err != nil {
		return e.errorOrFault(requestID, err)
	}

	resp, err := buildResponse(result)
	if err != nil {
		return e.errorOrFault(requestID, err)
	}

	if e.DebugMode {
		log.Printf("[ALB] Response: %s %s -> %d", c.Method, c.RawPath, resp.StatusCode)
	}

	return resp
}

// call invokes the handler, converting an Abort unwind into its Error
// value and any other panic into a plain error.
func (e *Engine) call(h HandlerFunc, c *Context) (result any, err error) {
	defer func() {
		if v := recover(); v != nil {
			if aborted, ok := v.(*Error); ok {
				err = aborted
				return
			}
			err = fmt.Errorf("panic: %v", v)
		}
	}()

	return h(c)
}

// errorOrFault converts an error into a response. *Error values respond
// with the status they carry; anything else is a fault, logged here and
// masked behind a generic 500 so internal detail never reaches the
// client.
func (e *Engine) errorOrFault(requestID string, err error) events.ALBTargetGroupResponse {
	var statusErr *Error
	if errors.As(err, &statusErr) {
		return errorResponse(statusErr)
	}

	if requestID != "" {
		log.Printf("[ALB] Fault (request %s): %v", requestID, err)
	} else {
		log.Printf("[ALB] Fault: %v", err)
	}

	return errorResponse(NewError(http.StatusInternalServerError, "Internal Server Error"))
}
