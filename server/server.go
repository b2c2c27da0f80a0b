package server

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/aura-studio/albrouter/router"
)

// engine holds the served engine so Close can reach it.
var engine *router.Engine

// Serve registers the engine with the Lambda runtime and blocks serving
// invocations. Routes must be registered on the engine before Serve is
// called; the engine is cached by the runtime across invocations.
func Serve(e *router.Engine) {
	engine = e
	lambda.Start(engine.Invoke)
}

// Close stops the served engine; in-flight invocations finish, new ones
// are answered with 503.
func Close() {
	if engine != nil {
		engine.Stop()
	}
}
