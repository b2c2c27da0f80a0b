package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/aura-studio/albrouter/router"
)

var srv *http.Server

// Serve runs the albrouter engine behind a local HTTP server. It blocks
// until the server is closed.
func Serve(alb *router.Engine, opts ...Option) error {
	engine := NewEngine(alb, opts...)
	srv = &http.Server{
		Addr:    engine.Address,
		Handler: engine,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts the server down, allowing in-flight requests to finish.
func Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return nil
}
