package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/aura-studio/albrouter/router"
)

// Engine serves an albrouter engine over plain HTTP for local
// development: every request is converted into an ALB target group event
// and dispatched through the same pipeline the Lambda entry uses.
type Engine struct {
	*Options
	*gin.Engine
	alb *router.Engine
}

func NewEngine(alb *router.Engine, opts ...Option) *Engine {
	e := &Engine{
		Options: NewOptions(opts...),
		Engine:  gin.Default(),
		alb:     alb,
	}

	if e.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if e.CorsMode {
		e.Use(Cors())
	}

	e.InstallHandlers()

	return e
}

func (e *Engine) InstallHandlers() {
	e.NoRoute(e.Forward)
}
