package httpserver

import (
	"github.com/mohae/deepcopy"
)

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type Options struct {
	// HttpServer Options
	Address     string
	ReleaseMode bool
	CorsMode    bool
}

var defaultOptions = &Options{
	Address:     ":8080",
	ReleaseMode: false,
	CorsMode:    false,
}

func NewOptions(opts ...Option) *Options {
	options := deepcopy.Copy(defaultOptions).(*Options)
	options.init(opts...)
	return options
}

func (o *Options) init(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
}

// -------------- HttpServer Options ----------------

func WithAddress(addr string) Option {
	return OptionFunc(func(o *Options) {
		o.Address = addr
	})
}

func WithReleaseMode() Option {
	return OptionFunc(func(o *Options) {
		o.ReleaseMode = true
	})
}

func WithCors() Option {
	return OptionFunc(func(o *Options) {
		o.CorsMode = true
	})
}
