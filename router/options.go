package router

import (
	"github.com/mohae/deepcopy"
)

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type Options struct {
	// Router Options
	DebugMode      bool
	RequestID      bool
	DefaultHeaders map[string]string
	StaticLinkMap  map[string]string
	PrefixLinkMap  map[string]string
	HeaderLinkMap  map[string]string
}

var defaultOptions = &Options{
	DebugMode:      false,
	RequestID:      false,
	DefaultHeaders: map[string]string{},
	StaticLinkMap:  map[string]string{},
	PrefixLinkMap:  map[string]string{},
	HeaderLinkMap:  map[string]string{},
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

// -------------- Router Options ----------------

// WithDebugMode enables per-request debug logging.
func WithDebugMode() Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = true
	})
}

// WithRequestID attaches a generated X-Request-Id header to every
// response and tags fault logs with it.
func WithRequestID() Option {
	return OptionFunc(func(o *Options) {
		o.RequestID = true
	})
}

// WithDefaultHeader adds a header to every response. Handler-set headers
// of the same name win.
func WithDefaultHeader(key, value string) Option {
	return OptionFunc(func(o *Options) {
		o.DefaultHeaders[key] = value
	})
}

// WithStaticLink rewrites requests for srcPath to dstPath before
// resolution.
func WithStaticLink(srcPath, dstPath string) Option {
	return OptionFunc(func(o *Options) {
		o.StaticLinkMap[srcPath] = dstPath
	})
}

// WithPrefixLink rewrites the srcPrefix of request paths to dstPrefix
// before resolution.
func WithPrefixLink(srcPrefix, dstPrefix string) Option {
	return OptionFunc(func(o *Options) {
		o.PrefixLinkMap[srcPrefix] = dstPrefix
	})
}

// WithHeaderLink routes requests carrying the given header to the
// header's value joined under prefix, before resolution.
func WithHeaderLink(key, prefix string) Option {
	return OptionFunc(func(o *Options) {
		o.HeaderLinkMap[key] = prefix
	})
}
