package router

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// yamlRouterConfig represents the YAML configuration structure for the router module
type yamlRouterConfig struct {
	Mode struct {
		Debug bool `yaml:"debug"`
	} `yaml:"mode"`
	RequestID      bool `yaml:"requestId"`
	DefaultHeaders []struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
	} `yaml:"defaultHeaders"`
	StaticLink []struct {
		SrcPath string `yaml:"srcPath"`
		DstPath string `yaml:"dstPath"`
	} `yaml:"staticLink"`
	PrefixLink []struct {
		SrcPrefix string `yaml:"srcPrefix"`
		DstPrefix string `yaml:"dstPrefix"`
	} `yaml:"prefixLink"`
	HeaderLink []struct {
		Key    string `yaml:"key"`
		Prefix string `yaml:"prefix"`
	} `yaml:"headerLink"`
}

func optionFromRouterConfig(cfg yamlRouterConfig) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = cfg.Mode.Debug
		o.RequestID = cfg.RequestID

		if o.DefaultHeaders == nil {
			o.DefaultHeaders = make(map[string]string)
		}
		for _, h := range cfg.DefaultHeaders {
			if h.Key == "" {
				continue
			}
			o.DefaultHeaders[h.Key] = h.Value
		}

		if o.StaticLinkMap == nil {
			o.StaticLinkMap = make(map[string]string)
		}
		for _, link := range cfg.StaticLink {
			if link.SrcPath == "" || link.DstPath == "" {
				continue
			}
			o.StaticLinkMap[link.SrcPath] = link.DstPath
		}

		if o.PrefixLinkMap == nil {
			o.PrefixLinkMap = make(map[string]string)
		}
		for _, link := range cfg.PrefixLink {
			if link.SrcPrefix == "" || link.DstPrefix == "" {
				continue
			}
			o.PrefixLinkMap[link.SrcPrefix] = link.DstPrefix
		}

		if o.HeaderLinkMap == nil {
			o.HeaderLinkMap = make(map[string]string)
		}
		for _, link := range cfg.HeaderLink {
			if link.Key == "" || link.Prefix == "" {
				continue
			}
			o.HeaderLinkMap[link.Key] = link.Prefix
		}
	})
}

// optionFromConfigBytes parses YAML bytes and returns an Option.
// Returns an error if the YAML is invalid.
func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlRouterConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	return optionFromRouterConfig(cfg), nil
}

// WithConfig parses YAML bytes following albrouter.yml structure and applies it to Options.
// It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("router.WithConfig: %w", err))
		})
	}
	return opt
}

// WithConfigFile loads a YAML file and applies it to Options.
// It panics if the file cannot be read or YAML is invalid.
func WithConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("router.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
