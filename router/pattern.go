package router

import (
	"fmt"
	"strings"
)

// segment is one element of a compiled pattern: either a literal path
// segment or a named parameter capture.
type segment struct {
	literal string
	param   string
}

// pattern is the compiled form of a route template like /hello/<user>.
type pattern struct {
	template string
	segments []segment
	params   []string
}

// compilePattern parses a route template into segment matchers.
// Literal segments match exactly; <name> segments capture one non-empty
// path segment. Multi-segment wildcards are not supported.
func compilePattern(template string) (*pattern, error) {
	if template == "" {
		return nil, &RegistrationError{Pattern: template, Reason: "empty pattern"}
	}
	if template[0] != '/' {
		return nil, &RegistrationError{Pattern: template, Reason: "pattern must begin with /"}
	}

	p := &pattern{template: template}
	seen := map[string]bool{}

	for _, part := range splitPath(template) {
		switch {
		case strings.HasPrefix(part, "<") && strings.HasSuffix(part, ">"):
			name := part[1 : len(part)-1]
			if name == "" {
				return nil, &RegistrationError{Pattern: template, Reason: "empty parameter name"}
			}
			if strings.ContainsAny(name, "<>") {
				return nil, &RegistrationError{Pattern: template, Reason: fmt.Sprintf("malformed parameter %q", part)}
			}
			if seen[name] {
				return nil, &RegistrationError{Pattern: template, Reason: fmt.Sprintf("duplicate parameter %q", name)}
			}
			seen[name] = true
			p.segments = append(p.segments, segment{param: name})
			p.params = append(p.params, name)
		case strings.ContainsAny(part, "<>"):
			return nil, &RegistrationError{Pattern: template, Reason: fmt.Sprintf("unbalanced parameter delimiters in %q", part)}
		default:
			p.segments = append(p.segments, segment{literal: part})
		}
	}

	return p, nil
}

// normalized returns the pattern with parameter names erased, so that
// /a/<x> and /a/<y> compare as the same shape.
func (p *pattern) normalized() string {
	parts := make([]string, 0, len(p.segments))
	for _, s := range p.segments {
		if s.param != "" {
			parts = append(parts, "<>")
		} else {
			parts = append(parts, s.literal)
		}
	}
	return "/" + strings.Join(parts, "/")
}

// match reports whether path matches the pattern, binding captured
// parameter values by name. Matching is case-sensitive and requires the
// same segment count; captures must be non-empty.
func (p *pattern) match(path string) (map[string]string, bool) {
	parts := splitPath(path)
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var params map[string]string
	for i, s := range p.segments {
		if s.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, len(p.params))
			}
			params[s.param] = parts[i]
			continue
		}
		if parts[i] != s.literal {
			return nil, false
		}
	}

	return params, true
}

// splitPath splits a path into segments, treating "" and "/" as the root
// (zero segments). A trailing slash yields a trailing empty segment, so
// /foo/ and /foo do not match the same patterns.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
