package router

import "strings"

// Link rewriting middleware, installed by NewEngine from the engine
// options. Each rewrites c.Path before route resolution; c.RawPath keeps
// the path the ALB delivered.

func (e *Engine) installLinks() {
	e.Use(e.headerLink, e.staticLink, e.prefixLink)
}

func (e *Engine) headerLink(c *Context) {
	for key, prefix := range e.HeaderLinkMap {
		if link := c.Header(key); link != "" {
			strs := []string{strings.TrimRight(prefix, "/"), strings.TrimLeft(link, "/")}
			c.Path = strings.Join(strs, "/")
			return
		}
	}
}

func (e *Engine) staticLink(c *Context) {
	if dstPath, ok := e.StaticLinkMap[c.Path]; ok {
		c.Path = dstPath
	}
}

func (e *Engine) prefixLink(c *Context) {
	for srcPrefix, dstPrefix := range e.PrefixLinkMap {
		if strings.HasPrefix(c.Path, srcPrefix) {
			c.Path = strings.Replace(c.Path, srcPrefix, dstPrefix, 1)
			return
		}
	}
}
