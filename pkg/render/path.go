// Package render turns collection request nodes into Markdown documents
// and JavaScript endpoint-constant modules.
package render

import (
	"net/url"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/postman"
)

// ExtractPath derives a clean request path from a URL representation.
// It always returns a path starting with "/" and never fails: a raw URL
// that cannot be parsed as an absolute URL is used as-is.
func ExtractPath(u *postman.URL) string {
	if u == nil {
		return "/"
	}

	var base string
	switch {
	case u.Plain != "":
		base = u.Plain
	case len(u.Path) > 0:
		base = strings.Join(u.Path, "/")
	case u.Raw != "":
		base = u.Raw
		if parsed, err := url.Parse(u.Raw); err == nil && parsed.Host != "" {
			base = parsed.Path
		}
	}

	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}
