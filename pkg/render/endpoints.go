package render

import (
	"fmt"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/naming"
	"github.com/blackcoderx/postdoc/pkg/postman"
)

// ModuleFileName returns the endpoint-module file name for a folder
// group: file-safe, lower-cased and hyphenated, plus ".js".
func ModuleFileName(folder string) string {
	return strings.ReplaceAll(strings.ToLower(naming.FileSafe(folder)), "_", "-") + ".js"
}

// EndpointModule renders the requests collected under one folder as a
// JavaScript module. The module exports a CONSTANT_CASE mapping of
// camelCase endpoint keys to {type, endpoint} pairs, in input order, and
// default-exports the same value. The method defaults to GET when a
// request does not declare one.
func EndpointModule(folder string, requests []postman.Item) string {
	constName := naming.ConstantName(folder)

	var b strings.Builder
	fmt.Fprintf(&b, "export const %s = {\n", constName)
	for i := range requests {
		item := &requests[i]
		method := "GET"
		var u *postman.URL
		if item.Request != nil {
			if item.Request.Method != "" {
				method = item.Request.Method
			}
			u = item.Request.URL
		}
		fmt.Fprintf(&b, "  %s: {\n", naming.CamelIdentifier(item.Name))
		fmt.Fprintf(&b, "    type: %q,\n", method)
		fmt.Fprintf(&b, "    endpoint: %q,\n", ExtractPath(u))
		b.WriteString("  },\n")
	}
	b.WriteString("};\n")
	fmt.Fprintf(&b, "\nexport default %s;\n", constName)
	return b.String()
}
