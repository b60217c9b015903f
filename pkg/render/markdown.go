package render

import (
	"fmt"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/naming"
	"github.com/blackcoderx/postdoc/pkg/postman"
)

const noDescription = "No description provided."

// DocFileName returns the Markdown file name for a request: the
// file-safe, lower-cased request name plus ".md".
func DocFileName(name string) string {
	return strings.ToLower(naming.FileSafe(name)) + ".md"
}

// RequestMarkdown renders one request item as a Markdown document.
// Sections with nothing to show are omitted entirely. Items without a
// request payload render to the empty string and should not be written.
func RequestMarkdown(item *postman.Item) string {
	req := item.Request
	if req == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", item.Name)

	description := req.Description
	if description == "" {
		description = item.Description
	}
	if description == "" {
		description = noDescription
	}
	fmt.Fprintf(&b, "> %s\n\n", description)

	fmt.Fprintf(&b, "`%s` **%s**\n", req.Method, req.URL.Display())

	if len(req.Header) > 0 {
		b.WriteString("\n## Headers\n\n")
		b.WriteString("| Key | Value | Description |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, h := range req.Header {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", h.Key, h.Value, h.Description)
		}
	}

	if req.URL != nil && len(req.URL.Query) > 0 {
		b.WriteString("\n## Query Parameters\n\n")
		b.WriteString("| Key | Value | Description |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, q := range req.URL.Query {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", q.Key, q.Value, q.Description)
		}
	}

	if body := req.Body; body != nil {
		switch body.Mode {
		case "raw":
			b.WriteString("\n## Body\n\n")
			fmt.Fprintf(&b, "```json\n%s\n```\n", body.Raw)
		case "formdata":
			b.WriteString("\n## Body\n\n")
			b.WriteString("| Key | Value | Type | Description |\n")
			b.WriteString("| --- | --- | --- | --- |\n")
			for _, f := range body.FormData {
				fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", f.Key, f.Value, f.Type, f.Description)
			}
		}
	}

	if len(item.Responses) > 0 {
		b.WriteString("\n## Responses\n")
		for _, resp := range item.Responses {
			fmt.Fprintf(&b, "\n### %s (%d %s)\n\n", resp.Name, resp.Code, resp.Status)
			fmt.Fprintf(&b, "```json\n%s\n```\n", resp.Body)
		}
	}

	return b.String()
}
