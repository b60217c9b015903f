package render

import (
	"strings"
	"testing"

	"github.com/blackcoderx/postdoc/pkg/postman"
)

func TestRequestMarkdown_MinimalRequest(t *testing.T) {
	item := &postman.Item{
		Name: "Ping",
		Request: &postman.Request{
			Method: "GET",
			URL:    &postman.URL{Plain: "ping"},
		},
	}

	doc := RequestMarkdown(item)

	if !strings.Contains(doc, "# Ping\n") {
		t.Errorf("missing title heading:\n%s", doc)
	}
	if !strings.Contains(doc, "> No description provided.\n") {
		t.Errorf("missing description fallback:\n%s", doc)
	}
	if !strings.Contains(doc, "`GET` **ping**\n") {
		t.Errorf("missing method/URL line:\n%s", doc)
	}

	// No empty section headings for a request with nothing else.
	for _, heading := range []string{"## Headers", "## Query Parameters", "## Body", "## Responses"} {
		if strings.Contains(doc, heading) {
			t.Errorf("unexpected section %q in minimal request:\n%s", heading, doc)
		}
	}
}

func TestRequestMarkdown_Sections(t *testing.T) {
	item := &postman.Item{
		Name: "Create User",
		Request: &postman.Request{
			Method:      "POST",
			Description: "Creates a user.",
			URL: &postman.URL{
				Raw:  "https://x.test/users?notify=true",
				Path: []string{"users"},
				Query: []postman.QueryParam{
					{Key: "notify", Value: "true", Description: "send a welcome mail"},
				},
			},
			Header: []postman.Header{
				{Key: "Authorization", Value: "Bearer {{token}}"},
			},
			Body: &postman.Body{Mode: "raw", Raw: `{"a":1}`},
		},
		Responses: []postman.Response{
			{Name: "Created", Code: 201, Status: "Created", Body: `{"id":7}`},
		},
	}

	doc := RequestMarkdown(item)

	if !strings.Contains(doc, "> Creates a user.\n") {
		t.Errorf("missing description blockquote:\n%s", doc)
	}
	if !strings.Contains(doc, "## Headers\n\n| Key | Value | Description |\n| --- | --- | --- |\n| Authorization | Bearer {{token}} |  |\n") {
		t.Errorf("headers table malformed:\n%s", doc)
	}
	if !strings.Contains(doc, "## Query Parameters\n\n| Key | Value | Description |\n| --- | --- | --- |\n| notify | true | send a welcome mail |\n") {
		t.Errorf("query table malformed:\n%s", doc)
	}
	if !strings.Contains(doc, "## Body\n\n```json\n{\"a\":1}\n```\n") {
		t.Errorf("raw body block malformed:\n%s", doc)
	}
	if !strings.Contains(doc, "### Created (201 Created)\n\n```json\n{\"id\":7}\n```\n") {
		t.Errorf("response section malformed:\n%s", doc)
	}
}

func TestRequestMarkdown_FormDataBody(t *testing.T) {
	item := &postman.Item{
		Name: "Upload",
		Request: &postman.Request{
			Method: "POST",
			URL:    &postman.URL{Plain: "upload"},
			Body: &postman.Body{
				Mode: "formdata",
				FormData: []postman.FormField{
					{Key: "file", Type: "file", Description: "the payload"},
					{Key: "label", Value: "avatar", Type: "text"},
				},
			},
		},
	}

	doc := RequestMarkdown(item)

	if !strings.Contains(doc, "| Key | Value | Type | Description |\n| --- | --- | --- | --- |\n") {
		t.Errorf("formdata table header malformed:\n%s", doc)
	}
	if !strings.Contains(doc, "| file |  | file | the payload |\n") {
		t.Errorf("formdata row with empty value malformed:\n%s", doc)
	}
	if !strings.Contains(doc, "| label | avatar | text |  |\n") {
		t.Errorf("formdata row with empty description malformed:\n%s", doc)
	}
}

func TestRequestMarkdown_UnknownBodyModeIgnored(t *testing.T) {
	item := &postman.Item{
		Name: "GraphQL",
		Request: &postman.Request{
			Method: "POST",
			URL:    &postman.URL{Plain: "graphql"},
			Body:   &postman.Body{Mode: "graphql"},
		},
	}

	if doc := RequestMarkdown(item); strings.Contains(doc, "## Body") {
		t.Errorf("unknown body mode should not emit a Body section:\n%s", doc)
	}
}

func TestRequestMarkdown_NoRequestPayload(t *testing.T) {
	if doc := RequestMarkdown(&postman.Item{Name: "stray"}); doc != "" {
		t.Errorf("item without request payload should render nothing, got:\n%s", doc)
	}
}

func TestDocFileName(t *testing.T) {
	if got := DocFileName("Get User"); got != "get_user.md" {
		t.Errorf("DocFileName = %q, want get_user.md", got)
	}
}
