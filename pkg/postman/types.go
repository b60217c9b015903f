// Package postman models the Postman API wire format and provides a small
// read-only client for resolving and fetching collections.
package postman

import "encoding/json"

// CollectionResponse is the envelope returned by GET /collections/{uid}.
type CollectionResponse struct {
	Collection Collection `json:"collection"`
}

// Collection is a named tree of folders and requests.
type Collection struct {
	Info  Info   `json:"info"`
	Items []Item `json:"item"`
}

// Info contains collection metadata.
type Info struct {
	PostmanID   string `json:"_postman_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema,omitempty"`
}

// ItemKind classifies a collection node. Folder and request variants are
// distinguished explicitly so traversal can be exhaustive instead of
// probing optional fields at every call site.
type ItemKind int

const (
	// KindNone marks a node that carries neither children nor a request
	// payload. Such nodes are skipped during traversal.
	KindNone ItemKind = iota
	// KindFolder marks a grouping node with child items.
	KindFolder
	// KindRequest marks a node describing one HTTP endpoint.
	KindRequest
)

// Item is one node in the collection tree: a folder of child items or a
// single request with optional recorded responses.
type Item struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Items       []Item     `json:"item,omitempty"`
	Request     *Request   `json:"request,omitempty"`
	Responses   []Response `json:"response,omitempty"`
}

// Kind reports whether this item is a folder, a request, or neither.
func (it *Item) Kind() ItemKind {
	switch {
	case it.Items != nil:
		return KindFolder
	case it.Request != nil:
		return KindRequest
	default:
		return KindNone
	}
}

// Request describes one HTTP endpoint.
type Request struct {
	Method      string   `json:"method,omitempty"`
	Header      []Header `json:"header,omitempty"`
	Body        *Body    `json:"body,omitempty"`
	URL         *URL     `json:"url,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Header is one request header row.
type Header struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// Body is a request body descriptor. Only the "raw" and "formdata" modes
// are rendered; other modes are carried but ignored.
type Body struct {
	Mode       string      `json:"mode"`
	Raw        string      `json:"raw,omitempty"`
	FormData   []FormField `json:"formdata,omitempty"`
	URLEncoded []FormField `json:"urlencoded,omitempty"`
}

// FormField is one formdata or urlencoded body field.
type FormField struct {
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// QueryParam is one URL query parameter triple.
type QueryParam struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// URL is a request URL. The wire format encodes it either as a bare string
// or as a structured object with raw text, path segments and query
// parameters; Plain is set only for the bare-string form.
type URL struct {
	Plain    string       `json:"-"`
	Raw      string       `json:"raw,omitempty"`
	Protocol string       `json:"protocol,omitempty"`
	Host     []string     `json:"host,omitempty"`
	Path     []string     `json:"path,omitempty"`
	Query    []QueryParam `json:"query,omitempty"`
}

// UnmarshalJSON accepts both the bare-string and the object URL encodings.
func (u *URL) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*u = URL{Plain: s}
		return nil
	}
	type plain URL
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = URL(p)
	return nil
}

// Display returns the URL as it should be shown in documentation: the
// bare-string form when present, otherwise the raw text.
func (u *URL) Display() string {
	if u == nil {
		return ""
	}
	if u.Plain != "" {
		return u.Plain
	}
	return u.Raw
}

// Response is one recorded sample response.
type Response struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Code   int    `json:"code"`
	Body   string `json:"body"`
}

// Workspace is an organizational container for collections.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// WorkspaceListResponse is the envelope returned by GET /workspaces.
type WorkspaceListResponse struct {
	Workspaces []Workspace `json:"workspaces"`
}

// CollectionSummary is one entry in a collection listing.
type CollectionSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	UID  string `json:"uid"`
}

// CollectionListResponse is the envelope returned by GET /collections.
type CollectionListResponse struct {
	Collections []CollectionSummary `json:"collections"`
}
