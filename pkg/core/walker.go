package core

import (
	"path/filepath"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/naming"
	"github.com/blackcoderx/postdoc/pkg/postman"
	"github.com/blackcoderx/postdoc/pkg/render"
	"github.com/blackcoderx/postdoc/pkg/storage"
)

// GeneralGroup is the endpoint-module group for requests that sit at the
// collection root, outside any folder.
const GeneralGroup = "general"

// Group is the ordered sequence of requests collected under one
// top-level folder, flattened across nested subfolders.
type Group struct {
	Name     string
	Requests []postman.Item
}

// Walker traverses a collection tree depth-first, mirroring its folder
// nesting as directories and rendering one Markdown file per request.
// With grouping enabled it additionally collects every request under its
// top-level folder for endpoint-module generation.
//
// Sibling nodes whose normalized names collide overwrite each other
// silently; the walker does not disambiguate.
type Walker struct {
	grouping bool
	groups   map[string][]postman.Item
	order    []string
	docs     int
}

// NewWalker creates a walker. Grouping is enabled only when endpoint
// modules will be generated.
func NewWalker(grouping bool) *Walker {
	return &Walker{
		grouping: grouping,
		groups:   make(map[string][]postman.Item),
	}
}

// Walk writes the Markdown tree for the collection's top-level items
// into root. Directories are created before anything is written into
// them; creation is idempotent.
func (w *Walker) Walk(items []postman.Item, root string) error {
	if err := storage.EnsureDir(root); err != nil {
		return err
	}
	for i := range items {
		item := &items[i]
		switch item.Kind() {
		case postman.KindFolder:
			group := strings.ToLower(naming.FileSafe(item.Name))
			if err := w.walkFolder(item, root, group); err != nil {
				return err
			}
		case postman.KindRequest:
			if err := w.writeRequest(item, root, GeneralGroup); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkFolder creates the folder's directory and recurses. Nested
// subfolders keep the top-level group key so their requests flatten into
// the same endpoint module.
func (w *Walker) walkFolder(folder *postman.Item, parentDir, group string) error {
	dir := filepath.Join(parentDir, naming.FileSafe(folder.Name))
	if err := storage.EnsureDir(dir); err != nil {
		return err
	}
	for i := range folder.Items {
		item := &folder.Items[i]
		switch item.Kind() {
		case postman.KindFolder:
			if err := w.walkFolder(item, dir, group); err != nil {
				return err
			}
		case postman.KindRequest:
			if err := w.writeRequest(item, dir, group); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) writeRequest(item *postman.Item, dir, group string) error {
	doc := render.RequestMarkdown(item)
	if doc == "" {
		return nil
	}
	path := filepath.Join(dir, render.DocFileName(item.Name))
	if err := storage.WriteDoc(path, doc); err != nil {
		return err
	}
	w.docs++
	if w.grouping {
		w.collect(group, *item)
	}
	return nil
}

func (w *Walker) collect(group string, item postman.Item) {
	if _, ok := w.groups[group]; !ok {
		w.order = append(w.order, group)
	}
	w.groups[group] = append(w.groups[group], item)
}

// Docs reports how many Markdown files were written.
func (w *Walker) Docs() int {
	return w.docs
}

// Groups returns the collected folder groups in first-seen order. It is
// empty unless grouping was enabled.
func (w *Walker) Groups() []Group {
	groups := make([]Group, 0, len(w.order))
	for _, name := range w.order {
		groups = append(groups, Group{Name: name, Requests: w.groups[name]})
	}
	return groups
}
