package core

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/blackcoderx/postdoc/pkg/postman"
	"github.com/blackcoderx/postdoc/pkg/render"
	"github.com/blackcoderx/postdoc/pkg/storage"
)

// Sync runs the full pipeline: resolve the collection, fetch it, persist
// the raw document and emit Markdown docs plus optional endpoint
// modules. It prints progress as it goes and stops at the first error;
// files already written stay in place.
func Sync(ctx context.Context, client *postman.Client, cfg Config) error {
	workspaceID := ""
	if cfg.Workspace != "" {
		ws, err := client.FindWorkspace(ctx, cfg.Workspace)
		if err != nil {
			return err
		}
		if ws == nil {
			fmt.Printf("⚠ workspace %q not found, searching all collections\n", cfg.Workspace)
		} else {
			workspaceID = ws.ID
			fmt.Printf("✓ resolved workspace %q (%s)\n", cfg.Workspace, ws.ID)
		}
	}

	uid := cfg.CollectionID
	if uid == "" {
		summary, err := client.FindCollection(ctx, cfg.Collection, workspaceID)
		if err != nil {
			return err
		}
		uid = summary.UID
		if uid == "" {
			uid = summary.ID
		}
		fmt.Printf("✓ resolved collection %q (%s)\n", cfg.Collection, uid)
	}

	col, raw, err := client.FetchCollection(ctx, uid)
	if err != nil {
		return err
	}
	fmt.Printf("✓ fetched collection %q\n", col.Info.Name)

	if problems, err := ValidateCollection(raw); err != nil {
		fmt.Printf("⚠ schema check skipped: %v\n", err)
	} else {
		for _, p := range problems {
			fmt.Printf("⚠ collection document: %s\n", p)
		}
	}

	if err := storage.SaveCollection(cfg.OutputDir, raw); err != nil {
		return err
	}
	fmt.Printf("✓ saved %s\n", filepath.Join(cfg.OutputDir, storage.CollectionFileName))

	walker := NewWalker(cfg.EndpointsEnabled())
	if err := walker.Walk(col.Items, cfg.OutputDir); err != nil {
		return err
	}
	fmt.Printf("✓ wrote %d doc(s) under %s\n", walker.Docs(), cfg.OutputDir)

	if cfg.EndpointsEnabled() {
		if err := storage.EnsureDir(cfg.EndpointsDir); err != nil {
			return err
		}
		groups := walker.Groups()
		for _, g := range groups {
			module := render.EndpointModule(g.Name, g.Requests)
			path := filepath.Join(cfg.EndpointsDir, render.ModuleFileName(g.Name))
			if err := storage.WriteDoc(path, module); err != nil {
				return err
			}
		}
		fmt.Printf("✓ wrote %d endpoint module(s) under %s\n", len(groups), cfg.EndpointsDir)
	}

	return nil
}
