package core

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackcoderx/postdoc/pkg/postman"
)

const collectionDoc = `{"collection":{
	"info":{"name":"Demo API"},
	"item":[
		{"name":"Users","item":[
			{"name":"Get User","request":{"method":"GET","url":{"raw":"https://x.test/users/1?full=true","path":["users","1"]}}},
			{"name":"Create User","request":{"method":"POST","url":{"path":["users"]}}}
		]},
		{"name":"Ping","request":{"method":"GET","url":"ping"}}
	]
}}`

func newSyncServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/workspaces":
			w.Write([]byte(`{"workspaces":[{"id":"ws-1","name":"Team"}]}`))
		case "/collections":
			w.Write([]byte(`{"collections":[{"id":"c-1","name":"Demo API","uid":"owner-c-1"}]}`))
		case "/collections/owner-c-1":
			w.Write([]byte(collectionDoc))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSync_EndToEnd(t *testing.T) {
	srv := newSyncServer(t)
	client := postman.NewClient("key", postman.WithBaseURL(srv.URL))

	tmpDir := t.TempDir()
	cfg := Config{
		APIKey:       "key",
		Workspace:    "Team",
		Collection:   "Demo API",
		OutputDir:    filepath.Join(tmpDir, "docs"),
		EndpointsDir: filepath.Join(tmpDir, "endpoints"),
	}

	if err := Sync(context.Background(), client, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Raw document persisted.
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "collection.json")); err != nil {
		t.Errorf("collection.json not written: %v", err)
	}

	// Markdown tree mirrors folder nesting.
	for _, f := range []string{
		filepath.Join(cfg.OutputDir, "Users", "get_user.md"),
		filepath.Join(cfg.OutputDir, "Users", "create_user.md"),
		filepath.Join(cfg.OutputDir, "ping.md"),
	} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("expected doc %s: %v", f, err)
		}
	}

	// Endpoint modules: one per top-level folder plus general.
	users, err := os.ReadFile(filepath.Join(cfg.EndpointsDir, "users.js"))
	if err != nil {
		t.Fatalf("users.js not written: %v", err)
	}
	for _, want := range []string{"export const USERS", "getUser:", "createUser:", `endpoint: "/users/1"`} {
		if !strings.Contains(string(users), want) {
			t.Errorf("users.js missing %q:\n%s", want, users)
		}
	}

	general, err := os.ReadFile(filepath.Join(cfg.EndpointsDir, "general.js"))
	if err != nil {
		t.Fatalf("general.js not written: %v", err)
	}
	if !strings.Contains(string(general), "ping:") {
		t.Errorf("general.js missing ping entry:\n%s", general)
	}
}

func TestSync_IdempotentAcrossRuns(t *testing.T) {
	srv := newSyncServer(t)
	client := postman.NewClient("key", postman.WithBaseURL(srv.URL))

	tmpDir := t.TempDir()
	cfg := Config{
		APIKey:     "key",
		Collection: "Demo API",
		OutputDir:  filepath.Join(tmpDir, "docs"),
	}

	if err := Sync(context.Background(), client, cfg); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(cfg.OutputDir, "collection.json"))
	if err != nil {
		t.Fatal(err)
	}

	if err := Sync(context.Background(), client, cfg); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(cfg.OutputDir, "collection.json"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("collection.json differs between identical runs")
	}
}

func TestSync_UnknownWorkspaceDegrades(t *testing.T) {
	srv := newSyncServer(t)
	client := postman.NewClient("key", postman.WithBaseURL(srv.URL))

	cfg := Config{
		APIKey:     "key",
		Workspace:  "No Such Workspace",
		Collection: "Demo API",
		OutputDir:  filepath.Join(t.TempDir(), "docs"),
	}

	// The miss falls back to an unscoped search and the run succeeds.
	if err := Sync(context.Background(), client, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSync_MissingCollectionWritesNothing(t *testing.T) {
	srv := newSyncServer(t)
	client := postman.NewClient("key", postman.WithBaseURL(srv.URL))

	outputDir := filepath.Join(t.TempDir(), "docs")
	cfg := Config{
		APIKey:     "key",
		Collection: "No Such Collection",
		OutputDir:  outputDir,
	}

	err := Sync(context.Background(), client, cfg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), `"No Such Collection" not found`) {
		t.Errorf("error = %q, want it to name the collection", err)
	}

	if _, statErr := os.Stat(outputDir); !os.IsNotExist(statErr) {
		t.Errorf("output directory should not exist after a failed resolution")
	}
}

func TestSync_DirectIDSkipsSearch(t *testing.T) {
	requests := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests[r.URL.Path]++
		if r.URL.Path == "/collections/owner-c-1" {
			w.Write([]byte(collectionDoc))
			return
		}
		t.Errorf("unexpected request: %s", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	client := postman.NewClient("key", postman.WithBaseURL(srv.URL))

	cfg := Config{
		APIKey:       "key",
		CollectionID: "owner-c-1",
		OutputDir:    filepath.Join(t.TempDir(), "docs"),
	}
	if err := Sync(context.Background(), client, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests["/collections/owner-c-1"] != 1 {
		t.Errorf("collection fetched %d times, want 1", requests["/collections/owner-c-1"])
	}
}
