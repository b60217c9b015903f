// Package core wires the sync pipeline together: configuration checks,
// collection resolution, tree traversal and file output.
package core

import "fmt"

// DefaultOutputDir is where docs land when no output directory is
// configured.
const DefaultOutputDir = "docs"

// Config holds everything one sync run needs. Values come from the
// environment, an optional .env file and the config file, in the order
// the root command layers them.
type Config struct {
	APIKey       string // Postman API key, required
	Workspace    string // optional workspace name scoping the search
	Collection   string // collection name, required unless CollectionID is set
	CollectionID string // direct collection UID, skips the name search
	OutputDir    string // destination for collection.json and Markdown docs
	EndpointsDir string // destination for endpoint modules; empty disables them
}

// Validate reports configuration errors that must stop the run before
// any network activity.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("POSTMAN_API_KEY is not set")
	}
	if c.Collection == "" && c.CollectionID == "" {
		return fmt.Errorf("set POSTMAN_COLLECTION or POSTMAN_COLLECTION_ID")
	}
	return nil
}

// EndpointsEnabled reports whether endpoint-module generation is on.
func (c *Config) EndpointsEnabled() bool {
	return c.EndpointsDir != ""
}
