package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .postdoc/config.yaml",
	Long: `Creates the .postdoc directory with a commented default configuration.

The API key is read from the POSTMAN_API_KEY environment variable (or a
.env file) and is deliberately not stored in the config file.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := filepath.Join(".postdoc", "config.yaml")

	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configFile)
	}

	if err := os.MkdirAll(".postdoc", 0755); err != nil {
		return fmt.Errorf("failed to create .postdoc folder: %w", err)
	}

	config := map[string]interface{}{
		"postman": map[string]interface{}{
			"workspace":     "",
			"collection":    "",
			"collection_id": "",
		},
		"output": map[string]interface{}{
			"docs":      "docs",
			"endpoints": "",
		},
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	header := `# postdoc configuration
# The API key comes from POSTMAN_API_KEY (environment or .env file).
# Set output.endpoints to a directory to enable endpoint-module generation.

`
	if err := os.WriteFile(configFile, []byte(header+string(data)), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file: %s\n", configFile)
	fmt.Println()
	fmt.Println("Set POSTMAN_API_KEY and POSTMAN_COLLECTION, then run:")
	fmt.Println()
	fmt.Println("  postdoc")
	fmt.Println()
	return nil
}
