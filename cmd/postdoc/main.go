package main

import (
	"fmt"
	"os"

	"github.com/blackcoderx/postdoc/pkg/core"
	"github.com/blackcoderx/postdoc/pkg/postman"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	cfgFile      string
	workspace    string
	collection   string
	collectionID string
	outputDir    string
	endpointsDir string

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	rootCmd = &cobra.Command{
		Use:   "postdoc",
		Short: "postdoc - turn a Postman collection into Markdown docs",
		Long: `postdoc fetches a collection from the Postman API and converts it into
local Markdown files, one per request, mirroring the collection's folder
structure. It can additionally generate JavaScript endpoint-constant
modules, one per top-level folder.

Configuration comes from environment variables (POSTMAN_API_KEY,
POSTMAN_COLLECTION, ...), an optional .env file, or .postdoc/config.yaml.`,
		Run: func(cmd *cobra.Command, args []string) {
			// Load .env file if it exists (optional, warn if malformed)
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
			}

			cfg := configFromViper()
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			client := postman.NewClient(cfg.APIKey)
			if err := core.Sync(cmd.Context(), client, cfg); err != nil {
				fmt.Fprintln(os.Stderr, errorStyle.Render("✗ sync failed"))
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			fmt.Println(successStyle.Render("✓ documentation sync complete"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .postdoc/config.yaml)")

	rootCmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace name to scope the collection search")
	rootCmd.Flags().StringVar(&collection, "collection", "", "Collection name to resolve")
	rootCmd.Flags().StringVar(&collectionID, "collection-id", "", "Collection UID (skips the name search)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for Markdown docs (default \"docs\")")
	rootCmd.Flags().StringVarP(&endpointsDir, "endpoints", "e", "", "Output directory for endpoint modules (disabled when empty)")

	viper.BindPFlag("postman.workspace", rootCmd.Flags().Lookup("workspace"))
	viper.BindPFlag("postman.collection", rootCmd.Flags().Lookup("collection"))
	viper.BindPFlag("postman.collection_id", rootCmd.Flags().Lookup("collection-id"))
	viper.BindPFlag("output.docs", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("output.endpoints", rootCmd.Flags().Lookup("endpoints"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".postdoc")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetDefault("output.docs", core.DefaultOutputDir)

	viper.BindEnv("postman.api_key", "POSTMAN_API_KEY")
	viper.BindEnv("postman.workspace", "POSTMAN_WORKSPACE")
	viper.BindEnv("postman.collection", "POSTMAN_COLLECTION")
	viper.BindEnv("postman.collection_id", "POSTMAN_COLLECTION_ID")
	viper.BindEnv("output.docs", "POSTDOC_OUTPUT_DIR")
	viper.BindEnv("output.endpoints", "POSTDOC_ENDPOINTS_DIR")

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func configFromViper() core.Config {
	return core.Config{
		APIKey:       viper.GetString("postman.api_key"),
		Workspace:    viper.GetString("postman.workspace"),
		Collection:   viper.GetString("postman.collection"),
		CollectionID: viper.GetString("postman.collection_id"),
		OutputDir:    viper.GetString("output.docs"),
		EndpointsDir: viper.GetString("output.endpoints"),
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the postdoc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("postdoc", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
