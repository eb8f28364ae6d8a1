package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/comments"
	"github.com/iksnae/comment-filter/internal/store"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	dbPath     string
	cfg        *internal.Config
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "comment-filter",
	Short: "Watch a comment user filter hide and show comments",
	Long: `A demo of a collaborative commenting user filter.

Ten demo users each leave a comment on a shared document. Log in as any of
them, then apply a filter that keeps only the first five users' comments
visible in both the comment sidebar and the commented content, and clear it
again. Every step is reported in a timestamped status log.

Quick Start:
  comment-filter comments seed            # One comment per demo user
  comment-filter run                      # Interactive terminal page
  comment-filter serve                    # Same page in the browser
  comment-filter demo --as user-7         # Headless walkthrough`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		path, required := configPath, configPath != ""
		if path == "" {
			var err error
			if path, err = internal.DefaultConfigPath(); err != nil {
				internal.LogWarn("no default config path: %v", err)
				path = ""
			}
		}
		c, err := internal.LoadConfig(path, required)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPath != "" {
			c.DatabasePath = dbPath
		}
		cfg = c
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.comment-filter/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Comment database path (overrides config)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openStore opens the configured comment database, creating its directory
func openStore() (*store.Store, error) {
	if cfg.DatabasePath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	s, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open comment database: %w", err)
	}
	return s, nil
}

// newPage builds the demo page on an initialised local comment client
func newPage(s *store.Store) (*internal.Page, *comments.Provider, error) {
	provider := comments.NewProvider(s, cfg.APIKey)
	if err := provider.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialise comment client: %w", err)
	}
	page := internal.NewPage(provider, internal.PageOptions{
		Organization: cfg.Organization,
		Document:     cfg.Document,
	})
	return page, provider, nil
}

// document returns the configured document, registered in s
func document(s *store.Store) (internal.Document, error) {
	if err := s.UpsertDocument(cfg.Document); err != nil {
		return internal.Document{}, fmt.Errorf("failed to register document: %w", err)
	}
	return cfg.Document, nil
}
