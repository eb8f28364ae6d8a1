package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("COMMENT_FILTER_API_KEY", "")
	t.Setenv("COMMENT_FILTER_DB", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.APIKey != DefaultAPIKey {
		t.Errorf("APIKey = %q, want default", cfg.APIKey)
	}
	if cfg.Organization.ID != "org-1" || cfg.Document.ID != "doc-filter-test" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath should default to a file under the config dir")
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("LoadConfig() error = %v, want *ConfigError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`api_key: from-file
organization:
  id: org-2
document:
  id: doc-2
  name: Second Doc
database_path: /tmp/from-file.db
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COMMENT_FILTER_API_KEY", "")
	t.Setenv("COMMENT_FILTER_DB", "/tmp/from-env.db")

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.APIKey != "from-file" {
		t.Errorf("APIKey = %q, want from-file", cfg.APIKey)
	}
	if cfg.DatabasePath != "/tmp/from-env.db" {
		t.Errorf("DatabasePath = %q, env should win", cfg.DatabasePath)
	}
	if cfg.Organization.Name != "org-2" {
		t.Errorf("Organization.Name = %q, should fall back to the id", cfg.Organization.Name)
	}
	if cfg.Document.Name != "Second Doc" {
		t.Errorf("Document.Name = %q", cfg.Document.Name)
	}
}

func TestLoadConfig_NamesFollowIDs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantOrg Organization
		wantDoc Document
	}{
		{
			name:    "ids only",
			content: "organization:\n  id: org-2\ndocument:\n  id: doc-2\n",
			wantOrg: Organization{ID: "org-2", Name: "org-2"},
			wantDoc: Document{ID: "doc-2", Name: "doc-2"},
		},
		{
			name:    "ids and names",
			content: "organization:\n  id: org-2\n  name: Globex\ndocument:\n  id: doc-2\n  name: Second Doc\n",
			wantOrg: Organization{ID: "org-2", Name: "Globex"},
			wantDoc: Document{ID: "doc-2", Name: "Second Doc"},
		},
		{
			name:    "names only",
			content: "organization:\n  name: Globex\n",
			wantOrg: Organization{ID: "org-1", Name: "Globex"},
			wantDoc: Document{ID: "doc-filter-test", Name: "Filter Test Doc"},
		},
		{
			name:    "untouched",
			content: "listen_addr: 127.0.0.1:9000\n",
			wantOrg: Organization{ID: "org-1", Name: "Acme Corporation"},
			wantDoc: Document{ID: "doc-filter-test", Name: "Filter Test Doc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COMMENT_FILTER_API_KEY", "")
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadConfig(path, true)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Organization != tt.wantOrg {
				t.Errorf("Organization = %+v, want %+v", cfg.Organization, tt.wantOrg)
			}
			if cfg.Document != tt.wantDoc {
				t.Errorf("Document = %+v, want %+v", cfg.Document, tt.wantDoc)
			}
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{name: "empty api key", content: "api_key: \"\"\n", wantField: "api_key"},
		{name: "empty document", content: "document:\n  id: \"\"\n", wantField: "document.id"},
		{name: "bad yaml", content: "api_key: [unterminated\n", wantField: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COMMENT_FILTER_API_KEY", "")
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadConfig(path, true)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("LoadConfig() error = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	t.Setenv("COMMENT_FILTER_API_KEY", "")
	t.Setenv("COMMENT_FILTER_DB", "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.MetricsAddr = "127.0.0.1:9100"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.MetricsAddr != "127.0.0.1:9100" || loaded.Document != cfg.Document {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}
