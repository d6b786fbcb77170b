package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArticlesConfig(t *testing.T) {
	tempDir := t.TempDir()
	repo := Repository{Username: "alice", Name: "blog"}

	path := filepath.Join(tempDir, "dev-to-git.json")
	content := `[
		{"id": 11, "relativePathToArticle": "./posts/first.md"},
		{"id": 22, "relativePathToArticle": "./posts/second.md"}
	]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	configs, err := loadArticlesConfig(path, repo)
	if err != nil {
		t.Fatalf("loadArticlesConfig() error = %v", err)
	}

	if len(configs) != 2 {
		t.Fatalf("got %d configs, want 2", len(configs))
	}
	if configs[0].ID != 11 || configs[1].ID != 22 {
		t.Errorf("config order not preserved: got ids %d, %d", configs[0].ID, configs[1].ID)
	}
	if configs[0].RelativePathToArticle != "./posts/first.md" {
		t.Errorf("path = %q, want %q", configs[0].RelativePathToArticle, "./posts/first.md")
	}
	for i, cfg := range configs {
		if cfg.Repository != repo {
			t.Errorf("configs[%d].Repository = %+v, want %+v", i, cfg.Repository, repo)
		}
	}
}

func TestLoadArticlesConfigEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev-to-git.json")
	if err := os.WriteFile(path, []byte(`[]`), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	configs, err := loadArticlesConfig(path, Repository{})
	if err != nil {
		t.Fatalf("loadArticlesConfig() error = %v", err)
	}
	if len(configs) != 0 {
		t.Errorf("got %d configs, want 0", len(configs))
	}
}

func TestLoadArticlesConfigErrors(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		setup   func() string
	}{
		{
			"missing file",
			func() string { return filepath.Join(tempDir, "nope.json") },
		},
		{
			"invalid json",
			func() string {
				path := filepath.Join(tempDir, "broken.json")
				os.WriteFile(path, []byte(`{not json`), 0644)
				return path
			},
		},
		{
			"not an array",
			func() string {
				path := filepath.Join(tempDir, "object.json")
				os.WriteFile(path, []byte(`{"id": 1}`), 0644)
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadArticlesConfig(tt.setup(), Repository{}); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}
