package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const defaultArticlesConfigPath = "dev-to-git.json"

// Options holds the resolved inputs for one run.
type Options struct {
	ConfigPath    string
	ManifestPath  string
	RepositoryURL string
	DevToToken    string
	Interval      time.Duration
	Silent        bool
}

// loadArticlesConfig reads the JSON articles configuration file and attaches
// the resolved repository to every entry, preserving file order.
func loadArticlesConfig(path string, repo Repository) ([]ArticleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading articles config %s: %w", path, err)
	}

	var entries []ArticleConfigFile
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing articles config %s: %w", path, err)
	}

	// TODO: validate each entry (non-zero id, existing article path) here
	// instead of letting the publish call surface the problem.
	configs := make([]ArticleConfig, 0, len(entries))
	for _, entry := range entries {
		configs = append(configs, ArticleConfig{
			ArticleConfigFile: entry,
			Repository:        repo,
		})
	}

	return configs, nil
}
