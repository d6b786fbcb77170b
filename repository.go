package main

import (
	"encoding/json"
	"errors"
	"os"
	"regexp"
)

const defaultManifestPath = "package.json"

// ErrRepositoryUnresolved means neither the explicit URL nor the manifest
// yielded a usable repository; nothing can be published without one.
var ErrRepositoryUnresolved = errors.New("unable to determine the repository: pass --repository-url or declare a repository.url ending in .git in package.json")

// The two path segments immediately preceding ".git" are the username and
// the repository name.
var repositoryURLPattern = regexp.MustCompile(`/([^/]+)/([^/]+)\.git$`)

// packageManifest is the subset of package.json consulted as a fallback
// source for the repository URL.
type packageManifest struct {
	Repository struct {
		URL string `json:"url"`
	} `json:"repository"`
}

// resolveRepository derives the repository identity from the explicit URL,
// falling back to the manifest's declared repository URL.
func resolveRepository(explicitURL, manifestPath string) (Repository, error) {
	if repo, ok := matchRepositoryURL(explicitURL); ok {
		return repo, nil
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return Repository{}, ErrRepositoryUnresolved
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Repository{}, ErrRepositoryUnresolved
	}

	if repo, ok := matchRepositoryURL(manifest.Repository.URL); ok {
		return repo, nil
	}

	return Repository{}, ErrRepositoryUnresolved
}

// matchRepositoryURL extracts {username, name} from a URL of the form
// <anything>/<username>/<name>.git.
func matchRepositoryURL(url string) (Repository, bool) {
	matches := repositoryURLPattern.FindStringSubmatch(url)
	if matches == nil {
		return Repository{}, false
	}
	return Repository{Username: matches[1], Name: matches[2]}, true
}
