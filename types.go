package main

// Repository identifies the source-code repository an article's relative
// image links are resolved against. Resolved once per run and shared
// read-only across all article configurations.
type Repository struct {
	Username string
	Name     string
}

// ArticleConfigFile is one entry of the on-disk articles configuration file.
type ArticleConfigFile struct {
	ID                    int    `json:"id"`
	RelativePathToArticle string `json:"relativePathToArticle"`
}

// ArticleConfig is a configuration entry with the resolved repository attached.
type ArticleConfig struct {
	ArticleConfigFile
	Repository Repository
}

// UpdateStatus classifies the outcome of one publish attempt.
type UpdateStatus string

const (
	StatusCreated           UpdateStatus = "created"
	StatusUpdated           UpdateStatus = "updated"
	StatusUnchanged         UpdateStatus = "unchanged"
	StatusError             UpdateStatus = "error"
	StatusFailedFrontMatter UpdateStatus = "failed front matter"
)

// ArticlePublishedStatus tracks the outcome of publishing one article.
type ArticlePublishedStatus struct {
	ArticleID    int
	ArticleTitle string
	Path         string
	Status       UpdateStatus
	Error        error
}

// Failed reports whether this status marks the overall run as failed.
func (s ArticlePublishedStatus) Failed() bool {
	return s.Status == StatusError || s.Status == StatusFailedFrontMatter
}
