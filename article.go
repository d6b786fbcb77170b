package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/adrg/frontmatter"
)

const defaultAPIBaseURL = "https://dev.to/api"

// Publisher publishes one article configuration against the remote platform.
// Expected failures (remote rejection, bad front matter) come back as a
// status, not an error; a non-nil error is an unrecoverable fault.
type Publisher interface {
	Publish(ctx context.Context, cfg ArticleConfig, token string) (ArticlePublishedStatus, error)
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// articleFrontMatter is the metadata block dev.to requires at the top of a post.
type articleFrontMatter struct {
	Title     string `yaml:"title"`
	Published bool   `yaml:"published"`
}

// apiArticle is the subset of the dev.to article payload this tool reads.
type apiArticle struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	BodyMarkdown string `json:"body_markdown"`
}

type apiArticleRequest struct {
	Article struct {
		BodyMarkdown string `json:"body_markdown"`
	} `json:"article"`
}

// Relative image links like ![alt](./assets/pic.png); dev.to needs absolute
// URLs, so they are rewritten against the repository's raw content host.
var relativeImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(\./([^)]+)\)`)

// DevToPublisher publishes articles through the dev.to REST API.
type DevToPublisher struct {
	client  *http.Client
	baseURL string
}

// NewDevToPublisher creates a publisher targeting the dev.to API.
func NewDevToPublisher() *DevToPublisher {
	return &DevToPublisher{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultAPIBaseURL,
	}
}

// Publish reads the article file, validates its front matter, rewrites
// relative image links and pushes the body to dev.to. A failure to read the
// local file is returned as an error; everything else becomes a status.
func (p *DevToPublisher) Publish(ctx context.Context, cfg ArticleConfig, token string) (ArticlePublishedStatus, error) {
	status := ArticlePublishedStatus{
		ArticleID: cfg.ID,
		Path:      cfg.RelativePathToArticle,
	}

	raw, err := os.ReadFile(cfg.RelativePathToArticle)
	if err != nil {
		return status, fmt.Errorf("reading article %s: %w", cfg.RelativePathToArticle, err)
	}

	var matter articleFrontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(raw), &matter); err != nil {
		status.Status = StatusFailedFrontMatter
		status.Error = fmt.Errorf("parsing front matter: %w", err)
		return status, nil
	}
	if matter.Title == "" {
		status.Status = StatusFailedFrontMatter
		status.Error = fmt.Errorf("front matter of %s has no title", cfg.RelativePathToArticle)
		return status, nil
	}
	status.ArticleTitle = matter.Title

	// dev.to parses the front matter itself, so the whole file is the body.
	body := rewriteImageLinks(string(raw), cfg.Repository)

	if cfg.ID == 0 {
		return p.create(ctx, status, body, token), nil
	}

	remote, err := p.fetchArticle(ctx, cfg.ID, token)
	if err == nil && remote.BodyMarkdown == body {
		status.Status = StatusUnchanged
		return status, nil
	}

	return p.update(ctx, status, cfg.ID, body, token), nil
}

func (p *DevToPublisher) create(ctx context.Context, status ArticlePublishedStatus, body, token string) ArticlePublishedStatus {
	url := p.baseURL + "/articles"
	article, err := p.send(ctx, http.MethodPost, url, body, token)
	if err != nil {
		status.Status = StatusError
		status.Error = err
		return status
	}
	status.ArticleID = article.ID
	status.Status = StatusCreated
	return status
}

func (p *DevToPublisher) update(ctx context.Context, status ArticlePublishedStatus, id int, body, token string) ArticlePublishedStatus {
	url := fmt.Sprintf("%s/articles/%d", p.baseURL, id)
	if _, err := p.send(ctx, http.MethodPut, url, body, token); err != nil {
		status.Status = StatusError
		status.Error = err
		return status
	}
	status.Status = StatusUpdated
	return status
}

// fetchArticle retrieves the live article so an unchanged body can skip the
// write entirely.
func (p *DevToPublisher) fetchArticle(ctx context.Context, id int, token string) (*apiArticle, error) {
	url := fmt.Sprintf("%s/articles/%d", p.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("api-key", token)

	return p.do(req)
}

// send pushes the article body with the given method and decodes the
// returned article.
func (p *DevToPublisher) send(ctx context.Context, method, url, body, token string) (*apiArticle, error) {
	var payload apiArticleRequest
	payload.Article.BodyMarkdown = body

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding article payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("api-key", token)
	req.Header.Set("Content-Type", "application/json")

	return p.do(req)
}

func (p *DevToPublisher) do(req *http.Request) (*apiArticle, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.String()}
	}

	var article apiArticle
	if err := json.NewDecoder(resp.Body).Decode(&article); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", req.URL, err)
	}

	return &article, nil
}

// rewriteImageLinks replaces relative image links with absolute URLs served
// from the repository's raw content host.
func rewriteImageLinks(body string, repo Repository) string {
	prefix := fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/master/", repo.Username, repo.Name)
	return relativeImagePattern.ReplaceAllString(body, "![$1]("+prefix+"$2)")
}
