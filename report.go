package main

import (
	"fmt"
	"strings"
)

// summarize renders one line per publish outcome.
func summarize(statuses []ArticlePublishedStatus) string {
	if len(statuses) == 0 {
		return "No articles to publish."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Publish report (%d articles):\n", len(statuses))
	for _, status := range statuses {
		title := status.ArticleTitle
		if title == "" {
			title = status.Path
		}
		if status.Error != nil {
			fmt.Fprintf(&b, "✗ #%d %s: %s (%v)\n", status.ArticleID, title, status.Status, status.Error)
		} else {
			fmt.Fprintf(&b, "✓ #%d %s: %s\n", status.ArticleID, title, status.Status)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// anyFailed reports whether any article ended in a failing state. Every
// entry is inspected so the summary always covers the full run.
func anyFailed(statuses []ArticlePublishedStatus) bool {
	failed := false
	for _, status := range statuses {
		if status.Failed() {
			failed = true
		}
	}
	return failed
}
