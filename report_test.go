package main

import (
	"errors"
	"strings"
	"testing"
)

func TestAnyFailed(t *testing.T) {
	tests := []struct {
		name     string
		statuses []ArticlePublishedStatus
		want     bool
	}{
		{
			"failure in the middle",
			[]ArticlePublishedStatus{
				{Status: StatusCreated},
				{Status: StatusError},
				{Status: StatusCreated},
			},
			true,
		},
		{
			"all successful",
			[]ArticlePublishedStatus{
				{Status: StatusCreated},
				{Status: StatusUpdated},
				{Status: StatusUnchanged},
			},
			false,
		},
		{
			"front matter failure",
			[]ArticlePublishedStatus{
				{Status: StatusUnchanged},
				{Status: StatusFailedFrontMatter},
			},
			true,
		},
		{"empty run", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := anyFailed(tt.statuses); got != tt.want {
				t.Errorf("anyFailed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	statuses := []ArticlePublishedStatus{
		{ArticleID: 1, ArticleTitle: "First post", Status: StatusCreated},
		{ArticleID: 2, Path: "./posts/second.md", Status: StatusError, Error: errors.New("HTTP 422")},
	}

	summary := summarize(statuses)

	if !strings.Contains(summary, "First post") {
		t.Error("summary missing article title")
	}
	if !strings.Contains(summary, string(StatusCreated)) {
		t.Error("summary missing created status")
	}
	if !strings.Contains(summary, "./posts/second.md") {
		t.Error("summary should fall back to the path when the title is unknown")
	}
	if !strings.Contains(summary, "HTTP 422") {
		t.Error("summary missing error detail")
	}

	lines := strings.Split(summary, "\n")
	if len(lines) != 3 {
		t.Errorf("summary has %d lines, want 3 (header + one per article)", len(lines))
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := summarize(nil); got != "No articles to publish." {
		t.Errorf("summarize(nil) = %q", got)
	}
}
