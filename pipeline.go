package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Publishing too fast trips the dev.to API's rate limit, so consecutive
// calls are spaced by at least this interval.
const defaultPublishInterval = 3 * time.Second

// Pipeline publishes articles one at a time, in input order, with a minimum
// spacing between remote calls.
type Pipeline struct {
	publisher Publisher
	limiter   *rate.Limiter
	logger    *log.Logger
}

// NewPipeline creates a pipeline spacing publish calls by interval. Burst 1
// lets the first call through immediately; every later call waits for the
// interval to elapse since the previous one started.
func NewPipeline(publisher Publisher, interval time.Duration, logger *log.Logger) *Pipeline {
	return &Pipeline{
		publisher: publisher,
		limiter:   rate.NewLimiter(rate.Every(interval), 1),
		logger:    logger,
	}
}

// Run publishes every config in order and returns one status per config,
// output index matching input index. A non-nil error means a publish call
// failed outright: remaining configs are never attempted and no statuses
// are returned.
func (p *Pipeline) Run(ctx context.Context, configs []ArticleConfig, token string) ([]ArticlePublishedStatus, error) {
	statuses := make([]ArticlePublishedStatus, 0, len(configs))

	p.logger.Printf("Publishing %d articles...", len(configs))

	for i, cfg := range configs {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting to publish %s: %w", cfg.RelativePathToArticle, err)
		}

		p.logger.Printf("[%d/%d] Publishing: %s", i+1, len(configs), cfg.RelativePathToArticle)

		status, err := p.publisher.Publish(ctx, cfg, token)
		if err != nil {
			return nil, fmt.Errorf("publishing %s: %w", cfg.RelativePathToArticle, err)
		}
		statuses = append(statuses, status)

		if status.Failed() {
			p.logger.Printf("✗ Failed %s: %v", cfg.RelativePathToArticle, status.Error)
		} else {
			p.logger.Printf("✓ %s: %s", cfg.RelativePathToArticle, status.Status)
		}
	}

	return statuses, nil
}
