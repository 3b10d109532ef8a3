// Package slog provides logging decorators for pagemark services.
package slog

import (
	"log/slog"
	"time"

	"github.com/pagemark/pagemark"
)

// Ensure Engine implements pagemark.Engine.
var _ pagemark.Engine = (*Engine)(nil)

// Engine wraps a pagemark.Engine with structured logging of each extraction:
// mode, duration, final score, candidate source and fallback tier.
type Engine struct {
	next   pagemark.Engine
	logger *slog.Logger
}

// NewEngine creates a new logging Engine decorator.
func NewEngine(next pagemark.Engine, logger *slog.Logger) *Engine {
	return &Engine{next: next, logger: logger}
}

// Extract delegates to the wrapped engine and logs the outcome.
func (e *Engine) Extract(html string, cfg pagemark.Config) (*pagemark.Result, error) {
	begin := time.Now()
	result, err := e.next.Extract(html, cfg)
	if err != nil {
		e.logger.Error("extraction failed",
			"mode", string(cfg.Mode),
			"url", cfg.SourceURL,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	e.logger.Info("extraction",
		"mode", string(cfg.Mode),
		"url", cfg.SourceURL,
		"duration", time.Since(begin),
		"score", result.Score,
		"source", string(result.Source),
		"fallback", result.Fallback,
		"chunks", len(result.Chunks),
	)
	return result, nil
}
