package main

import (
	"context"
	"io"

	"github.com/novelgrab/novelgrab"
)

// BatchRunner runs an ordered batch of URLs and writes the artifact.
type BatchRunner interface {
	Run(ctx context.Context, urls []string, selector string, appendMode bool, progress novelgrab.ProgressFunc) (*novelgrab.BatchSummary, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Runner BatchRunner
}

// ScrapeCmd handles the main scrape operation.
type ScrapeCmd struct {
	URLs     []string
	Selector string
	Output   string
	Append   bool
}
