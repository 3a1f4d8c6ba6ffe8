package main

import (
	"context"
	"io"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Categories quotes.CategoryService
	Quotes     quotes.QuoteService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Scrape pending categories and export the results"`
	Seed   SeedCmd   `cmd:"" help:"Register category URLs as pending work"`
	Export ExportCmd `cmd:"" help:"Export stored quotes to CSV and XLSX"`
	Status StatusCmd `cmd:"" help:"Show category and quote counts"`
}

// CrawlCmd is the "crawl" subcommand. Request limit and worker count fall
// back to interactive prompts when the flags are omitted.
type CrawlCmd struct {
	RequestLimit  int     `short:"r" help:"Maximum number of HTTP requests to send (prompted if omitted)"`
	MaxWorkers    int     `short:"w" help:"Number of concurrent workers (prompted if omitted)"`
	CategoryLimit int     `short:"c" help:"Maximum number of categories to pick up (0 = all pending)"`
	RPS           float64 `default:"2" help:"Requests per second per domain"`
	Timeout       int     `default:"300" help:"Per-category timeout in seconds (0 = none)"`
	NoExport      bool    `help:"Skip the CSV/XLSX export after the crawl"`
	Verbose       bool    `short:"v" help:"Log every fetch"`
}

// SeedCmd is the "seed" subcommand.
type SeedCmd struct {
	URLs []string `arg:"" help:"Category base URLs to register"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct{}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
