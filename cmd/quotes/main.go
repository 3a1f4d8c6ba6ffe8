package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/mongo"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// MongoDB connection string. Set before calling Run().
	MongoURI string

	// Database used by the MongoDB service implementations.
	DB *mongo.DB

	// Services for end-to-end testing.
	CategoryService quotes.CategoryService
	QuoteService    quotes.QuoteService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	uri := os.Getenv("QUOTES_MONGO_URI")
	if uri == "" {
		uri = mongo.DefaultURI
	}
	return &Main{MongoURI: uri}
}

// Close gracefully stops the program.
func (m *Main) Close(ctx context.Context) error {
	if m.DB != nil {
		return m.DB.Close(ctx)
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("quotes"),
		kong.Description("Scrape quotes from pending categories and export them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'quotes --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Database connectivity failure at startup is fatal for the run.
	m.DB = mongo.NewDB(m.MongoURI)
	if err := m.DB.Open(ctx); err != nil {
		fmt.Fprintln(stderr, "Hint: Set QUOTES_MONGO_URI to use a different MongoDB instance")
		return err
	}
	defer m.Close(ctx)

	m.CategoryService = mongo.NewCategoryService(m.DB)
	m.QuoteService = mongo.NewQuoteService(m.DB)
	deps.Categories = m.CategoryService
	deps.Quotes = m.QuoteService

	return kongCtx.Run(deps)
}
