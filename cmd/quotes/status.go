package main

import (
	"fmt"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Run executes the status command, printing work-queue and store counts.
func (c *StatusCmd) Run(deps *Dependencies) error {
	pending, err := deps.Categories.CountCategories(deps.Ctx, quotes.StatusPending)
	if err != nil {
		return err
	}
	done, err := deps.Categories.CountCategories(deps.Ctx, quotes.StatusDone)
	if err != nil {
		return err
	}
	stored, err := deps.Quotes.CountQuotes(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Categories: %d pending, %d done\n", pending, done)
	fmt.Fprintf(deps.Stdout, "Quotes stored: %d\n", stored)
	return nil
}
