package main

import (
	"fmt"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Run executes the seed command, registering each URL as a pending
// category. URLs that already exist are skipped.
func (c *SeedCmd) Run(deps *Dependencies) error {
	created := 0
	for _, u := range c.URLs {
		category := &quotes.Category{PageURL: u}
		err := deps.Categories.CreateCategory(deps.Ctx, category)
		if err != nil {
			if quotes.ErrorCode(err) == quotes.ECONFLICT {
				fmt.Fprintf(deps.Stdout, "Skipping %s: already registered\n", u)
				continue
			}
			return err
		}
		created++
		fmt.Fprintf(deps.Stdout, "Registered %s\n", u)
	}

	fmt.Fprintf(deps.Stdout, "Seeded %d of %d categories.\n", created, len(c.URLs))
	return nil
}
