package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// promptInt writes the label and reads one positive integer. The caller
// supplies a shared *bufio.Reader so consecutive prompts don't lose
// buffered input.
func promptInt(r *bufio.Reader, w io.Writer, label string) (int, error) {
	fmt.Fprintf(w, "%s: ", label)

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("read input: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, quotes.Errorf(quotes.EINVALID, "%q is not a number", strings.TrimSpace(line))
	}
	if n <= 0 {
		return 0, quotes.Errorf(quotes.EINVALID, "value must be positive, got %d", n)
	}
	return n, nil
}
