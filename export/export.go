// Package export writes snapshots of stored quote records to tabular
// files (CSV and XLSX).
package export

import (
	"context"
	"fmt"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Default output paths, relative to the working directory. Existing files
// are overwritten.
const (
	DefaultCSVPath  = "quotes_data.csv"
	DefaultXLSXPath = "quotes_data.xlsx"
)

// Exporter reads the entire stored record set once and serializes it
// through each configured writer.
type Exporter struct {
	Quotes  quotes.QuoteService
	Writers []quotes.RecordWriter
}

// NewExporter creates an Exporter with the default CSV and XLSX writers.
func NewExporter(service quotes.QuoteService) *Exporter {
	return &Exporter{
		Quotes: service,
		Writers: []quotes.RecordWriter{
			NewCSVWriter(DefaultCSVPath),
			NewXLSXWriter(DefaultXLSXPath),
		},
	}
}

// Export snapshots all stored records and writes every output. Returns
// the number of exported records, or ENOTFOUND without writing any file
// when the store is empty.
func (e *Exporter) Export(ctx context.Context) (int, error) {
	records, err := e.Quotes.FindAllQuotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("read stored quotes: %w", err)
	}
	if len(records) == 0 {
		return 0, quotes.Errorf(quotes.ENOTFOUND, "no quotes to export")
	}

	for _, w := range e.Writers {
		if err := w.WriteRecords(records); err != nil {
			return 0, fmt.Errorf("write %s: %w", w.Name(), err)
		}
	}
	return len(records), nil
}
