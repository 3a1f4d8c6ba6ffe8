package export

import (
	"encoding/csv"
	"os"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

// Ensure CSVWriter implements quotes.RecordWriter at compile time.
var _ quotes.RecordWriter = (*CSVWriter)(nil)

// CSVWriter serializes quote records to a UTF-8 comma-delimited file.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter targeting the given path.
func NewCSVWriter(path string) *CSVWriter {
	if path == "" {
		path = DefaultCSVPath
	}
	return &CSVWriter{path: path}
}

// WriteRecords writes the header row followed by one row per record,
// clobbering any existing file.
func (w *CSVWriter) WriteRecords(records []*quotes.QuoteRecord) error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(quotes.QuoteRecordHeader()); err != nil {
		f.Close()
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Quote, r.Author, r.Tags, r.CategoryLink}); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Name returns the output path.
func (w *CSVWriter) Name() string {
	return w.path
}
