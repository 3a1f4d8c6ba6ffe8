package export

import (
	"fmt"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet holding the exported records.
const sheetName = "Sheet1"

// Ensure XLSXWriter implements quotes.RecordWriter at compile time.
var _ quotes.RecordWriter = (*XLSXWriter)(nil)

// XLSXWriter serializes quote records to a spreadsheet workbook with the
// same columns as the CSV output.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates an XLSXWriter targeting the given path.
func NewXLSXWriter(path string) *XLSXWriter {
	if path == "" {
		path = DefaultXLSXPath
	}
	return &XLSXWriter{path: path}
}

// WriteRecords writes the header row followed by one row per record,
// clobbering any existing file.
func (w *XLSXWriter) WriteRecords(records []*quotes.QuoteRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	header := quotes.QuoteRecordHeader()
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &row); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Quote, r.Author, r.Tags, r.CategoryLink}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.SaveAs(w.path)
}

// Name returns the output path.
func (w *XLSXWriter) Name() string {
	return w.path
}
