package mock

import (
	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

var _ quotes.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of quotes.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(records []*quotes.QuoteRecord) error
	NameFn         func() string
}

func (w *RecordWriter) WriteRecords(records []*quotes.QuoteRecord) error {
	return w.WriteRecordsFn(records)
}

func (w *RecordWriter) Name() string {
	if w.NameFn == nil {
		return "mock"
	}
	return w.NameFn()
}
