package quotes

// RecordWriter serializes a snapshot of quote records to a tabular file.
// Implementations overwrite any existing file at their configured path.
type RecordWriter interface {
	// WriteRecords writes a header row followed by one row per record,
	// in QuoteRecordHeader column order.
	WriteRecords(records []*QuoteRecord) error

	// Name identifies the output for diagnostics (typically the file path).
	Name() string
}
