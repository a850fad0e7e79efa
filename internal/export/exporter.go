package export

import (
	"io"

	"outlay/internal/core"
	"outlay/internal/filter"
)

// Exporter turns a (optionally filtered) expense view into an encoded
// download body. It never touches storage; encoding goes straight to w.
type Exporter struct {
	Title string
}

// Write filters, projects, and encodes expenses in the requested format.
func (x Exporter) Write(w io.Writer, expenses []core.Expense, c filter.Criteria, format Format) error {
	records := FilteredRecords(expenses, c)
	switch format {
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatPDF:
		return WritePDF(w, records, x.Title)
	default:
		return WriteCSV(w, records)
	}
}

// Filename joins a base name (defaulting to "expenses") with the format's
// file extension.
func Filename(base string, format Format) string {
	if base == "" {
		base = "expenses"
	}
	return base + "." + string(format)
}
