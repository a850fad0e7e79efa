package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"outlay/internal/export"
)

// handleExport streams the filtered collection as a file download. Query
// params: format (csv|json|pdf), filename (base name, optional), plus the
// same filter params as the expense list.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	format, err := export.ParseFormat(query.Get("format"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	criteria, err := parseCriteria(query)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	filename := export.Filename(sanitizeFilename(query.Get("filename")), format)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	exporter := export.Exporter{Title: "Expense Report"}
	if err := exporter.Write(w, s.store.List(), criteria, format); err != nil {
		// Headers are gone at this point; all we can do is log.
		slog.ErrorContext(r.Context(), "Export failed mid-stream",
			"error", err, "format", format, "filename", filename)
		return
	}

	slog.InfoContext(r.Context(), "Export served", "format", format, "filename", filename)
}

// sanitizeFilename keeps the base name shell- and header-safe.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
