package csvkit

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"
)

// EscapeCell renders one cell. Every cell is wrapped in double quotes and
// embedded double quotes are doubled; nil renders as the empty string.
// Downstream spreadsheet imports depend on this exact output, so do not
// "simplify" it to quote-only-when-needed.
func EscapeCell(value interface{}) string {
	if value == nil {
		return `""`
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return `""`
		}
		s = *v
	case bool:
		if v {
			s = "Yes"
		} else {
			s = "No"
		}
	case time.Time:
		s = v.Format("2006-01-02")
	case *time.Time:
		if v == nil {
			return `""`
		}
		s = v.Format("2006-01-02")
	case float64:
		s = formatFloat(v)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprintf("%v", v)
	}

	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatFloat trims trailing zeros so 250.00 renders as "250" and 2.50 as
// "2.5", matching the pass-through rule for numeric fields.
func formatFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// Document renders a header row plus data rows as newline-joined CSV text
func Document(headers []string, rows [][]interface{}) string {
	var b strings.Builder

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = EscapeCell(h)
	}
	b.WriteString(strings.Join(cells, ","))

	for _, row := range rows {
		b.WriteString("\n")
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = EscapeCell(v)
		}
		b.WriteString(strings.Join(cells, ","))
	}

	return b.String()
}

// File is one named CSV document in an export bundle
type File struct {
	Name    string
	Content string
}

// FileName builds the export naming convention:
// <kind>-<studentNumber-or-cohort>-<ISO-date>.csv
func FileName(kind, subject string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%s.csv", kind, subject, date.Format("2006-01-02"))
}

// Bundle zips the files into a single archive. Callers fall back to
// serving the files individually if zipping fails.
func Bundle(files []File) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range files {
		entry, err := w.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", f.Name, err)
		}
		if _, err := entry.Write([]byte(f.Content)); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip archive: %w", err)
	}

	return buf.Bytes(), nil
}
