package docsync

import (
	"fmt"
	"strings"
)

// Sentinel marker lines delimiting the diagram region inside a target
// document. The renderer's output must never contain either literal, or
// the next run's marker search would mis-locate the span.
const (
	StartMarker = "<!-- MERMAID_DIAGRAM_START -->"
	EndMarker   = "<!-- MERMAID_DIAGRAM_END -->"
)

// MissingMarkerError reports that a document does not contain a usable
// marker pair: one or both sentinels are absent, or the end marker only
// appears before the start marker.
type MissingMarkerError struct {
	// Path of the document, filled in by the caller that knows it.
	Path string
	// Missing lists the marker literals that could not be located in order.
	Missing []string
}

func (e *MissingMarkerError) Error() string {
	where := "document"
	if e.Path != "" {
		where = e.Path
	}
	return fmt.Sprintf("%s: marker(s) not found: %s", where, strings.Join(e.Missing, ", "))
}

// Patch replaces the content strictly between the first occurrence of
// startMarker and the first following occurrence of endMarker with body,
// wrapped as a fenced mermaid block. Everything outside that span is
// returned byte-identical.
//
// The whole span is always replaced, never appended to, so applying
// Patch twice with the same body yields the same document (idempotence).
// On a missing or misordered marker pair it returns a *MissingMarkerError
// and the empty string; the input is never partially transformed.
func Patch(doc, startMarker, endMarker, body string) (string, error) {
	var missing []string

	start := strings.Index(doc, startMarker)
	if start < 0 {
		missing = append(missing, startMarker)
	}

	// The end marker must follow the start marker; an occurrence before it
	// cannot close the span.
	searchFrom := 0
	if start >= 0 {
		searchFrom = start + len(startMarker)
	}
	end := strings.Index(doc[searchFrom:], endMarker)
	if end < 0 {
		missing = append(missing, endMarker)
	}

	if len(missing) > 0 {
		return "", &MissingMarkerError{Missing: missing}
	}
	end += searchFrom

	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	wrapped := "\n```mermaid\n" + body + "```\n"

	return doc[:start+len(startMarker)] + wrapped + doc[end:], nil
}
