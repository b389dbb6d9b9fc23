// Package palimpsest provides a fluent API for reconstructing the text
// layout of PDF pages and for writing edited text back over the
// original content.
//
// Basic usage:
//
//	doc, err := palimpsest.Open("document.pdf").Parse()
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range doc.Pages {
//	    // page.Blocks holds the reconstructed paragraphs
//	}
//
// With options:
//
//	doc, err := palimpsest.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    Workers(4).
//	    Parse()
//
// Saving edits applies a payload of overlays back onto the source:
//
//	edited, err := palimpsest.Open("document.pdf").Apply(payload)
//
// For advanced use cases the lower-level extract, layout, viewport,
// plan, and writer packages are also available.
package palimpsest

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/palimpsest/font"
	"github.com/tsawler/palimpsest/model"
	"github.com/tsawler/palimpsest/plan"
	"github.com/tsawler/palimpsest/writer"
)

// Editor is the entry point for parsing and editing one PDF document.
// Configure it with the fluent option methods, then call a terminal
// operation such as Parse or Apply.
type Editor struct {
	filename string
	source   []byte
	options  editOptions
}

// Open prepares an Editor for a PDF file on disk. The file is read when
// a terminal operation runs.
//
// Example:
//
//	doc, err := palimpsest.Open("document.pdf").Parse()
func Open(filename string) *Editor {
	return &Editor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes prepares an Editor for an in-memory PDF document. The
// editor does not modify the slice.
func FromBytes(source []byte) *Editor {
	return &Editor{
		source:  source,
		options: defaultOptions(),
	}
}

// Pages restricts parsing to the given 1-indexed page numbers. Without
// it, all pages are parsed.
func (e *Editor) Pages(pages ...int) *Editor {
	clone := e.clone()
	clone.options.pages = append([]int(nil), pages...)
	return clone
}

// Workers sets the number of concurrent page workers used by Parse.
// Values below 1 select one worker per CPU.
func (e *Editor) Workers(n int) *Editor {
	clone := e.clone()
	clone.options.workers = n
	return clone
}

// WithLogger attaches a logger for per-page diagnostics. The default
// discards everything.
func (e *Editor) WithLogger(logger *zap.Logger) *Editor {
	clone := e.clone()
	clone.options.logger = logger
	return clone
}

// Parse reads the document and reconstructs its text layout: characters
// into words, words into lines, lines into paragraph blocks. Pages are
// processed concurrently; a page that cannot be parsed is returned
// without blocks rather than failing the document.
func (e *Editor) Parse() (*model.ParsedDocument, error) {
	source, err := e.bytes()
	if err != nil {
		return nil, err
	}
	return parseDocument(source, e.options)
}

// Apply plans and draws the payload's overlays onto the source document
// and returns the edited document bytes. Overlays with degenerate
// geometry are skipped; a payload that references a page the document
// does not have is an error.
func (e *Editor) Apply(payload model.SavePayload) ([]byte, error) {
	source, err := e.bytes()
	if err != nil {
		return nil, err
	}

	metrics, _ := font.DefaultMetrics()
	planner := plan.NewPlannerWithConfig(plan.PlannerConfig{
		Logger:  e.options.logger,
		Metrics: metrics,
	})
	return writer.Apply(source, planner.Build(payload))
}

// ApplyToFile is Apply followed by writing the edited document to path.
func (e *Editor) ApplyToFile(payload model.SavePayload, path string) error {
	edited, err := e.Apply(payload)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, edited, 0o644); err != nil {
		return fmt.Errorf("write edited document: %w", err)
	}
	return nil
}

// bytes returns the source document, reading it from disk if needed
func (e *Editor) bytes() ([]byte, error) {
	if e.source != nil {
		return e.source, nil
	}
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("read source document: %w", err)
	}
	return data, nil
}

// clone creates a copy of the Editor so option methods do not mutate
// the receiver.
func (e *Editor) clone() *Editor {
	return &Editor{
		filename: e.filename,
		source:   e.source,
		options:  e.options.clone(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := palimpsest.Must(palimpsest.Open("document.pdf").Parse())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
