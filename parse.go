package palimpsest

import (
	"bytes"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/tsawler/palimpsest/extract"
	"github.com/tsawler/palimpsest/layout"
	"github.com/tsawler/palimpsest/model"
)

// pageResult holds the outcome of parsing a single page
type pageResult struct {
	page model.ParsedPage
	err  error
}

// parseDocument reconstructs the layout of the selected pages using a
// bounded worker pool. Each worker opens its own reader over the shared
// source bytes, so no reader state is shared between goroutines.
func parseDocument(source []byte, options editOptions) (*model.ParsedDocument, error) {
	probe, err := pdf.NewReader(bytes.NewReader(source), int64(len(source)))
	if err != nil {
		return nil, fmt.Errorf("open source document: %w", err)
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pages := options.selectedPages(probe.NumPage())
	if len(pages) == 0 {
		return &model.ParsedDocument{}, nil
	}

	workers := options.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	numbers := make(chan int, len(pages))
	results := make(chan pageResult, len(pages))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			reader, err := pdf.NewReader(bytes.NewReader(source), int64(len(source)))
			if err != nil {
				for number := range numbers {
					results <- pageResult{err: fmt.Errorf("page %d: %w", number, err)}
				}
				return
			}

			for number := range numbers {
				results <- parsePage(reader, number)
			}
		}()
	}

	go func() {
		for _, number := range pages {
			numbers <- number
		}
		close(numbers)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	doc := &model.ParsedDocument{Pages: make([]model.ParsedPage, 0, len(pages))}
	for result := range results {
		if result.err != nil {
			// A broken page yields no blocks but never fails the
			// document.
			logger.Warn("page parse failed", zap.Error(result.err))
			continue
		}
		doc.Pages = append(doc.Pages, result.page)
	}

	sort.Slice(doc.Pages, func(i, j int) bool {
		return doc.Pages[i].PageNumber < doc.Pages[j].PageNumber
	})
	return doc, nil
}

// parsePage runs the extraction and layout pipeline for one page. The
// underlying reader panics on some malformed content streams, so the
// panic is confined to the page.
func parsePage(reader *pdf.Reader, number int) (result pageResult) {
	defer func() {
		if r := recover(); r != nil {
			result = pageResult{err: fmt.Errorf("page %d: %v", number, r)}
		}
	}()

	page := reader.Page(number)
	if page.V.IsNull() {
		return pageResult{err: fmt.Errorf("page %d: not present", number)}
	}

	events, bounds, err := extract.PageEvents(page)
	if err != nil {
		return pageResult{err: fmt.Errorf("page %d: %w", number, err)}
	}

	items := extract.NewExtractor().Extract(events)
	blocks := layout.NewAnalyzer().Blocks(items)

	return pageResult{page: model.ParsedPage{
		PageNumber: number,
		Width:      bounds.Width,
		Height:     bounds.Height,
		Blocks:     blocks,
	}}
}
