package palimpsest

import "go.uber.org/zap"

// editOptions holds configuration shared by the Editor's terminal
// operations.
type editOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Concurrent page workers for Parse; <1 means one per CPU
	workers int

	// Diagnostics; nil means discard
	logger *zap.Logger
}

// defaultOptions returns the default editor options.
func defaultOptions() editOptions {
	return editOptions{
		pages:   nil, // nil means all pages
		workers: 0,
		logger:  nil,
	}
}

// clone creates a deep copy of editOptions.
func (o editOptions) clone() editOptions {
	newOpts := editOptions{
		workers: o.workers,
		logger:  o.logger,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

// selectedPages resolves the page selection against the document's page
// count, dropping out-of-range numbers. A nil selection means all pages.
func (o editOptions) selectedPages(pageCount int) []int {
	if o.pages == nil {
		pages := make([]int, pageCount)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	var pages []int
	for _, number := range o.pages {
		if number >= 1 && number <= pageCount {
			pages = append(pages, number)
		}
	}
	return pages
}
