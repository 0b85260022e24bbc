package pdf

// PageSlice describes what one rendered page holds: a half-open range into
// the document's line sequence, and whether the summary block (subtotal,
// tax total, net to pay, notes) lands on it. The summary appears on exactly
// one page, always the last.
type PageSlice struct {
	Start   int
	End     int
	Summary bool
}

// Paginate slices lineCount ordered lines into consecutive pages of at most
// rowsPerPage rows. The summary goes on the final page right after the last
// chunk; when that chunk leaves fewer than summaryRows free slots the
// summary spills onto one extra page, which then becomes the last page.
// Zero lines still produce a single page carrying the summary.
func Paginate(lineCount, rowsPerPage, summaryRows int) []PageSlice {
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}
	if lineCount <= 0 {
		return []PageSlice{{Summary: true}}
	}

	var pages []PageSlice
	for start := 0; start < lineCount; start += rowsPerPage {
		end := start + rowsPerPage
		if end > lineCount {
			end = lineCount
		}
		pages = append(pages, PageSlice{Start: start, End: end})
	}

	last := &pages[len(pages)-1]
	if rowsPerPage-(last.End-last.Start) < summaryRows {
		pages = append(pages, PageSlice{Start: lineCount, End: lineCount, Summary: true})
	} else {
		last.Summary = true
	}
	return pages
}
