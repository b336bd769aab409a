package services

// InvoicesPerPage is the fixed page size of the invoice list.
const InvoicesPerPage = 4

// Page is one clamped window over the invoice list.
type Page struct {
	Number     int  `json:"number"`
	Size       int  `json:"size"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`

	// Start and End are the half-open slice bounds into the full result.
	Start int `json:"-"`
	End   int `json:"-"`
}

// PageWindow clamps a requested page into [1, totalPages] and computes the
// slice bounds. An empty result still has one (empty) page so the window
// never degenerates.
func PageWindow(totalRecords, requested, size int) Page {
	if size < 1 {
		size = 1
	}
	totalPages := (totalRecords + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if requested < 1 {
		requested = 1
	}
	if requested > totalPages {
		requested = totalPages
	}

	start := (requested - 1) * size
	if start > totalRecords {
		start = totalRecords
	}
	end := start + size
	if end > totalRecords {
		end = totalRecords
	}

	return Page{
		Number:     requested,
		Size:       size,
		TotalPages: totalPages,
		HasPrev:    requested > 1,
		HasNext:    requested < totalPages,
		Start:      start,
		End:        end,
	}
}
