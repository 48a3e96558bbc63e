package hashpages

// Document is the metadata sink the router writes to on every transition:
// the document title and a page-identity attribute on the document root.
// Both writes are one-way; the router never reads them back.
type Document interface {
	SetTitle(title string)
	SetPageID(id string)
}

// MemoryDocument is an in-memory [Document] for tests and headless hosts.
type MemoryDocument struct {
	Title  string
	PageID string
}

func (d *MemoryDocument) SetTitle(title string) { d.Title = title }

func (d *MemoryDocument) SetPageID(id string) { d.PageID = id }
