package logbook

import "dronelog-go/internal/model"

// RenderSurface is the external surface an export document is handed to for
// rendering and printing. Acquiring it can fail (for example when no opener
// is available); that failure is reported, never fatal, and the document
// itself is not lost.
type RenderSurface interface {
	// Open renders the document and presents it. It returns the location the
	// document ended up at (a file path for filesystem surfaces, "" when the
	// surface has no addressable location).
	Open(doc model.Document) (string, error)
}
