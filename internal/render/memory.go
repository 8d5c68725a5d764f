package render

import (
	"dronelog-go/internal/logbook"
	"dronelog-go/internal/model"
)

// MemorySurface keeps opened documents in memory. Used in tests and for
// throwaway runs where nothing should touch the filesystem.
type MemorySurface struct {
	Documents []model.Document

	// Err, when set, is returned from Open to simulate an unavailable
	// surface.
	Err error
}

var _ logbook.RenderSurface = (*MemorySurface)(nil)

func NewMemorySurface() *MemorySurface { return &MemorySurface{} }

func (s *MemorySurface) Open(doc model.Document) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.Documents = append(s.Documents, doc)
	return "", nil
}
