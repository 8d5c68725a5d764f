// Package render provides the surfaces an export document can be handed to.
package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"dronelog-go/internal/logbook"
	"dronelog-go/internal/model"
)

// Launcher hands a rendered file to the environment's display program.
type Launcher interface {
	Launch(path string) error
}

// OSLauncher opens a file with the platform's default opener. It does not
// wait for the opener: the print dialog is the opener's business.
type OSLauncher struct{}

func (OSLauncher) Launch(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching opener: %w", err)
	}
	return cmd.Process.Release()
}

// FileSystemSurface renders export documents to HTML files in a directory
// and optionally hands them to a Launcher.
type FileSystemSurface struct {
	exportDir string
	launcher  Launcher // nil disables the display handoff
}

var _ logbook.RenderSurface = (*FileSystemSurface)(nil)

// NewFileSystemSurface creates a surface writing into exportDir. launcher
// may be nil when the document should only be written, not displayed.
func NewFileSystemSurface(exportDir string, launcher Launcher) *FileSystemSurface {
	return &FileSystemSurface{exportDir: exportDir, launcher: launcher}
}

// Open renders the document to <exportDir>/logbook-<exportID>.html and, when
// a launcher is configured, hands the file to it. The written path is
// returned even when the launcher fails, so the caller can point the user at
// the file.
func (s *FileSystemSurface) Open(doc model.Document) (string, error) {
	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	name := fmt.Sprintf("logbook-%s.html", strings.ToLower(doc.Metadata.ID))
	path := filepath.Join(s.exportDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := documentTemplate.Execute(f, doc); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("rendering document: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("finalizing export file: %w", err)
	}

	if s.launcher != nil {
		if err := s.launcher.Launch(path); err != nil {
			return path, fmt.Errorf("opening display: %w", err)
		}
	}

	return path, nil
}
