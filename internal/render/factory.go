package render

import (
	"fmt"

	"dronelog-go/internal/config"
	"dronelog-go/internal/logbook"
)

// NewSurfaceFromConfig creates a RenderSurface based on the export config
// type.
func NewSurfaceFromConfig(cfg config.ExportConfig) (logbook.RenderSurface, error) {
	switch cfg.Type {
	case "filesystem":
		if cfg.ExportDir == "" {
			return nil, fmt.Errorf("export_dir required for filesystem export")
		}
		var launcher Launcher
		if cfg.OpenDisplay {
			launcher = OSLauncher{}
		}
		return NewFileSystemSurface(cfg.ExportDir, launcher), nil
	case "memory":
		return NewMemorySurface(), nil
	default:
		return nil, fmt.Errorf("unknown export type: %s", cfg.Type)
	}
}
