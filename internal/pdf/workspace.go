package pdf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Workspace is a private temp directory owned by a single pipeline run.
type Workspace struct {
	Dir string

	logger *slog.Logger
	once   sync.Once
}

// NewWorkspace creates a fresh directory under base ("" = os.TempDir()).
func NewWorkspace(base string, logger *slog.Logger) (*Workspace, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dir, err := os.MkdirTemp(base, "scriptsense-pages-*")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	logger.Debug("workspace acquired", "dir", dir)
	return &Workspace{Dir: dir, logger: logger}, nil
}

// Path joins name onto the workspace directory.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// WriteFile writes data into the workspace and returns the absolute path.
func (w *Workspace) WriteFile(name string, data []byte) (string, error) {
	p := w.Path(name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return p, nil
}

// Release removes the directory. Safe to call more than once.
func (w *Workspace) Release() {
	w.once.Do(func() {
		if err := os.RemoveAll(w.Dir); err != nil {
			w.logger.Warn("failed to remove workspace", "dir", w.Dir, "error", err)
			return
		}
		w.logger.Debug("workspace released", "dir", w.Dir)
	})
}
