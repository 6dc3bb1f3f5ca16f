package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// DirStats summarizes one directory walk.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Loaded  uint32
	Failed  uint32
}

// FileError records a path that could not be turned into a document.
type FileError struct {
	Path string
	Err  error
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return base != "." && base != ".." && strings.HasPrefix(base, ".")
}

// LoadFile reads a local file into a validated SubmittedDocument. The MIME
// type comes from the extension; PDFs get source pdf, everything else image.
func LoadFile(path string, maxBytes int64) (entity.SubmittedDocument, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	mime := constants.MimeForExt(ext)
	if mime == "" {
		return entity.SubmittedDocument{}, common.NewAppError(common.CodeValidation,
			fmt.Sprintf("unsupported or missing extension %q", ext), common.ErrValidation)
	}

	info, err := os.Stat(path)
	if err != nil {
		return entity.SubmittedDocument{}, err
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return entity.SubmittedDocument{}, common.NewAppError(common.CodeValidation,
			fmt.Sprintf("%s is %d bytes, limit is %d", filepath.Base(path), info.Size(), maxBytes), common.ErrValidation)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.SubmittedDocument{}, err
	}

	source := constants.SourceImage
	if mime == constants.MimePDF {
		source = constants.SourcePDF
	}
	doc := entity.SubmittedDocument{
		Data:     data,
		MimeType: mime,
		Source:   source,
		FileName: filepath.Base(path),
		Size:     int64(len(data)),
	}
	if err := common.ValidateDocument(doc, maxBytes); err != nil {
		return entity.SubmittedDocument{}, err
	}
	return doc, nil
}

// WalkDocuments walks root and calls fn for every supported file, skipping
// hidden entries if requested. Load failures are collected, not fatal.
func WalkDocuments(ctx context.Context, root string, maxBytes int64, skipHidden bool, fn func(entity.SubmittedDocument) error) (DirStats, []FileError, error) {
	if strings.TrimSpace(root) == "" {
		return DirStats{}, nil, errors.New("root path is required")
	}

	var (
		stats  DirStats
		failed []FileError
	)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			failed = append(failed, FileError{Path: path, Err: walkErr})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if constants.MimeForExt(filepath.Ext(path)) == "" {
			return nil
		}
		stats.Matched++

		doc, err := LoadFile(path, maxBytes)
		if err != nil {
			failed = append(failed, FileError{Path: path, Err: err})
			stats.Failed++
			return nil
		}
		stats.Loaded++
		return fn(doc)
	})
	if err != nil {
		return stats, failed, fmt.Errorf("walk: %w", err)
	}
	return stats, failed, nil
}
