package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

// FileDocumentRepo implements DocumentRepo on the local filesystem. Writes
// go to a temporary file in the target directory and are renamed into place,
// so an interrupted write never leaves a truncated document.
type FileDocumentRepo struct {
	now func() time.Time
}

// NewFileDocumentRepo creates a FileDocumentRepo. A nil clock uses time.Now.
func NewFileDocumentRepo(now func() time.Time) *FileDocumentRepo {
	if now == nil {
		now = time.Now
	}
	return &FileDocumentRepo{now: now}
}

func (r *FileDocumentRepo) Load(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return decodeDocument(path, data)
}

func (r *FileDocumentRepo) Save(ctx context.Context, path string, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc.Meta.LastUpdated = r.now().UnixMilli()
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func decodeDocument(path string, data []byte) (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	return &doc, nil
}

func encodeDocument(doc *domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}
	committed = true
	return nil
}
