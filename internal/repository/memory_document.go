package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

// MemoryDocumentRepo keeps encoded documents in memory, keyed by path. It
// goes through the same JSON encoding as FileDocumentRepo so tests observe
// exactly what would have been written.
type MemoryDocumentRepo struct {
	mu    sync.Mutex
	files map[string][]byte
	saves int
	now   func() time.Time
}

func NewMemoryDocumentRepo(now func() time.Time) *MemoryDocumentRepo {
	if now == nil {
		now = time.Now
	}
	return &MemoryDocumentRepo{files: make(map[string][]byte), now: now}
}

// Put stores doc at path without stamping it or counting a save.
func (r *MemoryDocumentRepo) Put(path string, doc *domain.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[path] = data
	return nil
}

func (r *MemoryDocumentRepo) Load(_ context.Context, path string) (*domain.Document, error) {
	r.mu.Lock()
	data, ok := r.files[path]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("reading document: %w", os.ErrNotExist)
	}
	return decodeDocument(path, data)
}

func (r *MemoryDocumentRepo) Save(_ context.Context, path string, doc *domain.Document) error {
	doc.Meta.LastUpdated = r.now().UnixMilli()
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[path] = data
	r.saves++
	return nil
}

// Bytes returns the last encoding stored at path.
func (r *MemoryDocumentRepo) Bytes(path string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.files[path]
}

// Saves returns how many times Save succeeded.
func (r *MemoryDocumentRepo) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
