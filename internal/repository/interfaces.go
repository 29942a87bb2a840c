package repository

import (
	"context"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

// ErrNotFound is returned when a journal entry lookup finds nothing.
var ErrNotFound = domain.ErrNotFound

// DocumentRepo loads and persists whole projection documents. Save stamps
// meta.lastUpdated before writing.
type DocumentRepo interface {
	Load(ctx context.Context, path string) (*domain.Document, error)
	Save(ctx context.Context, path string, doc *domain.Document) error
}

// JournalRepo records successful mutations.
type JournalRepo interface {
	Record(ctx context.Context, c *domain.ChangeRecord) error
	GetByID(ctx context.Context, id string) (*domain.ChangeRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ChangeRecord, error)
}
