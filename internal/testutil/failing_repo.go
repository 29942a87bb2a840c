package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/repository"
)

// FailOnNthSaveRepo wraps a DocumentRepo and fails the Nth Save call with
// Err. Saves are counted starting at 1; Load passes through.
type FailOnNthSaveRepo struct {
	repository.DocumentRepo
	FailOn int32
	Err    error

	count atomic.Int32
}

func (r *FailOnNthSaveRepo) Save(ctx context.Context, path string, doc *domain.Document) error {
	if r.count.Add(1) == r.FailOn {
		return r.Err
	}
	return r.DocumentRepo.Save(ctx, path, doc)
}

// FailingJournalRepo rejects every Record call with Err.
type FailingJournalRepo struct {
	repository.NoopJournalRepo
	Err error
}

func (r FailingJournalRepo) Record(context.Context, *domain.ChangeRecord) error {
	return r.Err
}
