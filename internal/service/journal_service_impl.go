package service

import (
	"context"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/repository"
)

type journalService struct {
	journal repository.JournalRepo
}

func NewJournalService(journal repository.JournalRepo) JournalService {
	if journal == nil {
		journal = repository.NoopJournalRepo{}
	}
	return &journalService{journal: journal}
}

func (s *journalService) Recent(ctx context.Context, req contract.RecentChangesRequest) ([]*domain.ChangeRecord, error) {
	if req.Limit < 0 {
		return nil, &domain.ValidationError{Field: "limit", Problem: "must not be negative"}
	}
	records, err := s.journal.ListRecent(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*domain.ChangeRecord{}
	}
	return records, nil
}
