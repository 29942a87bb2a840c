package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

type progressService struct {
	session *Session
}

func NewProgressService(session *Session) ProgressService {
	return &progressService{session: session}
}

func (s *progressService) Get(_ context.Context) (*domain.Progress, error) {
	progress := &domain.Progress{Data: []*domain.ProgressPoint{}}
	err := s.session.View(func(doc *domain.Document, _ string) error {
		if doc.Progress != nil {
			progress.Data = append(progress.Data, doc.Progress.Data...)
		}
		return nil
	})
	return progress, err
}

// Record appends a snapshot of today's totals to the progress history.
func (s *progressService) Record(ctx context.Context) (*domain.ProgressPoint, error) {
	var point *domain.ProgressPoint
	err := s.session.Mutate(ctx, "record_progress", "progress", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		totals := doc.Today.Totals()
		point = totals.ProgressPoint(s.session.nowMillis())
		if doc.Progress == nil {
			doc.Progress = &domain.Progress{}
		}
		doc.Progress.Data = append(doc.Progress.Data, point)

		rec.Summary = fmt.Sprintf("recorded net worth %s", totals.NetWorth().StringFixed(2))
		return nil
	})
	return point, err
}
