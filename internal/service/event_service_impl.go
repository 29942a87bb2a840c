package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/validate"
)

type eventService struct {
	session *Session
}

func NewEventService(session *Session) EventService {
	return &eventService{session: session}
}

func (s *eventService) List(_ context.Context, kind domain.EventKind, planID string) ([]*domain.Event, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := eventKind(kind); err != nil {
		return nil, err
	}
	events := []*domain.Event{}
	err := s.session.View(func(doc *domain.Document, _ string) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		events = append(events, p.Events(kind)...)
		return nil
	})
	return events, err
}

func (s *eventService) Get(_ context.Context, kind domain.EventKind, planID, eventID string) (*domain.Event, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := eventKind(kind); err != nil {
		return nil, err
	}
	var event *domain.Event
	err := s.session.View(func(doc *domain.Document, _ string) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		event, err = p.FindEvent(kind, eventID)
		return err
	})
	return event, err
}

// Add appends a new event. A start or end that is missing or null takes
// the keyword default (now / endOfPlan).
func (s *eventService) Add(ctx context.Context, kind domain.EventKind, req contract.AddEventRequest) (*domain.Event, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := eventKind(kind); err != nil {
		return nil, err
	}
	if err := requireName("name", req.Name); err != nil {
		return nil, err
	}

	var event *domain.Event
	err := s.session.Mutate(ctx, "add_"+string(kind)+"_event", string(kind)+" event", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(req.PlanID)
		if err != nil {
			return err
		}
		start, err := referenceOrDefault("start", req.Start, domain.KeywordNow)
		if err != nil {
			return err
		}
		end, err := referenceOrDefault("end", req.End, domain.KeywordEndOfPlan)
		if err != nil {
			return err
		}

		event = &domain.Event{
			ID:         s.session.newID(),
			Name:       req.Name,
			Type:       domain.StrFromPtr(req.Type),
			Amount:     domain.Float64Ptr(domain.Float64FromPtrWithDefault(0, req.Amount)),
			AmountType: domain.StrFromPtr(req.AmountType),
			Frequency:  domain.StrFromPtr(req.Frequency),
			Start:      start,
			End:        end,
		}
		if err := p.AppendEvent(kind, event); err != nil {
			return err
		}

		rec.TargetID, rec.PlanID = event.ID, p.ID
		rec.Summary = fmt.Sprintf("added %s event %q", kind, event.Name)
		return nil
	})
	return event, err
}

// Update applies the supplied fields. A supplied start or end replaces the
// existing reference wholesale and must be a valid reference; null is
// rejected.
func (s *eventService) Update(ctx context.Context, kind domain.EventKind, req contract.UpdateEventRequest) (*domain.Event, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := eventKind(kind); err != nil {
		return nil, err
	}
	if err := requireNameIfPresent("name", req.Name); err != nil {
		return nil, err
	}

	var event *domain.Event
	err := s.session.Mutate(ctx, "update_"+string(kind)+"_event", string(kind)+" event", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(req.PlanID)
		if err != nil {
			return err
		}
		e, err := p.FindEvent(kind, req.EventID)
		if err != nil {
			return err
		}

		var start, end *domain.DateReference
		if contract.Present(req.Start) {
			if start, err = validate.ParseDateReference("start", req.Start); err != nil {
				return err
			}
		}
		if contract.Present(req.End) {
			if end, err = validate.ParseDateReference("end", req.End); err != nil {
				return err
			}
		}

		setIfPresent(&e.Name, req.Name)
		setIfPresent(&e.Type, req.Type)
		setPtrIfPresent(&e.Amount, req.Amount)
		setIfPresent(&e.AmountType, req.AmountType)
		setIfPresent(&e.Frequency, req.Frequency)
		if start != nil {
			e.Start = start
		}
		if end != nil {
			e.End = end
		}

		rec.TargetID, rec.PlanID = e.ID, p.ID
		rec.Summary = fmt.Sprintf("updated %s event %q", kind, e.Name)
		event = e
		return nil
	})
	return event, err
}

func (s *eventService) Delete(ctx context.Context, kind domain.EventKind, planID, eventID string) (*contract.DeleteResult, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := eventKind(kind); err != nil {
		return nil, err
	}
	var result *contract.DeleteResult
	err := s.session.Mutate(ctx, "delete_"+string(kind)+"_event", string(kind)+" event", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		e, err := p.RemoveEvent(kind, eventID)
		if err != nil {
			return err
		}
		rec.TargetID, rec.PlanID = e.ID, p.ID
		rec.Summary = fmt.Sprintf("deleted %s event %q", kind, e.Name)
		result = deleted(e.ID, e.Name)
		return nil
	})
	return result, err
}

func referenceOrDefault(field string, raw json.RawMessage, keyword string) (*domain.DateReference, error) {
	if !contract.PresentNonNull(raw) {
		return domain.KeywordRef(keyword), nil
	}
	return validate.ParseDateReference(field, raw)
}
