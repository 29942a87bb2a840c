package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/repository"
	"github.com/google/uuid"
)

// Session owns the single loaded document and serializes every operation
// against it. Mutations run on a deep copy that replaces the live document
// only after it has been persisted, so objects handed out by View or
// Mutate are never modified afterwards.
type Session struct {
	mu      sync.Mutex
	repo    repository.DocumentRepo
	journal repository.JournalRepo
	ids     IDGenerator
	now     func() time.Time
	logger  *slog.Logger

	doc  *domain.Document
	path string
}

type SessionOption func(*Session)

// WithJournal records every successful mutation in j.
func WithJournal(j repository.JournalRepo) SessionOption {
	return func(s *Session) {
		if j != nil {
			s.journal = j
		}
	}
}

func WithIDGenerator(g IDGenerator) SessionOption {
	return func(s *Session) {
		if g != nil {
			s.ids = g
		}
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewSession(repo repository.DocumentRepo, opts ...SessionOption) *Session {
	s := &Session{
		repo:    repo,
		journal: repository.NoopJournalRepo{},
		ids:     UUIDGenerator{},
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the document at path and makes it the session's document.
// A failed load leaves the previous document in place.
func (s *Session) Load(ctx context.Context, path string) (*domain.Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.ValidationError{Field: "path", Problem: "is required"}
	}
	doc, err := s.repo.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if skipper, ok := s.ids.(idSkipper); ok {
		skipper.SkipPast(doc.IDs())
	}
	s.doc = doc
	s.path = path
	s.logger.InfoContext(ctx, "document loaded", "path", path, "plans", len(doc.Plans))
	return doc, nil
}

// Loaded reports whether a document is available.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc != nil
}

// requireLoaded fails with a precondition error when no document is loaded.
// Operations call it before validating their arguments so that the missing
// document is reported first.
func (s *Session) requireLoaded() error {
	if !s.Loaded() {
		return errNoDocument
	}
	return nil
}

// View runs fn against the live document.
func (s *Session) View(fn func(doc *domain.Document, path string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return errNoDocument
	}
	return fn(s.doc, s.path)
}

// Mutate applies fn to a copy of the document, persists the copy and swaps
// it in. Any error from fn or from persistence leaves the live document and
// the file untouched. fn fills in the target fields of rec; the record is
// journaled once the save succeeds.
func (s *Session) Mutate(ctx context.Context, operation, targetKind string, fn func(doc *domain.Document, rec *domain.ChangeRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return errNoDocument
	}

	working, err := s.doc.Clone()
	if err != nil {
		return err
	}
	rec := &domain.ChangeRecord{
		Operation:    operation,
		TargetKind:   targetKind,
		DocumentPath: s.path,
	}
	if err := fn(working, rec); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, s.path, working); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	s.doc = working

	rec.ID = uuid.NewString()
	rec.CreatedAt = s.now().UTC()
	if err := s.journal.Record(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "journal write failed", "operation", operation, "error", err)
	}
	return nil
}

// nowMillis is the session clock as a unix millisecond timestamp.
func (s *Session) nowMillis() int64 {
	return s.now().UnixMilli()
}

func (s *Session) newID() string {
	return s.ids.NewID()
}

var errNoDocument = &domain.PreconditionError{Reason: "no document loaded; call load_document first"}
