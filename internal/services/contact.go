package services

import (
	"context"
	"time"

	"goa.design/clue/log"

	"fortiercars/internal/database"
	"fortiercars/internal/domain"
	"fortiercars/internal/metrics"
)

const (
	// DefaultListLimit applies when a listing names no limit.
	DefaultListLimit = 50
	// MaxListLimit caps every listing.
	MaxListLimit = 100
)

// ContactService implements the contact form and its admin management.
type ContactService struct {
	store *database.Store
	now   func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(store *database.Store, now func() time.Time) *ContactService {
	return &ContactService{store: store, now: now}
}

// Submit implements the submit contact form method
func (s *ContactService) Submit(ctx context.Context, p *domain.ContactSubmissionCreate) (*domain.ContactSubmission, error) {
	if err := domain.Validate(p); err != nil {
		log.Printf(ctx, "[CONTACT] Submit failed: validation error: %v", err)
		return nil, err
	}

	rec := domain.NewContactSubmission(p, s.now())
	if err := s.store.Contacts.Insert(ctx, rec); err != nil {
		return nil, Internal(ctx, "Failed to submit contact form", err)
	}

	log.Printf(ctx, "[CONTACT] Submit successful: id=%s", rec.ID)
	metrics.RecordContactSubmission()
	return rec, nil
}

// List returns the most recent submissions, optionally filtered by status.
func (s *ContactService) List(ctx context.Context, p *domain.ContactListParams) ([]domain.ContactSubmission, error) {
	filter := database.Filter{}
	if p.Status != nil {
		filter["status"] = string(*p.Status)
	}

	recs, err := s.store.Contacts.Find(ctx, database.Query{
		Filter: filter,
		Sort:   database.Sort{Field: "submitted_at", Desc: true},
		Limit:  listLimit(p.Limit, DefaultListLimit),
	})
	if err != nil {
		return nil, Internal(ctx, "Failed to retrieve contacts", err)
	}

	log.Printf(ctx, "[CONTACT] List successful: returned %d submissions", len(recs))
	return recs, nil
}

// Update changes the status and notes of a submission. Absent fields keep their stored value.
func (s *ContactService) Update(ctx context.Context, id string, p *domain.ContactSubmissionUpdate) (*domain.ContactSubmission, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	rec, err := s.store.Contacts.FindOneAndUpdate(ctx, database.Filter{"id": id}, p.Fields())
	if err != nil {
		return nil, storageError(ctx, err, "Contact not found", "Failed to update contact")
	}

	log.Printf(ctx, "[CONTACT] Update successful: id=%s, status=%s", rec.ID, rec.Status)
	return rec, nil
}

// listLimit applies the default to an unset limit and caps the rest.
func listLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, MaxListLimit)
}
