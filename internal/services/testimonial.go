package services

import (
	"context"
	"time"

	"goa.design/clue/log"

	"fortiercars/internal/database"
	"fortiercars/internal/domain"
	"fortiercars/internal/metrics"
)

// TestimonialService implements customer reviews and their moderation.
type TestimonialService struct {
	store *database.Store
	now   func() time.Time
}

// NewTestimonialService creates a new testimonial service
func NewTestimonialService(store *database.Store, now func() time.Time) *TestimonialService {
	return &TestimonialService{store: store, now: now}
}

// List returns up to MaxListLimit testimonials, newest first. With approvedOnly unset, pending
// reviews are included.
func (s *TestimonialService) List(ctx context.Context, approvedOnly bool) ([]domain.Testimonial, error) {
	filter := database.Filter{}
	if approvedOnly {
		filter["is_approved"] = true
	}

	recs, err := s.store.Testimonials.Find(ctx, database.Query{
		Filter: filter,
		Sort:   database.Sort{Field: "created_at", Desc: true},
		Limit:  MaxListLimit,
	})
	if err != nil {
		return nil, Internal(ctx, "Failed to retrieve testimonials", err)
	}
	return recs, nil
}

// Submit stores a review awaiting approval.
func (s *TestimonialService) Submit(ctx context.Context, p *domain.TestimonialCreate) (*domain.Testimonial, error) {
	if err := domain.Validate(p); err != nil {
		log.Printf(ctx, "[TESTIMONIAL] Submit failed: validation error: %v", err)
		return nil, err
	}

	rec := domain.NewTestimonial(p, s.now())
	if err := s.store.Testimonials.Insert(ctx, rec); err != nil {
		return nil, Internal(ctx, "Failed to submit testimonial", err)
	}

	log.Printf(ctx, "[TESTIMONIAL] Submit successful: id=%s, rating=%d", rec.ID, rec.Rating)
	metrics.RecordTestimonialSubmitted()
	return rec, nil
}

// Approve publishes or withdraws a review.
func (s *TestimonialService) Approve(ctx context.Context, id string, p *domain.TestimonialApprove) (*domain.Testimonial, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	rec, err := s.store.Testimonials.FindOneAndUpdate(ctx, database.Filter{"id": id}, p.Fields(s.now()))
	if err != nil {
		return nil, storageError(ctx, err, "Testimonial not found", "Failed to update testimonial")
	}

	log.Printf(ctx, "[TESTIMONIAL] Approve successful: id=%s, approved=%t", rec.ID, rec.IsApproved)
	metrics.RecordTestimonialReview(rec.IsApproved)
	return rec, nil
}
