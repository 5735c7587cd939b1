package services

import (
	"context"
	"time"

	"goa.design/clue/log"

	"fortiercars/internal/database"
	"fortiercars/internal/domain"
	"fortiercars/internal/metrics"
)

// InquiryService implements vehicle inquiries.
type InquiryService struct {
	store *database.Store
	now   func() time.Time
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(store *database.Store, now func() time.Time) *InquiryService {
	return &InquiryService{store: store, now: now}
}

// Submit records an inquiry. The referenced car is not looked up.
func (s *InquiryService) Submit(ctx context.Context, p *domain.CarInquiryCreate) (*domain.CarInquiry, error) {
	if err := domain.Validate(p); err != nil {
		log.Printf(ctx, "[INQUIRY] Submit failed: validation error: %v", err)
		return nil, err
	}

	rec := domain.NewCarInquiry(p, s.now())
	if err := s.store.Inquiries.Insert(ctx, rec); err != nil {
		return nil, Internal(ctx, "Failed to submit inquiry", err)
	}

	log.Printf(ctx, "[INQUIRY] Submit successful: id=%s, car_id=%s, type=%s", rec.ID, rec.CarID, rec.InquiryType)
	metrics.RecordCarInquiry(string(rec.InquiryType))
	return rec, nil
}

// List returns the most recent inquiries, optionally filtered by status and car.
func (s *InquiryService) List(ctx context.Context, p *domain.InquiryListParams) ([]domain.CarInquiry, error) {
	filter := database.Filter{}
	if p.Status != nil {
		filter["status"] = string(*p.Status)
	}
	if p.CarID != nil {
		filter["car_id"] = *p.CarID
	}

	recs, err := s.store.Inquiries.Find(ctx, database.Query{
		Filter: filter,
		Sort:   database.Sort{Field: "submitted_at", Desc: true},
		Limit:  listLimit(p.Limit, DefaultListLimit),
	})
	if err != nil {
		return nil, Internal(ctx, "Failed to retrieve inquiries", err)
	}

	log.Printf(ctx, "[INQUIRY] List successful: returned %d inquiries", len(recs))
	return recs, nil
}

// Update changes the follow-up status of an inquiry.
func (s *InquiryService) Update(ctx context.Context, id string, p *domain.CarInquiryUpdate) (*domain.CarInquiry, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	rec, err := s.store.Inquiries.FindOneAndUpdate(ctx, database.Filter{"id": id}, p.Fields())
	if err != nil {
		return nil, storageError(ctx, err, "Inquiry not found", "Failed to update inquiry")
	}

	log.Printf(ctx, "[INQUIRY] Update successful: id=%s, status=%s", rec.ID, rec.Status)
	return rec, nil
}
