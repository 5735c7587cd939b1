package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"fortiercars/internal/database"
	"fortiercars/internal/domain"
)

// DashboardService aggregates counts for the admin dashboard.
type DashboardService struct {
	store *database.Store
	now   func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *database.Store, now func() time.Time) *DashboardService {
	return &DashboardService{store: store, now: now}
}

// Stats runs the seven counts concurrently. "Today" starts at midnight UTC.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	today := database.AtLeast(domain.StartOfDay(s.now()))
	stats := &domain.DashboardStats{}

	counts := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.TotalContacts, func(ctx context.Context) (int64, error) {
			return s.store.Contacts.Count(ctx, nil)
		}},
		{&stats.TotalInquiries, func(ctx context.Context) (int64, error) {
			return s.store.Inquiries.Count(ctx, nil)
		}},
		{&stats.TotalTestimonials, func(ctx context.Context) (int64, error) {
			return s.store.Testimonials.Count(ctx, database.Filter{"is_approved": true})
		}},
		{&stats.TotalVehicles, func(ctx context.Context) (int64, error) {
			return s.store.Vehicles.Count(ctx, database.Filter{"is_available": true})
		}},
		{&stats.PendingTestimonials, func(ctx context.Context) (int64, error) {
			return s.store.Testimonials.Count(ctx, database.Filter{"is_approved": false})
		}},
		{&stats.NewContactsToday, func(ctx context.Context) (int64, error) {
			return s.store.Contacts.Count(ctx, database.Filter{"submitted_at": today})
		}},
		{&stats.NewInquiriesToday, func(ctx context.Context) (int64, error) {
			return s.store.Inquiries.Count(ctx, database.Filter{"submitted_at": today})
		}},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		g.Go(func() error {
			n, err := c.count(gctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Internal(ctx, "Failed to retrieve dashboard stats", err)
	}
	return stats, nil
}
