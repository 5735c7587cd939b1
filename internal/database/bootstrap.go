package database

import (
	"context"
	"fmt"

	"goa.design/clue/log"

	"fortiercars/internal/domain"
)

// Migrate creates the four tables and their indexes. It is safe to run on every start.
func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&domain.ContactSubmission{},
		&domain.CarInquiry{},
		&domain.Testimonial{},
		&domain.Vehicle{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Bootstrap migrates the schema and, when seed is set, inserts the example testimonials and
// vehicles into empty tables. Failures are logged and returned; callers keep serving.
func (s *Store) Bootstrap(ctx context.Context, seed bool) error {
	log.Printf(ctx, "[DB] Running database migrations...")
	if err := s.Migrate(ctx); err != nil {
		log.Errorf(ctx, err, "[DB] Error initializing database")
		return err
	}
	log.Printf(ctx, "[DB] Database indexes created successfully")

	if !seed {
		return nil
	}
	if err := s.Seed(ctx); err != nil {
		log.Errorf(ctx, err, "[DB] Error seeding initial data")
		return err
	}
	return nil
}

// Seed inserts the example data into each table that is currently empty. A table holding any
// record is never reseeded.
func (s *Store) Seed(ctx context.Context) error {
	n, err := s.Testimonials.Count(ctx, nil)
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.db.WithContext(ctx).Create(seedTestimonials()).Error; err != nil {
			return fmt.Errorf("seed testimonials: %w", err)
		}
		log.Printf(ctx, "[DB] Testimonials seeded successfully")
	}

	n, err = s.Vehicles.Count(ctx, nil)
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.db.WithContext(ctx).Create(seedVehicles()).Error; err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
		log.Printf(ctx, "[DB] Vehicles seeded successfully")
	}
	return nil
}
