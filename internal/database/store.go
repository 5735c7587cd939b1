package database

import (
	"context"

	"gorm.io/gorm"

	"fortiercars/internal/domain"
)

// Store groups the four record collections over one shared connection pool.
type Store struct {
	db *gorm.DB

	Contacts     *Collection[domain.ContactSubmission]
	Inquiries    *Collection[domain.CarInquiry]
	Testimonials *Collection[domain.Testimonial]
	Vehicles     *Collection[domain.Vehicle]
}

// NewStore binds the collections to db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Contacts:     NewCollection[domain.ContactSubmission](db, domain.ContactSubmission{}.TableName()),
		Inquiries:    NewCollection[domain.CarInquiry](db, domain.CarInquiry{}.TableName()),
		Testimonials: NewCollection[domain.Testimonial](db, domain.Testimonial{}.TableName()),
		Vehicles:     NewCollection[domain.Vehicle](db, domain.Vehicle{}.TableName()),
	}
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return Ping(ctx, s.db)
}

// DB returns the underlying handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}
