package domain

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a customer review shown on the site once approved.
type Testimonial struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"not null" json:"email"`
	ImageURL     *string    `json:"image_url"`
	Rating       int        `gorm:"not null" json:"rating"`
	Quote        string     `gorm:"type:text;not null" json:"quote"`
	CarPurchased *string    `gorm:"size:100" json:"car_purchased"`
	PurchaseDate *time.Time `json:"purchase_date"`
	IsApproved   bool       `gorm:"not null;index:idx_testimonial_is_approved" json:"is_approved"`
	CreatedAt    time.Time  `gorm:"not null;index:idx_testimonial_created_at,sort:desc" json:"created_at"`
	ApprovedAt   *time.Time `json:"approved_at"`
}

// TableName specifies the table name for Testimonial
func (Testimonial) TableName() string {
	return "testimonials"
}

// TestimonialCreate is the public review body.
type TestimonialCreate struct {
	Name         string     `json:"name" validate:"required,min=1,max=100"`
	Email        string     `json:"email" validate:"required,email"`
	ImageURL     *string    `json:"image_url"`
	Rating       int        `json:"rating" validate:"gte=1,lte=5"`
	Quote        string     `json:"quote" validate:"required,min=10,max=1000"`
	CarPurchased *string    `json:"car_purchased" validate:"omitempty,max=100"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

// TestimonialApprove toggles publication of a testimonial.
type TestimonialApprove struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}

// Fields returns the column updates for the approval. Approving stamps approved_at with now;
// disapproving leaves approved_at as it was.
func (a *TestimonialApprove) Fields(now time.Time) map[string]any {
	fields := map[string]any{"is_approved": *a.IsApproved}
	if *a.IsApproved {
		fields["approved_at"] = now.UTC()
	}
	return fields
}

// NewTestimonial builds a stored, unapproved record from a validated review.
func NewTestimonial(in *TestimonialCreate, now time.Time) *Testimonial {
	t := &Testimonial{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		ImageURL:     in.ImageURL,
		Rating:       in.Rating,
		Quote:        in.Quote,
		CarPurchased: in.CarPurchased,
		IsApproved:   false,
		CreatedAt:    now.UTC(),
	}
	if in.PurchaseDate != nil {
		d := in.PurchaseDate.UTC()
		t.PurchaseDate = &d
	}
	return t
}
