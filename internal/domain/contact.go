package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	FullName    string        `gorm:"size:100;not null" json:"full_name"`
	Email       string        `gorm:"not null" json:"email"`
	Phone       *string       `gorm:"size:20" json:"phone"`
	Message     string        `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time     `gorm:"not null;index:idx_contact_submitted_at,sort:desc" json:"submitted_at"`
	Status      ContactStatus `gorm:"size:20;not null;index:idx_contact_status" json:"status"`
	Notes       *string       `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for ContactSubmission
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// ContactSubmissionCreate is the public contact form body.
type ContactSubmissionCreate struct {
	FullName string  `json:"full_name" validate:"required,min=1,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Message  string  `json:"message" validate:"required,min=1,max=2000"`
}

// ContactSubmissionUpdate carries the admin-editable fields. Nil fields are left untouched.
type ContactSubmissionUpdate struct {
	Status *ContactStatus `json:"status" validate:"omitempty,oneof=new contacted closed"`
	Notes  *string        `json:"notes"`
}

// Fields returns the column updates named by the non-nil fields.
func (u *ContactSubmissionUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if u.Status != nil {
		fields["status"] = string(*u.Status)
	}
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	return fields
}

// ContactListParams filters the admin contact listing.
type ContactListParams struct {
	Status *ContactStatus
	Limit  int
}

// NewContactSubmission builds a stored record from a validated form.
func NewContactSubmission(in *ContactSubmissionCreate, now time.Time) *ContactSubmission {
	return &ContactSubmission{
		ID:          uuid.NewString(),
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		SubmittedAt: now.UTC(),
		Status:      ContactStatusNew,
	}
}
