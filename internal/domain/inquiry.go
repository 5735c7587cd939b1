package domain

import (
	"time"

	"github.com/google/uuid"
)

// CarInquiry represents a customer's question about a specific vehicle.
// CarID is advisory: nothing checks that the vehicle exists.
type CarInquiry struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	CarID         string          `gorm:"not null;index:idx_inquiry_car_id" json:"car_id"`
	CarType       VehicleCategory `gorm:"size:10;not null" json:"car_type"`
	CustomerName  string          `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string          `gorm:"not null" json:"customer_email"`
	CustomerPhone *string         `gorm:"size:20" json:"customer_phone"`
	InquiryType   InquiryType     `gorm:"size:20;not null" json:"inquiry_type"`
	Message       *string         `gorm:"type:text" json:"message"`
	SubmittedAt   time.Time       `gorm:"not null;index:idx_inquiry_submitted_at,sort:desc" json:"submitted_at"`
	Status        InquiryStatus   `gorm:"size:20;not null;index:idx_inquiry_status" json:"status"`
}

// TableName specifies the table name for CarInquiry
func (CarInquiry) TableName() string {
	return "car_inquiries"
}

// CarInquiryCreate is the public inquiry body. CarID must be present but may be empty.
type CarInquiryCreate struct {
	CarID         *string         `json:"car_id" validate:"required"`
	CarType       VehicleCategory `json:"car_type" validate:"required,oneof=new used"`
	CustomerName  string          `json:"customer_name" validate:"required,min=1,max=100"`
	CustomerEmail string          `json:"customer_email" validate:"required,email"`
	CustomerPhone *string         `json:"customer_phone" validate:"omitempty,max=20"`
	InquiryType   InquiryType     `json:"inquiry_type" validate:"required,oneof=details test_drive purchase"`
	Message       *string         `json:"message" validate:"omitempty,max=1000"`
}

// CarInquiryUpdate carries the admin-editable status.
type CarInquiryUpdate struct {
	Status *InquiryStatus `json:"status" validate:"omitempty,oneof=new contacted scheduled closed"`
}

// Fields returns the column updates named by the non-nil fields.
func (u *CarInquiryUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if u.Status != nil {
		fields["status"] = string(*u.Status)
	}
	return fields
}

// InquiryListParams filters the admin inquiry listing.
type InquiryListParams struct {
	Status *InquiryStatus
	CarID  *string
	Limit  int
}

// NewCarInquiry builds a stored record from a validated inquiry.
func NewCarInquiry(in *CarInquiryCreate, now time.Time) *CarInquiry {
	return &CarInquiry{
		ID:            uuid.NewString(),
		CarID:         deref(in.CarID),
		CarType:       in.CarType,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		InquiryType:   in.InquiryType,
		Message:       in.Message,
		SubmittedAt:   now.UTC(),
		Status:        InquiryStatusNew,
	}
}
