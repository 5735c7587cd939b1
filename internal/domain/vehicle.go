package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a catalog entry. Price and mileage are display strings, not numbers.
type Vehicle struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Year        int             `gorm:"not null;index:idx_vehicle_year,sort:desc" json:"year"`
	Brand       string          `gorm:"size:50;not null;index:idx_vehicle_brand" json:"brand"`
	Model       string          `gorm:"size:50;not null" json:"model"`
	Type        string          `gorm:"size:50;not null" json:"type"`
	Category    VehicleCategory `gorm:"size:10;not null;index:idx_vehicle_category" json:"category"`
	ImageURL    string          `gorm:"not null" json:"image_url"`
	Features    string          `gorm:"size:500;not null" json:"features"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       string          `gorm:"size:50;not null" json:"price"`
	Mileage     *string         `gorm:"size:20" json:"mileage"`
	IsAvailable bool            `gorm:"not null;index:idx_vehicle_is_available" json:"is_available"`
	IsFeatured  bool            `gorm:"not null;index:idx_vehicle_is_featured" json:"is_featured"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleCreate is the admin body for adding a vehicle to the catalog. The free-text fields are
// pointers so that a missing key is rejected while an empty string is accepted.
type VehicleCreate struct {
	Year        int             `json:"year" validate:"gte=1990,lte=2030"`
	Brand       string          `json:"brand" validate:"required,min=1,max=50"`
	Model       string          `json:"model" validate:"required,min=1,max=50"`
	Type        *string         `json:"type" validate:"required,max=50"`
	Category    VehicleCategory `json:"category" validate:"required,oneof=new used"`
	ImageURL    *string         `json:"image_url" validate:"required"`
	Features    *string         `json:"features" validate:"required,max=500"`
	Description *string         `json:"description" validate:"required,max=1000"`
	Price       *string         `json:"price" validate:"required,max=50"`
	Mileage     *string         `json:"mileage" validate:"omitempty,max=20"`
	IsFeatured  bool            `json:"is_featured"`
}

// VehicleUpdate is a partial catalog edit. Nil fields are left untouched.
type VehicleUpdate struct {
	Year        *int             `json:"year" validate:"omitempty,gte=1990,lte=2030"`
	Brand       *string          `json:"brand" validate:"omitempty,min=1,max=50"`
	Model       *string          `json:"model" validate:"omitempty,min=1,max=50"`
	Type        *string          `json:"type" validate:"omitempty,max=50"`
	Category    *VehicleCategory `json:"category" validate:"omitempty,oneof=new used"`
	ImageURL    *string          `json:"image_url"`
	Features    *string          `json:"features" validate:"omitempty,max=500"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *string          `json:"price" validate:"omitempty,max=50"`
	Mileage     *string          `json:"mileage" validate:"omitempty,max=20"`
	IsAvailable *bool            `json:"is_available"`
	IsFeatured  *bool            `json:"is_featured"`
}

// Fields returns the column updates named by the non-nil fields, plus updated_at when anything
// changes.
func (u *VehicleUpdate) Fields(now time.Time) map[string]any {
	fields := map[string]any{}
	if u.Year != nil {
		fields["year"] = *u.Year
	}
	if u.Brand != nil {
		fields["brand"] = *u.Brand
	}
	if u.Model != nil {
		fields["model"] = *u.Model
	}
	if u.Type != nil {
		fields["type"] = *u.Type
	}
	if u.Category != nil {
		fields["category"] = string(*u.Category)
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	if u.Features != nil {
		fields["features"] = *u.Features
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Mileage != nil {
		fields["mileage"] = *u.Mileage
	}
	if u.IsAvailable != nil {
		fields["is_available"] = *u.IsAvailable
	}
	if u.IsFeatured != nil {
		fields["is_featured"] = *u.IsFeatured
	}
	if len(fields) > 0 {
		fields["updated_at"] = now.UTC()
	}
	return fields
}

// VehicleListParams filters the public catalog listing. AvailableOnly and FeaturedOnly add an
// equality term when true and nothing when false.
type VehicleListParams struct {
	Category      *VehicleCategory
	AvailableOnly bool
	FeaturedOnly  bool
	Limit         int
}

// NewVehicle builds a stored, available record from a validated body.
func NewVehicle(in *VehicleCreate, now time.Time) *Vehicle {
	now = now.UTC()
	return &Vehicle{
		ID:          uuid.NewString(),
		Year:        in.Year,
		Brand:       in.Brand,
		Model:       in.Model,
		Type:        deref(in.Type),
		Category:    in.Category,
		ImageURL:    deref(in.ImageURL),
		Features:    deref(in.Features),
		Description: deref(in.Description),
		Price:       deref(in.Price),
		Mileage:     in.Mileage,
		IsAvailable: true,
		IsFeatured:  in.IsFeatured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
