package domain

import (
	"slices"

	goa "goa.design/goa/v3/pkg"
)

// ContactStatus tracks how far a contact submission has been handled.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusClosed    ContactStatus = "closed"
)

// InquiryStatus tracks how far a car inquiry has been handled.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusScheduled InquiryStatus = "scheduled"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// InquiryType is what the customer asked for.
type InquiryType string

const (
	InquiryTypeDetails   InquiryType = "details"
	InquiryTypeTestDrive InquiryType = "test_drive"
	InquiryTypePurchase  InquiryType = "purchase"
)

// VehicleCategory separates the new and used catalogs.
type VehicleCategory string

const (
	VehicleCategoryNew  VehicleCategory = "new"
	VehicleCategoryUsed VehicleCategory = "used"
)

var (
	contactStatuses   = []ContactStatus{ContactStatusNew, ContactStatusContacted, ContactStatusClosed}
	inquiryStatuses   = []InquiryStatus{InquiryStatusNew, InquiryStatusContacted, InquiryStatusScheduled, InquiryStatusClosed}
	vehicleCategories = []VehicleCategory{VehicleCategoryNew, VehicleCategoryUsed}
)

func (s ContactStatus) Valid() bool   { return slices.Contains(contactStatuses, s) }
func (s InquiryStatus) Valid() bool   { return slices.Contains(inquiryStatuses, s) }
func (c VehicleCategory) Valid() bool { return slices.Contains(vehicleCategories, c) }

// ParseContactStatus validates a status filter taken from a query string.
func ParseContactStatus(param, v string) (ContactStatus, error) {
	s := ContactStatus(v)
	if !s.Valid() {
		return "", goa.InvalidEnumValueError(param, v, enumValues(contactStatuses))
	}
	return s, nil
}

// ParseInquiryStatus validates a status filter taken from a query string.
func ParseInquiryStatus(param, v string) (InquiryStatus, error) {
	s := InquiryStatus(v)
	if !s.Valid() {
		return "", goa.InvalidEnumValueError(param, v, enumValues(inquiryStatuses))
	}
	return s, nil
}

// ParseVehicleCategory validates a category filter taken from a query string.
func ParseVehicleCategory(param, v string) (VehicleCategory, error) {
	c := VehicleCategory(v)
	if !c.Valid() {
		return "", goa.InvalidEnumValueError(param, v, enumValues(vehicleCategories))
	}
	return c, nil
}

func enumValues[T ~string](vals []T) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
