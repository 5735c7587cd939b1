package domain

import "time"

// DashboardStats summarises activity for the admin dashboard.
type DashboardStats struct {
	TotalContacts       int64 `json:"total_contacts"`
	TotalInquiries      int64 `json:"total_inquiries"`
	TotalTestimonials   int64 `json:"total_testimonials"` // approved only
	TotalVehicles       int64 `json:"total_vehicles"`     // available only
	PendingTestimonials int64 `json:"pending_testimonials"`
	NewContactsToday    int64 `json:"new_contacts_today"`
	NewInquiriesToday   int64 `json:"new_inquiries_today"`
}

// StartOfDay returns midnight UTC of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// APIStatus is the body of the API root endpoint.
type APIStatus struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Health is the body of the health endpoint.
type Health struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}
