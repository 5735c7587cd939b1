package server

import (
	"net/http"

	goa "goa.design/goa/v3/pkg"

	"fortiercars/internal/domain"
)

// operation binds an endpoint to its route, request decoder and success status.
type operation struct {
	service  string
	mount    *MountPoint
	decode   decodeFunc
	endpoint goa.Endpoint
	status   int
}

func op(service, method, verb, pattern string, decode decodeFunc, endpoint goa.Endpoint) *operation {
	return &operation{
		service:  service,
		mount:    &MountPoint{Method: method, Verb: verb, Pattern: pattern},
		decode:   decode,
		endpoint: endpoint,
		status:   http.StatusOK,
	}
}

func operations(e *Endpoints) []*operation {
	return []*operation{
		op("api", "status", "GET", "/api/", noPayload, e.Status),
		op("health", "check", "GET", "/health", noPayload, e.Health),

		op("contact", "submit", "POST", "/api/contact", decodeBody[domain.ContactSubmissionCreate], e.SubmitContact),
		op("contact", "list", "GET", "/api/contact", decodeListContacts, e.ListContacts),
		op("contact", "update", "PUT", "/api/contact/{id}", decodeUpdate[domain.ContactSubmissionUpdate], e.UpdateContact),

		op("inquiries", "submit", "POST", "/api/inquiries", decodeBody[domain.CarInquiryCreate], e.SubmitInquiry),
		op("inquiries", "list", "GET", "/api/inquiries", decodeListInquiries, e.ListInquiries),
		op("inquiries", "update", "PUT", "/api/inquiries/{id}", decodeUpdate[domain.CarInquiryUpdate], e.UpdateInquiry),

		op("testimonials", "list", "GET", "/api/testimonials", decodeListTestimonials, e.ListTestimonials),
		op("testimonials", "submit", "POST", "/api/testimonials", decodeBody[domain.TestimonialCreate], e.SubmitTestimonial),
		op("testimonials", "approve", "PUT", "/api/testimonials/{id}/approve", decodeUpdate[domain.TestimonialApprove], e.ApproveTestimonial),

		op("vehicles", "list", "GET", "/api/vehicles", decodeListVehicles, e.ListVehicles),
		op("vehicles", "get", "GET", "/api/vehicles/{id}", decodeID, e.GetVehicle),
		op("vehicles", "create", "POST", "/api/vehicles", decodeBody[domain.VehicleCreate], e.CreateVehicle),
		op("vehicles", "update", "PUT", "/api/vehicles/{id}", decodeUpdate[domain.VehicleUpdate], e.UpdateVehicle),

		op("dashboard", "stats", "GET", "/api/dashboard/stats", noPayload, e.DashboardStats),
	}
}
