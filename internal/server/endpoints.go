package server

import (
	"context"

	goa "goa.design/goa/v3/pkg"

	"fortiercars/internal/domain"
)

// Endpoints wraps the service methods in goa endpoints.
type Endpoints struct {
	Status goa.Endpoint
	Health goa.Endpoint

	SubmitContact goa.Endpoint
	ListContacts  goa.Endpoint
	UpdateContact goa.Endpoint

	SubmitInquiry goa.Endpoint
	ListInquiries goa.Endpoint
	UpdateInquiry goa.Endpoint

	ListTestimonials   goa.Endpoint
	SubmitTestimonial  goa.Endpoint
	ApproveTestimonial goa.Endpoint

	ListVehicles  goa.Endpoint
	GetVehicle    goa.Endpoint
	CreateVehicle goa.Endpoint
	UpdateVehicle goa.Endpoint

	DashboardStats goa.Endpoint
}

// updatePayload is the decoded request of an operation that edits the record at ID.
type updatePayload[T any] struct {
	ID   string
	Body *T
}

// NewEndpoints wraps the methods of svc.
func NewEndpoints(svc *Services) *Endpoints {
	return &Endpoints{
		Status: func(ctx context.Context, _ any) (any, error) {
			return svc.Health.Status(ctx)
		},
		Health: func(ctx context.Context, _ any) (any, error) {
			return svc.Health.Check(ctx)
		},

		SubmitContact: func(ctx context.Context, req any) (any, error) {
			return svc.Contacts.Submit(ctx, req.(*domain.ContactSubmissionCreate))
		},
		ListContacts: func(ctx context.Context, req any) (any, error) {
			return svc.Contacts.List(ctx, req.(*domain.ContactListParams))
		},
		UpdateContact: func(ctx context.Context, req any) (any, error) {
			p := req.(*updatePayload[domain.ContactSubmissionUpdate])
			return svc.Contacts.Update(ctx, p.ID, p.Body)
		},

		SubmitInquiry: func(ctx context.Context, req any) (any, error) {
			return svc.Inquiries.Submit(ctx, req.(*domain.CarInquiryCreate))
		},
		ListInquiries: func(ctx context.Context, req any) (any, error) {
			return svc.Inquiries.List(ctx, req.(*domain.InquiryListParams))
		},
		UpdateInquiry: func(ctx context.Context, req any) (any, error) {
			p := req.(*updatePayload[domain.CarInquiryUpdate])
			return svc.Inquiries.Update(ctx, p.ID, p.Body)
		},

		ListTestimonials: func(ctx context.Context, req any) (any, error) {
			return svc.Testimonials.List(ctx, req.(bool))
		},
		SubmitTestimonial: func(ctx context.Context, req any) (any, error) {
			return svc.Testimonials.Submit(ctx, req.(*domain.TestimonialCreate))
		},
		ApproveTestimonial: func(ctx context.Context, req any) (any, error) {
			p := req.(*updatePayload[domain.TestimonialApprove])
			return svc.Testimonials.Approve(ctx, p.ID, p.Body)
		},

		ListVehicles: func(ctx context.Context, req any) (any, error) {
			return svc.Vehicles.List(ctx, req.(*domain.VehicleListParams))
		},
		GetVehicle: func(ctx context.Context, req any) (any, error) {
			return svc.Vehicles.Get(ctx, req.(string))
		},
		CreateVehicle: func(ctx context.Context, req any) (any, error) {
			return svc.Vehicles.Create(ctx, req.(*domain.VehicleCreate))
		},
		UpdateVehicle: func(ctx context.Context, req any) (any, error) {
			p := req.(*updatePayload[domain.VehicleUpdate])
			return svc.Vehicles.Update(ctx, p.ID, p.Body)
		},

		DashboardStats: func(ctx context.Context, _ any) (any, error) {
			return svc.Dashboard.Stats(ctx)
		},
	}
}

// Use applies the given middleware to all the endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	for _, ep := range []*goa.Endpoint{
		&e.Status, &e.Health,
		&e.SubmitContact, &e.ListContacts, &e.UpdateContact,
		&e.SubmitInquiry, &e.ListInquiries, &e.UpdateInquiry,
		&e.ListTestimonials, &e.SubmitTestimonial, &e.ApproveTestimonial,
		&e.ListVehicles, &e.GetVehicle, &e.CreateVehicle, &e.UpdateVehicle,
		&e.DashboardStats,
	} {
		*ep = m(*ep)
	}
}
