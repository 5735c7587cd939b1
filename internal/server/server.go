// Package server exposes the dealership services over HTTP using the goa runtime. Each operation
// is a goa endpoint with its own request decoder and response encoder, mounted on a goa muxer.
package server

import (
	"context"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"fortiercars/internal/services"
)

// Services are the implementations behind the HTTP operations.
type Services struct {
	Health       *services.HealthService
	Contacts     *services.ContactService
	Inquiries    *services.InquiryService
	Testimonials *services.TestimonialService
	Vehicles     *services.VehicleService
	Dashboard    *services.DashboardService
}

// Server lists the mounted operations and their HTTP handlers.
type Server struct {
	Mounts []*MountPoint
	routes []*route
}

// MountPoint holds information about a mounted endpoint.
type MountPoint struct {
	// Method is the name of the service method served by the mounted HTTP handler.
	Method string
	// Verb is the HTTP method used to match requests to the mounted handler.
	Verb string
	// Pattern is the HTTP request path pattern used to match requests to the mounted handler.
	Pattern string
}

type route struct {
	mount   *MountPoint
	handler http.Handler
}

// ErrorHandler is called when writing a response fails.
type ErrorHandler func(ctx context.Context, w http.ResponseWriter, err error)

// New instantiates HTTP handlers for every endpoint of e.
func New(
	e *Endpoints,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler ErrorHandler,
) *Server {
	s := &Server{}
	for _, op := range operations(e) {
		s.Mounts = append(s.Mounts, op.mount)
		s.routes = append(s.routes, &route{
			mount:   op.mount,
			handler: newHandler(op, mux, decoder, encoder, errhandler),
		})
	}
	return s
}

// Use wraps every operation handler with m.
func (s *Server) Use(m func(http.Handler) http.Handler) {
	for _, r := range s.routes {
		r.handler = m(r.handler)
	}
}

// Mount configures the mux to serve every operation.
func (s *Server) Mount(mux goahttp.Muxer) {
	for _, r := range s.routes {
		mux.Handle(r.mount.Verb, r.mount.Pattern, r.handler.ServeHTTP)
	}
}
