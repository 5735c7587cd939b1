package server

import (
	"context"
	"errors"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"

	"fortiercars/internal/metrics"
	"fortiercars/internal/services"
)

// newHandler creates an HTTP handler that decodes the request, calls the endpoint of op and
// encodes its result or error.
func newHandler(
	op *operation,
	mux goahttp.Muxer,
	decoder func(*http.Request) goahttp.Decoder,
	encoder func(context.Context, http.ResponseWriter) goahttp.Encoder,
	errhandler ErrorHandler,
) http.Handler {
	encodeError := ErrorEncoder(encoder)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), goahttp.AcceptTypeKey, r.Header.Get("Accept"))
		ctx = context.WithValue(ctx, goa.MethodKey, op.mount.Method)
		ctx = context.WithValue(ctx, goa.ServiceKey, op.service)

		payload, err := op.decode(r, mux, decoder)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		res, err := op.endpoint(ctx, payload)
		if err != nil {
			if err := encodeError(ctx, w, err); err != nil {
				errhandler(ctx, w, err)
			}
			return
		}
		enc := encoder(ctx, w)
		w.WriteHeader(op.status)
		if err := enc.Encode(res); err != nil {
			errhandler(ctx, w, err)
		}
	})
}

// ErrorEncoder returns an encoder that writes err as a goa error response. Not-found errors map
// to 404, faults to 500 and every other service error to 400. Errors that are not service
// errors are reported as internal failures without their text.
func ErrorEncoder(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, error) error {
	return func(ctx context.Context, w http.ResponseWriter, err error) error {
		var serr *goa.ServiceError
		if !errors.As(err, &serr) {
			serr = services.Internal(ctx, "Internal server error", err)
		}
		body := &goahttp.ErrorResponse{
			Name:      serr.Name,
			ID:        serr.ID,
			Message:   serr.Message,
			Temporary: serr.Temporary,
			Timeout:   serr.Timeout,
			Fault:     serr.Fault,
		}
		enc := encoder(ctx, w)
		w.Header().Set(metrics.ErrorNameHeader, serr.Name)
		w.WriteHeader(errorStatus(serr))
		return enc.Encode(body)
	}
}

func errorStatus(serr *goa.ServiceError) int {
	switch {
	case serr.Name == services.ErrNameNotFound:
		return http.StatusNotFound
	case serr.Fault:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
