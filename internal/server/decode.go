package server

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"

	"fortiercars/internal/domain"
)

// decodeFunc builds the endpoint payload from a request.
type decodeFunc func(r *http.Request, mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) (any, error)

func noPayload(*http.Request, goahttp.Muxer, func(*http.Request) goahttp.Decoder) (any, error) {
	return nil, nil
}

func decodeID(r *http.Request, mux goahttp.Muxer, _ func(*http.Request) goahttp.Decoder) (any, error) {
	return mux.Vars(r)["id"], nil
}

func decodeBody[T any](r *http.Request, _ goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) (any, error) {
	body := new(T)
	if err := decodeRequestBody(r, decoder, body); err != nil {
		return nil, err
	}
	return body, nil
}

func decodeUpdate[T any](r *http.Request, mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) (any, error) {
	body := new(T)
	if err := decodeRequestBody(r, decoder, body); err != nil {
		return nil, err
	}
	return &updatePayload[T]{ID: mux.Vars(r)["id"], Body: body}, nil
}

func decodeRequestBody(r *http.Request, decoder func(*http.Request) goahttp.Decoder, v any) error {
	err := decoder(r).Decode(v)
	if err != nil {
		if err == io.EOF {
			return goa.MissingPayloadError()
		}
		var gerr *goa.ServiceError
		if errors.As(err, &gerr) {
			return gerr
		}
		return goa.DecodePayloadError(err.Error())
	}
	return nil
}

func decodeListContacts(r *http.Request, _ goahttp.Muxer, _ func(*http.Request) goahttp.Decoder) (any, error) {
	var (
		q   = r.URL.Query()
		p   = &domain.ContactListParams{}
		err error
	)
	if v := q.Get("status"); v != "" {
		status, serr := domain.ParseContactStatus("status", v)
		err = goa.MergeErrors(err, serr)
		p.Status = &status
	}
	p.Limit, err = parseLimit(q, err)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func decodeListInquiries(r *http.Request, _ goahttp.Muxer, _ func(*http.Request) goahttp.Decoder) (any, error) {
	var (
		q   = r.URL.Query()
		p   = &domain.InquiryListParams{}
		err error
	)
	if v := q.Get("status"); v != "" {
		status, serr := domain.ParseInquiryStatus("status", v)
		err = goa.MergeErrors(err, serr)
		p.Status = &status
	}
	if v := q.Get("car_id"); v != "" {
		p.CarID = &v
	}
	p.Limit, err = parseLimit(q, err)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func decodeListTestimonials(r *http.Request, _ goahttp.Muxer, _ func(*http.Request) goahttp.Decoder) (any, error) {
	approvedOnly, err := parseBool(r.URL.Query(), "approved_only", true, nil)
	if err != nil {
		return nil, err
	}
	return approvedOnly, nil
}

func decodeListVehicles(r *http.Request, _ goahttp.Muxer, _ func(*http.Request) goahttp.Decoder) (any, error) {
	var (
		q   = r.URL.Query()
		p   = &domain.VehicleListParams{}
		err error
	)
	if v := q.Get("category"); v != "" {
		category, cerr := domain.ParseVehicleCategory("category", v)
		err = goa.MergeErrors(err, cerr)
		p.Category = &category
	}
	p.AvailableOnly, err = parseBool(q, "available_only", true, err)
	p.FeaturedOnly, err = parseBool(q, "featured_only", false, err)
	p.Limit, err = parseLimit(q, err)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// parseLimit reads the optional limit parameter and merges any failure into err. Zero means
// unset; the service applies the default and the cap.
func parseLimit(q url.Values, err error) (int, error) {
	v := q.Get("limit")
	if v == "" {
		return 0, err
	}
	limit, perr := strconv.Atoi(v)
	if perr != nil {
		return 0, goa.MergeErrors(err, goa.InvalidFieldTypeError("limit", v, "integer"))
	}
	if limit < 1 {
		return 0, goa.MergeErrors(err, goa.InvalidRangeError("limit", limit, 1, true))
	}
	return limit, err
}

// parseBool reads the optional boolean parameter name, defaulting to def, and merges any
// failure into err.
func parseBool(q url.Values, name string, def bool, err error) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return def, err
	}
	b, perr := strconv.ParseBool(v)
	if perr != nil {
		return def, goa.MergeErrors(err, goa.InvalidFieldTypeError(name, v, "boolean"))
	}
	return b, err
}
