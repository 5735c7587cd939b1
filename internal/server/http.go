package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"goa.design/clue/log"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"fortiercars/internal/config"
	"fortiercars/internal/metrics"
)

// NewHTTPHandler mounts every operation on a goa muxer, serves /metrics next to it and wraps the
// result with the middleware chain: security headers, CORS, request logging, prometheus. ctx
// must carry the clue logger.
func NewHTTPHandler(ctx context.Context, cfg *config.Config, svc *Services) (http.Handler, *Server) {
	endpoints := NewEndpoints(svc)
	endpoints.Use(log.Endpoint)

	mux := goahttp.NewMuxer()
	srv := New(endpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler)
	srv.Use(middleware.RequestID())
	srv.Use(middleware.PopulateRequestContext())
	srv.Mount(mux)

	metricsHandler := promhttp.Handler()
	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	var handler http.Handler = metrics.HTTPMiddleware(root)
	handler = log.HTTP(ctx)(handler)
	handler = CORS(&cfg.CORS)(handler)
	handler = SecurityHeaders(cfg.App.Debug)(handler)
	return handler, srv
}

func errorHandler(ctx context.Context, _ http.ResponseWriter, err error) {
	log.Errorf(ctx, err, "[HTTP] failed to write response")
}
